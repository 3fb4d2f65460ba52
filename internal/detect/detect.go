package detect

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
)

// Tool is one entry of the release toolchain catalog.
type Tool struct {
	Name     string `json:"name"`
	Command  string `json:"command"`
	Purpose  string `json:"purpose"`
	Required bool   `json:"required"`
}

// ScanResult holds presence information per category.
type ScanResult struct {
	Packaging map[string]bool `json:"packaging"`
	Rust      map[string]bool `json:"rust"`
	CrossTool map[string]bool `json:"cross"`
	DevTools  map[string]bool `json:"dev_tools"`
}

// Catalog lists the tools a Rust release pipeline usually needs, by category.
var Catalog = map[string][]Tool{
	"Packaging": {
		{Name: "goreleaser", Command: "goreleaser", Purpose: "builds and publishes releases", Required: true},
	},
	"Rust": {
		{Name: "cargo", Command: "cargo", Purpose: "reads the project manifest", Required: true},
		{Name: "rustc", Command: "rustc", Purpose: "reports the default target", Required: true},
		{Name: "rustup", Command: "rustup", Purpose: "manages toolchains and targets"},
	},
	"Cross Compilation": {
		{Name: "cargo-zigbuild", Command: "cargo-zigbuild", Purpose: "cross builds for the rust builder"},
		{Name: "zig", Command: "zig", Purpose: "linker used by cargo-zigbuild"},
	},
	"Development Tools": {
		{Name: "git", Command: "git", Purpose: "tags and changelogs"},
		{Name: "docker", Command: "docker", Purpose: "container images"},
	},
}

// HasCommand reports whether a file named cmd exists in any PATH entry.
// An unset PATH means nothing is found.
func HasCommand(cmd string) bool {
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if _, err := os.Stat(filepath.Join(dir, cmd)); err == nil {
			return true
		}
	}
	return false
}

// ScanSystem checks every catalog entry against PATH.
func ScanSystem() *ScanResult {
	result := &ScanResult{
		Packaging: map[string]bool{},
		Rust:      map[string]bool{},
		CrossTool: map[string]bool{},
		DevTools:  map[string]bool{},
	}

	for category, tools := range Catalog {
		for _, tool := range tools {
			found := HasCommand(tool.Command)
			switch category {
			case "Packaging":
				result.Packaging[tool.Name] = found
			case "Rust":
				result.Rust[tool.Name] = found
			case "Cross Compilation":
				result.CrossTool[tool.Name] = found
			case "Development Tools":
				result.DevTools[tool.Name] = found
			}
		}
	}

	return result
}

// Missing returns the names of required tools that were not found, sorted.
func Missing(result *ScanResult) []string {
	var missing []string
	for _, tools := range Catalog {
		for _, tool := range tools {
			if tool.Required && !result.found(tool.Name) {
				missing = append(missing, tool.Name)
			}
		}
	}
	sort.Strings(missing)
	return missing
}

func (r *ScanResult) found(name string) bool {
	for _, m := range []map[string]bool{r.Packaging, r.Rust, r.CrossTool, r.DevTools} {
		if m[name] {
			return true
		}
	}
	return false
}

// PrintResult prints the detected tools nicely
func PrintResult(result *ScanResult) {
	categories := []struct {
		name  string
		tools map[string]bool
	}{
		{"Packaging", result.Packaging},
		{"Rust", result.Rust},
		{"Cross Compilation", result.CrossTool},
		{"Development Tools", result.DevTools},
	}

	for _, category := range categories {
		fmt.Fprintf(color.Output, "=== %s ===\n", category.name)
		names := make([]string, 0, len(category.tools))
		for name := range category.tools {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if category.tools[name] {
				fmt.Fprintf(color.Output, "✅ %-15s\n", name)
			} else {
				fmt.Fprintf(color.Output, "❌ %-15s\n", name)
			}
		}
		fmt.Fprintln(color.Output)
	}
}
