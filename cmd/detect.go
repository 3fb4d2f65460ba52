package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/kajvans/goreleaser-rust/internal/detect"
	"github.com/spf13/cobra"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect goreleaser, the Rust toolchain and related tools",
	Long: `Scan your PATH for the tools a Rust release with goreleaser relies on.

Required tools (goreleaser, cargo, rustc) are reported at the end if missing.
No changes are made.`,
	Example: `  goreleaser-rust detect
  goreleaser-rust detect --json`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		jsonOut, _ := cmd.Flags().GetBool("json")

		result := detect.ScanSystem()

		if jsonOut {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			_ = enc.Encode(result)
			return
		}

		color.Cyan("Scanning your system...")
		detect.PrintResult(result)

		missing := detect.Missing(result)
		if len(missing) == 0 {
			color.Green("All required tools are installed.")
			return
		}
		color.Yellow("Missing required tools: %v", missing)
		for _, name := range missing {
			if name == "goreleaser" {
				fmt.Println("  goreleaser: https://goreleaser.com/install/")
			} else {
				fmt.Printf("  %s: https://rustup.rs/\n", name)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
	detectCmd.Flags().Bool("json", false, "Output results in JSON format")
}
