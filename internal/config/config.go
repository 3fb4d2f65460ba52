package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the user's settings for the release bootstrap.
type Config struct {
	// Packaging tool and the arguments used for a clean release
	Packager     string   `yaml:"packager"`
	PackagerArgs []string `yaml:"packager_args"`

	// Generated configuration file, relative to the project directory
	ConfigFile string `yaml:"config_file"`
	Template   string `yaml:"template"`

	// Optional directory whose templates replace the built-in ones
	TemplatesDir string `yaml:"templates_dir,omitempty"`

	// Rust toolchain executables
	Cargo string `yaml:"cargo"`
	Rustc string `yaml:"rustc"`

	Interactive bool `yaml:"interactive"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		Packager:     "goreleaser",
		PackagerArgs: []string{"release", "--clean"},
		ConfigFile:   ".goreleaser.yml",
		Template:     "goreleaser.yml",
		TemplatesDir: "",
		Cargo:        "cargo",
		Rustc:        "rustc",
		Interactive:  true,
	}
}

// configPathOverride allows overriding the default config file path.
// When set (non-empty), getConfigPath will return this path instead of ~/.goreleaser-rust/config.yaml
var configPathOverride string

// SetConfigPathOverride sets a custom config file path (absolute or relative).
// If empty, the default path (~/.goreleaser-rust/config.yaml) will be used.
func SetConfigPathOverride(p string) {
	configPathOverride = p
}

// Path returns the config file location without creating anything.
func Path() (string, error) {
	if configPathOverride != "" {
		// If user provided a relative path, make it absolute relative to cwd
		if !filepath.IsAbs(configPathOverride) {
			if abs, err := filepath.Abs(configPathOverride); err == nil {
				return abs, nil
			}
		}
		return configPathOverride, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".goreleaser-rust", "config.yaml"), nil
}

// LoadConfig reads the config file from disk, or returns defaults if missing.
// Keys absent from the file keep their default values.
func LoadConfig() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	cfg := Default()

	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes the config to disk, creating its directory if needed.
func SaveConfig(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create config file: %w", err)
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return encoder.Close()
}

func SetConfigValue(key string, value interface{}) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	switch key {
	case "packager":
		if v, ok := value.(string); ok {
			cfg.Packager = v
		}
	case "packager_args":
		switch v := value.(type) {
		case []string:
			cfg.PackagerArgs = v
		case string:
			cfg.PackagerArgs = strings.Fields(v)
		}
	case "config_file":
		if v, ok := value.(string); ok {
			cfg.ConfigFile = v
		}
	case "template":
		if v, ok := value.(string); ok {
			cfg.Template = v
		}
	case "templates_dir":
		if v, ok := value.(string); ok {
			cfg.TemplatesDir = v
		}
	case "cargo":
		if v, ok := value.(string); ok {
			cfg.Cargo = v
		}
	case "rustc":
		if v, ok := value.(string); ok {
			cfg.Rustc = v
		}
	case "interactive":
		if v, ok := value.(bool); ok {
			cfg.Interactive = v
		}
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	return SaveConfig(cfg)
}

func GetConfigValue(key string) (interface{}, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	switch key {
	case "packager":
		return cfg.Packager, nil
	case "packager_args":
		return cfg.PackagerArgs, nil
	case "config_file":
		return cfg.ConfigFile, nil
	case "template":
		return cfg.Template, nil
	case "templates_dir":
		return cfg.TemplatesDir, nil
	case "cargo":
		return cfg.Cargo, nil
	case "rustc":
		return cfg.Rustc, nil
	case "interactive":
		return cfg.Interactive, nil
	default:
		return nil, fmt.Errorf("unknown config key: %s", key)
	}
}

// PrintConfig writes the current settings to w.
func PrintConfig(w io.Writer) {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return
	}

	if path, err := Path(); err == nil {
		fmt.Fprintf(w, "Config file: %s\n\n", path)
	}
	fmt.Fprintf(w, "Packager: %s\n", cfg.Packager)
	fmt.Fprintf(w, "Packager Args: %s\n", strings.Join(cfg.PackagerArgs, " "))
	fmt.Fprintf(w, "Config File: %s\n", cfg.ConfigFile)
	fmt.Fprintf(w, "Template: %s\n", cfg.Template)
	if cfg.TemplatesDir != "" {
		fmt.Fprintf(w, "Templates Dir: %s\n", cfg.TemplatesDir)
	} else {
		fmt.Fprintf(w, "Templates Dir: (built-in)\n")
	}
	fmt.Fprintf(w, "Cargo: %s\n", cfg.Cargo)
	fmt.Fprintf(w, "Rustc: %s\n", cfg.Rustc)
	fmt.Fprintf(w, "Interactive: %t\n", cfg.Interactive)
}
