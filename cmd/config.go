package cmd

import (
	"fmt"
	"os"

	"github.com/kajvans/goreleaser-rust/internal/config"
	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or update configuration settings",
	Long: `View or update goreleaser-rust settings.

You can set specific values directly via flags:

  --packager <path>          Packaging tool to run (default goreleaser)
  --packager-args <args>     Arguments for a release run (default "release --clean")
  --config-file <name>       File to generate and look for (default .goreleaser.yml)
  --template <name>          Template used to generate it (default goreleaser.yml)
  --templates-dir <dir>      Directory whose templates replace the built-in ones
  --cargo <path>             cargo executable
  --rustc <path>             rustc executable
  --interactive              Use the arrow-key prompt when attached to a terminal
  --view                     Show current configuration settings
`,
	Example: `  goreleaser-rust config --packager-args "release --clean --snapshot"
  goreleaser-rust config --templates-dir ~/.config/goreleaser-rust/templates
  goreleaser-rust config --interactive=false
  goreleaser-rust config --view`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if view, _ := cmd.Flags().GetBool("view"); view {
			config.PrintConfig(cmd.OutOrStdout())
			return
		}

		changed := false
		for _, key := range []struct{ flag, key string }{
			{"packager", "packager"},
			{"packager-args", "packager_args"},
			{"config-file", "config_file"},
			{"template", "template"},
			{"templates-dir", "templates_dir"},
			{"cargo", "cargo"},
			{"rustc", "rustc"},
		} {
			if !cmd.Flags().Changed(key.flag) {
				continue
			}
			value, _ := cmd.Flags().GetString(key.flag)
			if err := config.SetConfigValue(key.key, value); err != nil {
				fmt.Fprintf(os.Stderr, "Error setting %s: %v\n", key.key, err)
				os.Exit(1)
			}
			changed = true
		}
		if cmd.Flags().Changed("interactive") {
			interactive, _ := cmd.Flags().GetBool("interactive")
			if err := config.SetConfigValue("interactive", interactive); err != nil {
				fmt.Fprintf(os.Stderr, "Error setting interactive: %v\n", err)
				os.Exit(1)
			}
			changed = true
		}

		if !changed {
			// No updates provided; show current configuration
			config.PrintConfig(cmd.OutOrStdout())
			return
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Configuration updated. Current values:")
		config.PrintConfig(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	defaults := config.Default()
	configCmd.Flags().String("packager", defaults.Packager, "Packaging tool to run")
	configCmd.Flags().String("packager-args", "release --clean", "Arguments for a release run")
	configCmd.Flags().String("config-file", defaults.ConfigFile, "File to generate and look for")
	configCmd.Flags().String("template", defaults.Template, "Template used to generate the config file")
	configCmd.Flags().String("templates-dir", "", "Directory whose templates replace the built-in ones")
	configCmd.Flags().String("cargo", defaults.Cargo, "cargo executable")
	configCmd.Flags().String("rustc", defaults.Rustc, "rustc executable")
	configCmd.Flags().Bool("interactive", defaults.Interactive, "Use the arrow-key prompt when attached to a terminal")
	configCmd.Flags().Bool("view", false, "Show current configuration settings")
}
