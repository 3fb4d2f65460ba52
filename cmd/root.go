/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/kajvans/goreleaser-rust/internal/config"
	"github.com/kajvans/goreleaser-rust/internal/detect"
	"github.com/kajvans/goreleaser-rust/internal/logger"
	"github.com/kajvans/goreleaser-rust/internal/release"
	"github.com/kajvans/goreleaser-rust/internal/utils"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "goreleaser-rust",
	Short: "Bootstrap and run goreleaser for a Rust project",
	Long: `goreleaser-rust prepares a Rust project for releases with goreleaser.

When called without arguments in a Cargo project:

  - Warns if goreleaser is not on your PATH
  - If .goreleaser.yml is missing, offers to generate one from a template,
    filled in with the crate name and your default target triple
  - Otherwise runs 'goreleaser release --clean'

An existing .goreleaser.yml is never overwritten.

Color output:
  - Use --no-color to disable colored output
  - Use --color to force colors (overrides NO_COLOR environment variable)
  - Set NO_COLOR environment variable to disable colors globally

Examples:

  # Generate a config (first run) or release (later runs)
  goreleaser-rust

  # Check which release tools are installed
  goreleaser-rust detect

  # Preview the config that would be generated
  goreleaser-rust template show
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			logger.Error("Error loading config: %v", err)
			os.Exit(1)
		}

		b := &release.Bootstrapper{
			Packager:     cfg.Packager,
			PackagerArgs: cfg.PackagerArgs,
			ConfigPath:   cfg.ConfigFile,
			ConfigName:   cfg.ConfigFile,
			HasCommand:   detect.HasCommand,
			Prompter:     utils.NewPrompter(cfg.Interactive),
			Generator:    &lazyGenerator{cfg: cfg},
			Runner:       newRunner(),
			Stdout:       cmd.OutOrStdout(),
			Stderr:       cmd.ErrOrStderr(),
		}
		if err := b.Run(cmd.Context()); err != nil {
			logger.Error("%v", err)
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Apply no-color flag early, before command execution
	// Check for explicit --no-color=false or --color to re-enable colors
	for _, arg := range os.Args {
		if arg == "--color" {
			color.NoColor = false
			break
		}
		if arg == "--no-color" || arg == "-no-color" {
			color.NoColor = true
			break
		}
		// Check for --no-color=true or --no-color=false
		if strings.HasPrefix(arg, "--no-color=") {
			if strings.HasSuffix(arg, "=false") || strings.HasSuffix(arg, "=0") {
				color.NoColor = false
			} else if strings.HasSuffix(arg, "=true") || strings.HasSuffix(arg, "=1") {
				color.NoColor = true
			}
			break
		}
	}

	// An interrupt kills the running child along with us.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	// Set version using Cobra's built-in Version field
	rootCmd.Version = version

	// Persistent flags
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Bool("color", false, "Force colored output (overrides NO_COLOR env)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides default)")
	rootCmd.PersistentFlags().Bool("debug", false, "Print the commands being run")

	// Respect NO_COLOR environment variable unless explicitly overridden
	if v, ok := os.LookupEnv("NO_COLOR"); ok && strings.TrimSpace(v) != "" {
		color.NoColor = true
	}

	// Use PersistentPreRun to apply global flags before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// no-color handling (flag takes precedence over env)
		if cmd.Flags().Changed("no-color") {
			nc, _ := cmd.Flags().GetBool("no-color")
			color.NoColor = nc
		}

		debug, _ := cmd.Flags().GetBool("debug")
		logger.Init(debug)

		// config path override
		if cmd.Flags().Changed("config") {
			path, _ := cmd.Flags().GetString("config")
			if path != "" {
				config.SetConfigPathOverride(path)
			}
		}
	}
}

// version is injected via -ldflags at build time, defaults to "dev"
var version = "dev"
