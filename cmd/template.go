package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/kajvans/goreleaser-rust/internal/config"
	"github.com/kajvans/goreleaser-rust/internal/template"
	"github.com/spf13/cobra"
)

// templateCmd represents the template command
var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Inspect the configuration templates",
	Long: `Inspect the templates used to generate the goreleaser configuration.

Built-in templates ship with the binary. Files under the configured
templates directory replace built-ins of the same name (a trailing .tmpl
is dropped from the name).`,
}

// templateListCmd lists all available templates
var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, set := loadTemplates()

		quiet, _ := cmd.Flags().GetBool("quiet")
		for _, name := range set.Names() {
			if quiet {
				fmt.Fprintln(cmd.OutOrStdout(), name)
				continue
			}
			marker := " "
			if name == cfg.Template {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", marker, name, set.Origin(name))
		}
	},
}

// templateShowCmd renders a template for the current project
var templateShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Render a template for the current project without writing it",
	Long: `Render a template with the crate name from cargo metadata and the default
target triple from rustc, and print the result. Nothing is written to disk.

Without a name the configured template is rendered.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if len(args) == 1 {
			cfg.Template = args[0]
		}

		generator, err := newGenerator(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading templates: %v\n", err)
			os.Exit(1)
		}

		rendered, err := generator.Preview(cmd.Context())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering %s: %v\n", cfg.Template, err)
			os.Exit(1)
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		if _, err := os.Stat(cfg.ConfigFile); err == nil {
			color.New(color.FgYellow).Fprintf(os.Stderr, "\n%s already exists and will not be replaced.\n", cfg.ConfigFile)
		}
	},
}

func loadTemplates() (*config.Config, *template.Set) {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	set, err := template.Load(cfg.TemplatesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading templates: %v\n", err)
		os.Exit(1)
	}
	return cfg, set
}

func init() {
	rootCmd.AddCommand(templateCmd)

	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateShowCmd)

	templateListCmd.Flags().Bool("quiet", false, "Only print template names (one per line)")
}
