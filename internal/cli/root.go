// Package cli provides the command-line interface for tabwright.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tabwright/tabwright/internal/cli/commands"
	"github.com/tabwright/tabwright/internal/cli/config"
)

var cfgFile string

// Version information (set at build time).
var Version = "0.1.0"

// configKey is used to store config in context.
type configKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tabwright",
		Short: "tabwright - formula-driven summary tables",
		Long: `tabwright compiles R-style table formulas against tabular data into
presentation-ready summary tables.

A formula of the form "cols ~ rows" partitions the data by the column
side and emits one block of statistics per row-side term, rendered as
text, markdown, CSV or HTML.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			})))

			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./tabwright.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (text|markdown|csv|html)")
	rootCmd.PersistentFlags().Int("digits", 0, "Decimal digits for statistics")
	rootCmd.PersistentFlags().String("missing", "", "Marker for missing values")
	rootCmd.PersistentFlags().Int("max-width", 0, "Maximum text output width (0 = terminal width)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "markdown", "csv", "html"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewBuildCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{
		Output:  config.DefaultOutput,
		Digits:  config.DefaultDigits,
		Missing: config.DefaultMissing,
	}
}
