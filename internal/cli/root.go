// Package cli implements the cursorbuf command line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/performancecopilot/cursorbuf"
	"github.com/performancecopilot/cursorbuf/internal/cli/config"
	"github.com/performancecopilot/cursorbuf/internal/cli/output"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile      string
	outputFormat string
	verbose      bool

	// Shared state set during PersistentPreRun
	cfg       *config.Config
	formatter output.Formatter
)

// rootCmd is the base command for cursorbuf.
var rootCmd = &cobra.Command{
	Use:   "cursorbuf",
	Short: "Inspect, convert and write byte buffers",
	Long: `cursorbuf converts byte values between binary, octal, decimal and hex,
renders files in those systems or in a text encoding, writes encoded text
into files through a fixed size buffer and dumps file contents.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}

		if outputFormat != "" {
			cfg.OutputFormat = outputFormat
		}

		if cfg.Encoding != "" {
			if err := cursorbuf.SetDefaultEncoding(cursorbuf.Encoding(cfg.Encoding)); err != nil {
				return err
			}
		}

		if verbose || cfg.Log {
			cursorbuf.SetLogWriters(cmd.ErrOrStderr())
			cursorbuf.EnableLogging(true)
		}

		formatter = output.NewFormatter(cfg.OutputFormat)

		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// RootCmd returns the root cobra.Command for testing purposes.
func RootCmd() *cobra.Command {
	return rootCmd
}

func render(cmd *cobra.Command, data any) {
	fmt.Fprint(cmd.OutOrStdout(), formatter.Format(data))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, yaml or toml (default is ~/.cursorbuf/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: table, json, yaml (default \"table\")")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log file operations to stderr")
}
