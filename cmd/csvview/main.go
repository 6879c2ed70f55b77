package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/domonda/go-csvviewer/internal/config"
	"github.com/domonda/go-csvviewer/internal/logging"
)

const (
	appName    = "csvview"
	appVersion = "0.1.0"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd returns the csvview command with all subcommands.
// The configuration is loaded from the environment and an optional
// .env file before any subcommand runs.
func newRootCmd() *cobra.Command {
	var (
		cfg       = new(config.Config)
		envFile   string
		logLevel  string
		logFormat string
	)
	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "View CSV and TSV files as HTML tables",
		Long:          `csvview renders delimited text files as HTML tables on the command line or via HTTP.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if envFile != "" {
				err = config.LoadDotEnv(envFile)
			} else {
				err = config.LoadDotEnv()
			}
			if err != nil {
				return fmt.Errorf("failed to load env file: %w", err)
			}
			if cmd.Flags().Changed("log-level") {
				os.Setenv("LOG_LEVEL", logLevel)
			}
			if cmd.Flags().Changed("log-format") {
				os.Setenv("LOG_FORMAT", logFormat)
			}
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			*cfg = *loaded
			logging.Setup(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load environment variables from file (default: .env if present)")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(
		newRenderCmd(),
		newServeCmd(cfg),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, appVersion)
		},
	}
}
