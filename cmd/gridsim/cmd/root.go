// Package cmd provides the command-line interface of gridsim.
package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

const logLevelEnv = "GRIDSIM_LOG_LEVEL"

var logLevel string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gridsim",
	Short: "Sample synthetic power-system signals with a periodic collector.",
	Long: `gridsim drives a set of synthetic buses on a discrete event ` +
		`engine and samples their quantities with a collector. Defaults ` +
		`can be provided in a .env file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}

		if !cmd.Flags().Changed("log-level") {
			if env := os.Getenv(logLevelEnv); env != "" {
				logLevel = env
			}
		}

		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}

		logrus.SetLevel(level)

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Exit handlers registered with atexit always run.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warning",
		"Log level (trace, debug, info, warning, error). "+
			"Defaults to $"+logLevelEnv+" if set.")
}
