package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagLogLevel string
	flagJSONLog  bool
)

var rootCmd = &cobra.Command{
	Use:   "dvecsim",
	Short: "drive a dvec with push/pop workloads and report growth cost",
	PersistentPreRun: func(*cobra.Command, []string) {
		setupLogger()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagJSONLog, "json", false, "log JSON instead of console output")

	rootCmd.AddCommand(runCmd)
}

// Execute runs the dvecsim command tree.
func Execute() error {
	return rootCmd.Execute()
}

func setupLogger() {
	if !flagJSONLog {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	lvl, err := zerolog.ParseLevel(flagLogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", flagLogLevel).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)
}
