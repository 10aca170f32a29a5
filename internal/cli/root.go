package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"os-scheduler/config"
	"os-scheduler/internal/logging"
	"os-scheduler/internal/schedulers"
)

var (
	flagConfig    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	cfg       *config.SchedulerConfig
	logger    *slog.Logger
	simulator *schedulers.Simulator
)

// NewRootCmd creates the root cobra command for the os-scheduler CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "os-scheduler",
		Short: "CPU scheduling simulator (FCFS and Round Robin)",
		Long: "os-scheduler simulates first-come-first-serve and round robin dispatch over a\n" +
			"fixed set of processes and reports the Gantt chart and waiting/turnaround times.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(flagConfig)
			if err != nil {
				return err
			}
			cfg = loaded

			level, format := cfg.LogLevel, cfg.LogFormat
			if flagLogLevel != "" {
				level = flagLogLevel
			}
			if flagLogFormat != "" {
				format = flagLogFormat
			}
			if flagDebug {
				level = "debug"
			}
			logger = logging.NewLoggerWithWriter(logging.ParseLevel(level), format, cmd.ErrOrStderr())
			simulator = schedulers.NewSimulator(logger)
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ./config.yaml if present)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format (text, json)")

	root.AddCommand(
		newRunCmd(),
		newCompareCmd(),
		newDemoCmd(),
		newServeCmd(),
	)

	return root
}

// timeQuantum returns the --quantum flag when set, else the configured quantum.
func timeQuantum(cmd *cobra.Command, flagValue int) int {
	if cmd.Flags().Changed("quantum") {
		return flagValue
	}
	return cfg.RoundRobinTimeQuantum
}
