package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"os-scheduler/internal/core"
	"os-scheduler/internal/report"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
	"os-scheduler/internal/workload"
)

func newRunCmd() *cobra.Command {
	var (
		algorithm string
		quantum   int
		file      string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate one algorithm over a workload file",
		Example: `  os-scheduler run --file procs.csv --algorithm rr --quantum 2
  os-scheduler run --file procs.yaml --algorithm fcfs --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if algorithm == "" {
				algorithm = cfg.DefaultAlgorithm
			}
			alg, err := schedulers.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			outFormat, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			registry, err := workload.LoadFile(file)
			if err != nil {
				return err
			}

			result, err := simulator.Schedule(alg, registry, timeQuantum(cmd, quantum))
			if err != nil {
				return err
			}
			logger.Info("simulation complete", "algorithm", alg, "processes", registry.Len(), "total_time", result.Metric.TotalTime)

			return report.Render(cmd.OutOrStdout(), title(result), schedulers.GenerateResponse(result), outFormat)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Algorithm: fcfs or rr (default from config)")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round robin time quantum (default from config)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Workload file (.csv, .yaml, .yml, .json)")
	cmd.Flags().StringVarP(&format, "format", "o", "table", "Output format (table, json, yaml)")
	cmd.MarkFlagRequired("file")

	return cmd
}

func newCompareCmd() *cobra.Command {
	var (
		quantum int
		file    string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Simulate FCFS and round robin over the same workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := workload.LoadFile(file)
			if err != nil {
				return err
			}
			return compare(cmd, registry, timeQuantum(cmd, quantum), format)
		},
	}

	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round robin time quantum (default from config)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Workload file (.csv, .yaml, .yml, .json)")
	cmd.Flags().StringVarP(&format, "format", "o", "table", "Output format (table, json, yaml)")
	cmd.MarkFlagRequired("file")

	return cmd
}

func newDemoCmd() *cobra.Command {
	var (
		quantum int
		format  string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run both algorithms over the built-in desktop workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			return compare(cmd, workload.Demo(), timeQuantum(cmd, quantum), format)
		},
	}

	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round robin time quantum (default from config)")
	cmd.Flags().StringVarP(&format, "format", "o", "table", "Output format (table, json, yaml)")

	return cmd
}

func compare(cmd *cobra.Command, registry *core.Registry, quantum int, format string) error {
	outFormat, err := report.ParseFormat(format)
	if err != nil {
		return err
	}
	results, err := simulator.ScheduleAll(registry, quantum)
	if err != nil {
		return fmt.Errorf("compare: %w", err)
	}

	titles := make([]string, 0, len(results))
	resps := make([]responses.ScheduleResponse, 0, len(results))
	for _, result := range results {
		titles = append(titles, title(result))
		resps = append(resps, schedulers.GenerateResponse(result))
	}
	return report.RenderComparison(cmd.OutOrStdout(), titles, resps, outFormat)
}

func title(result schedulers.Result) string {
	if result.Algorithm == schedulers.RoundRobin {
		return fmt.Sprintf("%s (quantum %d)", result.Algorithm.Title(), result.TimeQuantum)
	}
	return result.Algorithm.Title()
}
