package schedulers

import (
	"fmt"
	"log/slog"
	"strings"

	"os-scheduler/internal/core"
)

// Algorithm names a dispatch discipline.
type Algorithm string

const (
	FirstComeFirstServe Algorithm = "fcfs"
	RoundRobin          Algorithm = "rr"
)

// Title returns the display name of the algorithm.
func (a Algorithm) Title() string {
	switch a {
	case FirstComeFirstServe:
		return "First-come, first-serve"
	case RoundRobin:
		return "Round-robin"
	}
	return string(a)
}

// ParseAlgorithm accepts the short names and their long spellings.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fcfs", "first-come-first-serve", "first_come_first_serve":
		return FirstComeFirstServe, nil
	case "rr", "round-robin", "round_robin":
		return RoundRobin, nil
	}
	return "", fmt.Errorf("%w: unknown algorithm %q (want fcfs or rr)", core.ErrInvalidConfiguration, s)
}

// Result is the outcome of one simulation run.
type Result struct {
	Algorithm   Algorithm
	TimeQuantum int
	Processes   []core.Process
	Gantt       []core.GanttEntry
	Metric      core.CpuMetric
}

// Simulator runs scheduling disciplines over a registry. It holds no per-run
// state, so one Simulator may serve concurrent runs.
type Simulator struct {
	logger *slog.Logger
}

func NewSimulator(logger *slog.Logger) *Simulator {
	return &Simulator{logger: logger.With("component", "scheduler")}
}

// Schedule runs the given algorithm. timeQuantum is ignored for FCFS.
func (s *Simulator) Schedule(algorithm Algorithm, registry *core.Registry, timeQuantum int) (Result, error) {
	switch algorithm {
	case FirstComeFirstServe:
		return s.ScheduleFirstComeFirstServe(registry)
	case RoundRobin:
		return s.ScheduleRoundRobin(registry, timeQuantum)
	}
	return Result{}, fmt.Errorf("%w: unknown algorithm %q", core.ErrInvalidConfiguration, algorithm)
}

// ScheduleAll runs every algorithm on the same registry, FCFS first.
func (s *Simulator) ScheduleAll(registry *core.Registry, timeQuantum int) ([]Result, error) {
	if err := ValidateTimeQuantum(timeQuantum); err != nil {
		return nil, err
	}
	fcfs, err := s.ScheduleFirstComeFirstServe(registry)
	if err != nil {
		return nil, err
	}
	rr, err := s.ScheduleRoundRobin(registry, timeQuantum)
	if err != nil {
		return nil, err
	}
	return []Result{fcfs, rr}, nil
}

// ValidateTimeQuantum rejects non-positive quanta.
func ValidateTimeQuantum(timeQuantum int) error {
	if timeQuantum <= 0 {
		return fmt.Errorf("%w: time quantum %d, must be positive", core.ErrInvalidConfiguration, timeQuantum)
	}
	return nil
}

func computeTurnaround(processes []core.Process) {
	for i := range processes {
		processes[i].TurnaroundTime = processes[i].WaitingTime + processes[i].BurstTime
	}
}
