package core

import (
	"fmt"
	"math"
	"strings"
)

// ProcessSpec is one registered job: what the caller submitted, never mutated.
type ProcessSpec struct {
	Name      string `json:"name" yaml:"name"`
	BurstTime int    `json:"burst_time" yaml:"burst_time"`
}

// Process is the per-run state of a registered job. Records live in the slice
// returned by Registry.NewRun and are addressed by their registration index.
type Process struct {
	Name           string
	BurstTime      int
	RemainingTime  int
	WaitingTime    int
	TurnaroundTime int
	CompletionTime int
	ResponseTime   int

	dispatched bool
}

// Done reports whether the process has received its whole burst.
func (p *Process) Done() bool {
	return p.RemainingTime == 0
}

// Registry holds the fixed list of processes for a simulation.
// Records are only appended; the index returned by AddProcess is stable.
// The sum of all bursts, which bounds the simulated clock, fits in an int.
type Registry struct {
	specs      []ProcessSpec
	names      map[string]int
	totalBurst int
}

func NewRegistry() *Registry {
	return &Registry{names: make(map[string]int)}
}

// AddProcess appends a process and returns its index.
func (r *Registry) AddProcess(name string, burstTime int) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return -1, fmt.Errorf("%w: process name must not be empty", ErrInvalidInput)
	}
	if burstTime <= 0 {
		return -1, fmt.Errorf("%w: process %q has burst time %d, must be positive", ErrInvalidInput, name, burstTime)
	}
	if burstTime > math.MaxInt-r.totalBurst {
		return -1, fmt.Errorf("%w: process %q burst time %d overflows the total run time", ErrInvalidInput, name, burstTime)
	}
	if r.names == nil {
		r.names = make(map[string]int)
	}
	if idx, ok := r.names[name]; ok {
		return -1, fmt.Errorf("%w: process %q already registered at index %d", ErrInvalidInput, name, idx)
	}

	r.specs = append(r.specs, ProcessSpec{Name: name, BurstTime: burstTime})
	idx := len(r.specs) - 1
	r.names[name] = idx
	r.totalBurst += burstTime
	return idx, nil
}

// Len returns the number of registered processes.
func (r *Registry) Len() int {
	return len(r.specs)
}

// Specs returns a copy of the registered processes in registration order.
func (r *Registry) Specs() []ProcessSpec {
	out := make([]ProcessSpec, len(r.specs))
	copy(out, r.specs)
	return out
}

// MaxBurst returns the largest registered burst time, or 0 for an empty registry.
func (r *Registry) MaxBurst() int {
	longest := 0
	for _, s := range r.specs {
		if s.BurstTime > longest {
			longest = s.BurstTime
		}
	}
	return longest
}

// NewRun creates fresh process records for one simulation run.
// Each call returns an independent slice.
func (r *Registry) NewRun() []Process {
	run := make([]Process, len(r.specs))
	for i, s := range r.specs {
		run[i] = Process{
			Name:          s.Name,
			BurstTime:     s.BurstTime,
			RemainingTime: s.BurstTime,
		}
	}
	return run
}
