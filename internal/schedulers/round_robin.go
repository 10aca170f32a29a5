package schedulers

import (
	"os-scheduler/internal/core"
)

// ScheduleRoundRobin dispatches processes from a FIFO ready queue, granting
// each at most timeQuantum units per visit. A process whose remaining time
// equals the quantum completes on that visit rather than being requeued.
func (s *Simulator) ScheduleRoundRobin(registry *core.Registry, timeQuantum int) (Result, error) {
	if err := ValidateTimeQuantum(timeQuantum); err != nil {
		return Result{}, err
	}
	s.logger.Debug("running roundRobin algorithm", "time_quantum", timeQuantum, "processes", registry.Len())

	processes := registry.NewRun()
	cpu := core.NewCPU()
	readyQueue := core.NewReadyQueue(len(processes))
	for i := range processes {
		readyQueue.AddToEnd(i)
	}

	for {
		idx, ok := readyQueue.RemoveFromTop()
		if !ok {
			break
		}
		p := &processes[idx]

		var entry core.GanttEntry
		if p.RemainingTime > timeQuantum {
			entry = cpu.Execute(p, timeQuantum)
			readyQueue.AddToEnd(idx)
		} else {
			entry = cpu.Execute(p, p.RemainingTime)
		}
		s.logger.Debug("dispatch", "pid", idx, "process", p.Name,
			"start", entry.Start, "end", entry.End, "remaining", p.RemainingTime)
	}
	computeTurnaround(processes)

	return Result{
		Algorithm:   RoundRobin,
		TimeQuantum: timeQuantum,
		Processes:   processes,
		Gantt:       cpu.Gantt(),
		Metric:      cpu.Metric(),
	}, nil
}
