package schedulers

import (
	"os-scheduler/internal/core"
)

// ScheduleFirstComeFirstServe runs every process to completion in
// registration order.
func (s *Simulator) ScheduleFirstComeFirstServe(registry *core.Registry) (Result, error) {
	s.logger.Debug("running fcfs algorithm", "processes", registry.Len())

	processes := registry.NewRun()
	cpu := core.NewCPU()

	// the clock at each dispatch is waiting[i-1] + burst[i-1]
	for i := range processes {
		p := &processes[i]
		entry := cpu.Execute(p, p.BurstTime)
		s.logger.Debug("dispatch", "pid", i, "process", p.Name, "start", entry.Start, "end", entry.End)
	}
	computeTurnaround(processes)

	return Result{
		Algorithm: FirstComeFirstServe,
		Processes: processes,
		Gantt:     cpu.Gantt(),
		Metric:    cpu.Metric(),
	}, nil
}
