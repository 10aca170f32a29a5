package core

import "fmt"

// GanttEntry is one contiguous slice during which a process held the CPU.
type GanttEntry struct {
	ProcessName string
	Start       int
	End         int
}

// Duration returns End - Start.
func (g GanttEntry) Duration() int {
	return g.End - g.Start
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
	Dispatches      int
	ContextSwitches int
}

// CPU is the simulated processor of one run. It owns the clock and the Gantt
// chart; switching between processes costs no time.
type CPU struct {
	clock int
	gantt []GanttEntry
}

func NewCPU() *CPU {
	return &CPU{gantt: make([]GanttEntry, 0)}
}

// Now returns the current simulated time.
func (c *CPU) Now() int {
	return c.clock
}

// Execute gives p the CPU for units time units, starting now.
// units must be in (0, p.RemainingTime]. When the process runs out of
// remaining time it is marked complete at the new clock value.
func (c *CPU) Execute(p *Process, units int) GanttEntry {
	if units <= 0 || units > p.RemainingTime {
		panic(fmt.Sprintf("core: execute %q for %d units with %d remaining", p.Name, units, p.RemainingTime))
	}

	start := c.clock
	if !p.dispatched {
		p.ResponseTime = start
		p.dispatched = true
	}

	c.clock += units
	p.RemainingTime -= units
	if p.RemainingTime == 0 {
		p.CompletionTime = c.clock
		p.WaitingTime = c.clock - p.BurstTime
	}

	entry := GanttEntry{ProcessName: p.Name, Start: start, End: c.clock}
	c.gantt = append(c.gantt, entry)
	return entry
}

// Gantt returns the slices executed so far in dispatch order.
func (c *CPU) Gantt() []GanttEntry {
	out := make([]GanttEntry, len(c.gantt))
	copy(out, c.gantt)
	return out
}

// Metric summarizes the run so far.
func (c *CPU) Metric() CpuMetric {
	m := CpuMetric{
		TotalTime:  c.clock,
		Dispatches: len(c.gantt),
	}
	for i, g := range c.gantt {
		m.UtilizationTime += g.Duration()
		if i > 0 && c.gantt[i-1].ProcessName != g.ProcessName {
			m.ContextSwitches++
		}
	}
	m.IdleTime = m.TotalTime - m.UtilizationTime
	return m
}
