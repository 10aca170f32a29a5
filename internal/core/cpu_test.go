package core

import "testing"

func TestCPU_ExecutePartialThenComplete(t *testing.T) {
	cpu := NewCPU()
	p := &Process{Name: "Chrome", BurstTime: 5, RemainingTime: 5}
	other := &Process{Name: "VSCode", BurstTime: 1, RemainingTime: 1}

	e := cpu.Execute(p, 2)
	if e != (GanttEntry{ProcessName: "Chrome", Start: 0, End: 2}) {
		t.Errorf("first slice = %+v", e)
	}
	if p.Done() || p.RemainingTime != 3 {
		t.Errorf("RemainingTime = %d, want 3", p.RemainingTime)
	}

	cpu.Execute(other, 1)
	e = cpu.Execute(p, 3)
	if e.Start != 3 || e.End != 6 {
		t.Errorf("last slice = %+v, want 3→6", e)
	}
	if !p.Done() {
		t.Error("process should be done")
	}
	if p.CompletionTime != 6 {
		t.Errorf("CompletionTime = %d, want 6", p.CompletionTime)
	}
	if p.WaitingTime != 1 {
		t.Errorf("WaitingTime = %d, want 1", p.WaitingTime)
	}
	if p.ResponseTime != 0 {
		t.Errorf("ResponseTime = %d, want 0", p.ResponseTime)
	}
	if other.ResponseTime != 2 {
		t.Errorf("other ResponseTime = %d, want 2", other.ResponseTime)
	}

	m := cpu.Metric()
	want := CpuMetric{TotalTime: 6, UtilizationTime: 6, IdleTime: 0, Dispatches: 3, ContextSwitches: 2}
	if m != want {
		t.Errorf("Metric() = %+v, want %+v", m, want)
	}
	if len(cpu.Gantt()) != 3 {
		t.Errorf("len(Gantt()) = %d, want 3", len(cpu.Gantt()))
	}
}

func TestCPU_SameProcessIsNotASwitch(t *testing.T) {
	cpu := NewCPU()
	p := &Process{Name: "solo", BurstTime: 4, RemainingTime: 4}
	cpu.Execute(p, 2)
	cpu.Execute(p, 2)
	if got := cpu.Metric().ContextSwitches; got != 0 {
		t.Errorf("ContextSwitches = %d, want 0", got)
	}
}

func TestCPU_ExecuteOverrunPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic when executing past remaining time")
		}
	}()
	cpu := NewCPU()
	cpu.Execute(&Process{Name: "x", BurstTime: 1, RemainingTime: 1}, 2)
}
