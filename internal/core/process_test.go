package core

import (
	"errors"
	"math"
	"testing"
)

func TestRegistry_AddProcess(t *testing.T) {
	r := NewRegistry()
	for i, name := range []string{"Chrome", "VSCode", "Terminal"} {
		idx, err := r.AddProcess(name, i+1)
		if err != nil {
			t.Fatalf("AddProcess(%q): %v", name, err)
		}
		if idx != i {
			t.Errorf("AddProcess(%q) index = %d, want %d", name, idx, i)
		}
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
	if got := r.MaxBurst(); got != 3 {
		t.Errorf("MaxBurst() = %d, want 3", got)
	}
}

func TestRegistry_AddProcessInvalid(t *testing.T) {
	tests := []struct {
		name  string
		proc  string
		burst int
	}{
		{"zero burst", "Chrome", 0},
		{"negative burst", "Chrome", -4},
		{"empty name", "", 3},
		{"blank name", "   ", 3},
		{"duplicate name", "Dup", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			if _, err := r.AddProcess("Dup", 1); err != nil {
				t.Fatalf("seed: %v", err)
			}
			idx, err := r.AddProcess(tt.proc, tt.burst)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
			if idx != -1 {
				t.Errorf("index = %d, want -1", idx)
			}
			if r.Len() != 1 {
				t.Errorf("Len() = %d after rejected add, want 1", r.Len())
			}
		})
	}
}

func TestRegistry_AddProcessTotalOverflow(t *testing.T) {
	r := NewRegistry()
	if _, err := r.AddProcess("Chrome", math.MaxInt-1); err != nil {
		t.Fatalf("AddProcess(Chrome): %v", err)
	}
	if _, err := r.AddProcess("VSCode", 1); err != nil {
		t.Fatalf("AddProcess(VSCode) at the limit: %v", err)
	}
	idx, err := r.AddProcess("Terminal", 1)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
	if idx != -1 || r.Len() != 2 {
		t.Errorf("index = %d, Len() = %d, want -1, 2", idx, r.Len())
	}
}

func TestRegistry_ZeroValueUsable(t *testing.T) {
	var r Registry
	if _, err := r.AddProcess("a", 1); err != nil {
		t.Fatalf("AddProcess on zero Registry: %v", err)
	}
	if _, err := r.AddProcess("a", 1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("duplicate on zero Registry: err = %v, want ErrInvalidInput", err)
	}
}

func TestRegistry_NewRunIsolated(t *testing.T) {
	r := NewRegistry()
	r.AddProcess("Chrome", 5)
	r.AddProcess("VSCode", 3)

	first := r.NewRun()
	first[0].RemainingTime = 0
	first[1].WaitingTime = 42

	second := r.NewRun()
	if second[0].RemainingTime != 5 {
		t.Errorf("second run RemainingTime = %d, want 5", second[0].RemainingTime)
	}
	if second[1].WaitingTime != 0 {
		t.Errorf("second run WaitingTime = %d, want 0", second[1].WaitingTime)
	}
	if specs := r.Specs(); specs[0].BurstTime != 5 {
		t.Errorf("registry mutated by run: %+v", specs[0])
	}
}

func TestRegistry_SpecsCopy(t *testing.T) {
	r := NewRegistry()
	r.AddProcess("Chrome", 5)
	specs := r.Specs()
	specs[0].Name = "Edited"
	if got := r.Specs()[0].Name; got != "Chrome" {
		t.Errorf("Specs()[0].Name = %q after caller edit, want Chrome", got)
	}
}
