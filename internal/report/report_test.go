package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"os-scheduler/internal/responses"
)

func sampleResponse() responses.ScheduleResponse {
	return responses.ScheduleResponse{
		Algorithm:             "fcfs",
		ProcessCount:          2,
		TotalTime:             8,
		AverageWaitingTime:    2.5,
		AverageTurnAroundTime: 6.5,
		CpuUtilization:        1,
		CpuThroughput:         0.25,
		Gantt: []responses.GanttResponse{
			{ProcessName: "Chrome", Start: 0, End: 5},
			{ProcessName: "VSCode", Start: 5, End: 8},
		},
		Details: []responses.ProcessResponse{
			{Name: "Chrome", BurstTime: 5, WaitingTime: 0, TurnAroundTime: 5, CompletionTime: 5},
			{Name: "VSCode", BurstTime: 3, WaitingTime: 5, TurnAroundTime: 8, CompletionTime: 8, ResponseTime: 5},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"table", FormatTable},
		{"JSON", FormatJSON},
		{"yaml", FormatYAML},
		{"yml", FormatYAML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v, want %q", tt.input, got, err, tt.want)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(xml) err = %v, want ErrUnknownFormat", err)
	}
}

func TestRender_Table(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, "First-come, first-serve", sampleResponse(), FormatTable); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"First-come, first-serve",
		"Gantt schedule",
		"| Chrome | VSCode |",
		"Schedule table",
		"Turnaround",
		"2.50",
		"6.50",
		"0.25/t",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestRender_GanttMultiByteNames(t *testing.T) {
	resp := responses.ScheduleResponse{
		Algorithm: "fcfs",
		Gantt: []responses.GanttResponse{
			{ProcessName: "Café", Start: 0, End: 5},
			{ProcessName: "日本語", Start: 5, End: 8},
		},
		Details: []responses.ProcessResponse{},
	}
	var buf bytes.Buffer
	if err := Render(&buf, "First-come, first-serve", resp, FormatTable); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"|  Café  | 日本語 |",
		"0        5        8",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestRender_TableEmpty(t *testing.T) {
	var buf bytes.Buffer
	resp := responses.ScheduleResponse{Algorithm: "rr", Gantt: []responses.GanttResponse{}, Details: []responses.ProcessResponse{}}
	if err := Render(&buf, "Round-robin", resp, FormatTable); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "(no processes)") {
		t.Errorf("empty output = %s", buf.String())
	}
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, "", sampleResponse(), FormatJSON); err != nil {
		t.Fatalf("Render: %v", err)
	}
	var got responses.ScheduleResponse
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if got.AverageWaitingTime != 2.5 || len(got.Gantt) != 2 {
		t.Errorf("decoded = %+v", got)
	}
	if !strings.Contains(buf.String(), `"turn_around_time": 8`) {
		t.Errorf("expected snake_case field in output:\n%s", buf.String())
	}
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, "", sampleResponse(), FormatYAML); err != nil {
		t.Fatalf("Render: %v", err)
	}
	var got map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if got["algorithm"] != "fcfs" {
		t.Errorf("algorithm = %v, want fcfs", got["algorithm"])
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	if err := Render(&bytes.Buffer{}, "", sampleResponse(), Format("xml")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestRenderComparison_Table(t *testing.T) {
	rr := sampleResponse()
	rr.Algorithm = "rr"
	rr.TimeQuantum = 2
	var buf bytes.Buffer
	err := RenderComparison(&buf, []string{"First-come, first-serve", "Round-robin"},
		[]responses.ScheduleResponse{sampleResponse(), rr}, FormatTable)
	if err != nil {
		t.Fatalf("RenderComparison: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Comparison") || !strings.Contains(out, "Round-robin") {
		t.Errorf("comparison output:\n%s", out)
	}
}

func TestRenderComparison_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := RenderComparison(&buf, []string{"a", "b"}, []responses.ScheduleResponse{sampleResponse(), sampleResponse()}, FormatJSON)
	if err != nil {
		t.Fatalf("RenderComparison: %v", err)
	}
	var got []responses.ScheduleResponse
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not a JSON list: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}
