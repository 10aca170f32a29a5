package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"os-scheduler/internal/responses"
)

// Format selects how a schedule is written.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q (want table, json or yaml)", ErrUnknownFormat, s)
}

// Render writes one schedule. title is only used by the table format.
func Render(w io.Writer, title string, resp responses.ScheduleResponse, format Format) error {
	switch format {
	case FormatTable:
		outputTitle(w, title)
		outputGantt(w, resp.Gantt)
		outputSchedule(w, resp)
		return nil
	case FormatJSON:
		return encodeJSON(w, resp)
	case FormatYAML:
		return encodeYAML(w, resp)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// RenderComparison writes several schedules of the same workload followed,
// in table format, by a one-row-per-algorithm summary.
func RenderComparison(w io.Writer, titles []string, resps []responses.ScheduleResponse, format Format) error {
	switch format {
	case FormatTable:
		for i, resp := range resps {
			outputTitle(w, titles[i])
			outputGantt(w, resp.Gantt)
			outputSchedule(w, resp)
			_, _ = fmt.Fprintln(w)
		}
		outputSummary(w, titles, resps)
		return nil
	case FormatJSON:
		return encodeJSON(w, resps)
	case FormatYAML:
		return encodeYAML(w, resps)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func outputTitle(w io.Writer, title string) {
	width := runewidth.StringWidth(title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", width*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", width/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", width*2))
}

// outputGantt prints the chart as a bar of process names over a time axis,
// then as a start/end table.
func outputGantt(w io.Writer, gantt []responses.GanttResponse) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(gantt) == 0 {
		_, _ = fmt.Fprint(w, "(no processes)\n\n")
		return
	}

	var bar, axis strings.Builder
	bar.WriteString("|")
	for _, g := range gantt {
		cell := centered(g.ProcessName, cellWidth(g.ProcessName))
		bar.WriteString(cell)
		bar.WriteString("|")
		start := fmt.Sprint(g.Start)
		axis.WriteString(start)
		axis.WriteString(strings.Repeat(" ", max(runewidth.StringWidth(cell)+1-len(start), 1)))
	}
	axis.WriteString(fmt.Sprint(gantt[len(gantt)-1].End))
	_, _ = fmt.Fprintln(w, bar.String())
	_, _ = fmt.Fprintln(w, axis.String())
	_, _ = fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Process", "Start", "End"})
	for _, g := range gantt {
		table.Append([]string{g.ProcessName, fmt.Sprint(g.Start), fmt.Sprint(g.End)})
	}
	table.Render()
	_, _ = fmt.Fprintln(w)
}

func outputSchedule(w io.Writer, resp responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, 0, len(resp.Details))
	for _, d := range resp.Details {
		rows = append(rows, []string{
			d.Name,
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.ResponseTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Process", "Burst", "Waiting", "Turnaround", "Exit", "Response"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "",
		fmt.Sprintf("Average\n%.2f", resp.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", resp.AverageTurnAroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", resp.CpuThroughput),
		fmt.Sprintf("Average\n%.2f", resp.AverageResponseTime)})
	table.Render()
}

func outputSummary(w io.Writer, titles []string, resps []responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Comparison")
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Algorithm", "Quantum", "Avg wait", "Avg turnaround", "Avg response", "Switches", "Total"})
	for i, r := range resps {
		quantum := "-"
		if r.TimeQuantum > 0 {
			quantum = fmt.Sprint(r.TimeQuantum)
		}
		table.Append([]string{
			titles[i],
			quantum,
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", r.AverageResponseTime),
			fmt.Sprint(r.ContextSwitches),
			fmt.Sprint(r.TotalTime),
		})
	}
	table.Render()
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// cellWidth and centered measure display columns, not bytes.
func cellWidth(name string) int {
	return max(8, runewidth.StringWidth(name)+2)
}

func centered(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
