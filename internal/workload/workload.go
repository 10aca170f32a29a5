package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
)

// Format is a workload file encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension. JSON files are
// read as YAML.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: unsupported workload file %q (want .csv, .yaml, .yml or .json)", core.ErrInvalidInput, path)
}

// LoadFile opens path and loads it with the format implied by its extension.
func LoadFile(path string) (*core.Registry, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workload file: %w", err)
	}
	defer f.Close()

	return Load(f, format)
}

// Load reads a process list and registers it in file order.
func Load(r io.Reader, format Format) (*core.Registry, error) {
	switch format {
	case FormatCSV:
		return loadCSV(r)
	case FormatYAML:
		return loadYAML(r)
	}
	return nil, fmt.Errorf("%w: unknown workload format %q", core.ErrInvalidInput, format)
}

// loadCSV reads rows of name,burst_time. The first row may be the header
// name,burst_time (or name,burst).
func loadCSV(r io.Reader) (*core.Registry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", core.ErrInvalidInput, err)
	}

	registry := core.NewRegistry()
	for i, row := range rows {
		line := i + 1
		if len(row) != 2 {
			return nil, fmt.Errorf("%w: line %d: want 2 fields (name,burst_time), got %d", core.ErrInvalidInput, line, len(row))
		}
		if i == 0 && isHeader(row) {
			continue
		}
		burst, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: burst time %q is not an integer", core.ErrInvalidInput, line, row[1])
		}
		if _, err := registry.AddProcess(row[0], burst); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	return registry, nil
}

func isHeader(row []string) bool {
	name := strings.ToLower(strings.TrimSpace(row[0]))
	burst := strings.ToLower(strings.TrimSpace(row[1]))
	return name == "name" && (burst == "burst_time" || burst == "burst")
}

func loadYAML(r io.Reader) (*core.Registry, error) {
	var doc requests.ScheduleRequests
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: reading YAML: %v", core.ErrInvalidInput, err)
	}
	return FromJobs(doc.Processes)
}

// FromJobs registers request jobs in order.
func FromJobs(jobs []requests.Job) (*core.Registry, error) {
	registry := core.NewRegistry()
	for i, j := range jobs {
		if _, err := registry.AddProcess(j.Name, j.BurstTime); err != nil {
			return nil, fmt.Errorf("processes[%d]: %w", i, err)
		}
	}
	return registry, nil
}

// Demo returns the five-process desktop workload used by the demo command.
func Demo() *core.Registry {
	registry, err := FromJobs([]requests.Job{
		{Name: "Chrome", BurstTime: 5},
		{Name: "VSCode", BurstTime: 3},
		{Name: "Terminal", BurstTime: 8},
		{Name: "Spotify", BurstTime: 6},
		{Name: "Explorer", BurstTime: 4},
	})
	if err != nil {
		panic(err)
	}
	return registry
}
