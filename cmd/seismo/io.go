package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-seismic/measure/analysis"
)

var errNoRecords = errors.New("input contains no records")

// inputRecord is one record as it appears in an input document.
type inputRecord struct {
	ID           string    `json:"id" yaml:"id"`
	Direction    string    `json:"direction" yaml:"direction"`
	Time         []float64 `json:"time,omitempty" yaml:"time,omitempty"`
	SampleRate   float64   `json:"sample_rate,omitempty" yaml:"sample_rate,omitempty"`
	Acceleration []float64 `json:"acceleration" yaml:"acceleration"`
}

type inputDocument struct {
	Records []inputRecord `json:"records" yaml:"records"`
}

// report is the output document.
type report struct {
	RunID   string            `json:"run_id" yaml:"run_id"`
	Records []analysis.Result `json:"records" yaml:"records"`
}

// formatOf picks the input decoder from the file extension.
func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

func readRecords(r io.Reader, format string) ([]analysis.Record, error) {
	var doc inputDocument
	switch format {
	case "yaml":
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode yaml input: %w", err)
		}
	default:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json input: %w", err)
		}
	}
	if len(doc.Records) == 0 {
		return nil, errNoRecords
	}

	out := make([]analysis.Record, 0, len(doc.Records))
	for i, in := range doc.Records {
		rec, err := in.toRecord()
		if err != nil {
			return nil, fmt.Errorf("record %d (%q): %w", i, in.ID, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (in inputRecord) toRecord() (analysis.Record, error) {
	dir, err := analysis.ParseDirection(in.Direction)
	if err != nil {
		return analysis.Record{}, err
	}

	var ts analysis.TimeSeries
	switch {
	case len(in.Time) > 0:
		ts, err = analysis.NewTimeSeries(in.Time, in.Acceleration)
	case in.SampleRate > 0:
		ts, err = analysis.UniformTimeSeries(in.Acceleration, 1/in.SampleRate)
	default:
		err = errors.New("record needs either time stamps or a sample rate")
	}
	if err != nil {
		return analysis.Record{}, err
	}
	return analysis.Record{ID: in.ID, Direction: dir, Series: ts}, nil
}

func writeReport(w io.Writer, format string, rep report) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
