package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-seismic/dsp/fft"
	"github.com/cwbudde/algo-seismic/internal/logging"
	"github.com/cwbudde/algo-seismic/measure/analysis"
	"github.com/cwbudde/algo-seismic/measure/arrival"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		input string
		full  bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyse acceleration records",
		Example: `  seismo analyze --input records.json
  seismo analyze -i records.yaml -o yaml --corner-frequency 0.1 --fft planned
  cat records.json | seismo analyze --damping 0.02`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runAnalyze(cmd, input, full)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", "-", "records file (JSON or YAML), - for stdin")
	f.BoolVar(&full, "full", false, "include the processed acceleration, velocity and displacement series")
	f.StringP("output", "o", "json", "output format (json, yaml)")
	f.Float64("corner-frequency", analysis.DefaultCornerFrequency, "high-pass corner frequency in Hz")
	f.Float64("sample-rate", 0, "sample rate in Hz; 0 derives it from the time stamps")
	f.Float64("damping", 0.05, "oscillator damping ratio")
	f.Float64("bracket-ratio", 0.05, "bracketed-duration threshold as a fraction of PGA")
	f.String("fft", "radix2", "FFT backend (radix2, planned)")
	f.Int("workers", 0, "concurrent response-spectrum periods per record (0 = GOMAXPROCS)")
	f.Int("record-workers", 0, "concurrent records (0 = GOMAXPROCS)")
	f.Int("smooth-octave", 0, "report the Fourier spectrum smoothed over 1/N-octave bands (0 = raw)")
	f.Float64("sta-window", arrival.DefaultShortWindow, "STA window in seconds")
	f.Float64("lta-window", arrival.DefaultLongWindow, "LTA window in seconds")
	f.Float64("sta-trigger", arrival.DefaultTrigger, "STA/LTA trigger ratio")

	return cmd
}

func (a *app) runAnalyze(cmd *cobra.Command, input string, full bool) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	records, err := a.readInput(cmd, input)
	if err != nil {
		return err
	}

	transformer, err := fft.ByName(a.cfg.FFT)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	ctx = logging.WithRun(ctx, logging.Named(a.log, "analyze"), runID)
	log := logging.From(ctx)

	an, err := analysis.New(
		analysis.WithCornerFrequency(a.cfg.CornerFrequency),
		analysis.WithSampleRate(a.cfg.SampleRate),
		analysis.WithDamping(a.cfg.Damping),
		analysis.WithBracketRatio(a.cfg.BracketRatio),
		analysis.WithArrival(arrival.Config{
			ShortWindow: a.cfg.Arrival.ShortWindow,
			LongWindow:  a.cfg.Arrival.LongWindow,
			Trigger:     a.cfg.Arrival.Trigger,
		}),
		analysis.WithFourierSmoothing(a.cfg.SmoothOctave),
		analysis.WithTransformer(transformer),
		analysis.WithWorkers(a.cfg.Workers),
		analysis.WithLogger(*log),
	)
	if err != nil {
		return err
	}

	log.Info().Int("records", len(records)).Str("fft", a.cfg.FFT).Msg("analysis started")
	results, err := an.AnalyzeAll(ctx, records, a.cfg.RecordWorkers)
	if err != nil {
		log.Error().Err(err).Msg("analysis failed")
		return err
	}
	log.Info().Msg("analysis finished")

	if !full {
		for i := range results {
			results[i].Acceleration = nil
			results[i].Velocity = nil
			results[i].Displacement = nil
		}
	}

	return writeReport(cmd.OutOrStdout(), a.cfg.Output, report{RunID: runID, Records: results})
}

func (a *app) readInput(cmd *cobra.Command, input string) ([]analysis.Record, error) {
	var r io.Reader = cmd.InOrStdin()
	if input != "-" {
		file, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		r = file
	}
	return readRecords(r, formatOf(input))
}
