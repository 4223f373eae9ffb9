package arrival

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-seismic/dsp/core"
	"github.com/cwbudde/algo-seismic/internal/testutil"
)

const fs = 100.0

// burst is a weak 2 Hz tone that jumps to full amplitude at sample 600.
func burst() []float64 {
	x := testutil.DeterministicSine(2, fs, 1, 1000)
	for i := range 600 {
		x[i] *= 0.1
	}
	for i := 600; i < len(x); i++ {
		x[i] *= 10
	}
	return x
}

func TestPickFindsOnset(t *testing.T) {
	got, err := Pick(burst(), fs, DefaultConfig())
	if err != nil {
		t.Fatalf("Pick: %v", err)
	}
	if !got.Found || got.Index != 601 {
		t.Fatalf("Pick() = %+v, want index 601", got)
	}
	testutil.RequireNear(t, "time", got.Time, 6.01, 1e-12)
	if got.Ratio < DefaultTrigger {
		t.Fatalf("ratio %v below trigger", got.Ratio)
	}
}

func TestStationarySignalDoesNotTrigger(t *testing.T) {
	x := testutil.DeterministicSine(2, fs, 5, 1000)

	ratio, err := STALTA(x, fs, DefaultConfig())
	if err != nil {
		t.Fatalf("STALTA: %v", err)
	}
	testutil.RequireAllNear(t, ratio[:499], 0, 0)
	testutil.RequireAllNear(t, ratio[499:], 1, 1e-9)

	got, err := Pick(x, fs, DefaultConfig())
	if err != nil {
		t.Fatalf("Pick: %v", err)
	}
	if got.Found || got.Index != NoArrival {
		t.Fatalf("Pick() = %+v, want no arrival", got)
	}
}

func TestShortRecordHasNoRatio(t *testing.T) {
	ratio, err := STALTA(testutil.DeterministicSine(2, fs, 1, 100), fs, DefaultConfig())
	if err != nil {
		t.Fatalf("STALTA: %v", err)
	}
	testutil.RequireAllNear(t, ratio, 0, 0)
}

func TestSilenceHasNoRatio(t *testing.T) {
	got, err := Pick(make([]float64, 1000), fs, DefaultConfig())
	if err != nil {
		t.Fatalf("Pick: %v", err)
	}
	if got.Found {
		t.Fatalf("Pick() = %+v on silence", got)
	}
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		fs   float64
		cfg  Config
		want error
	}{
		{name: "zero rate", fs: 0, cfg: DefaultConfig(), want: ErrInvalidSampleRate},
		{name: "nan rate", fs: math.NaN(), cfg: DefaultConfig(), want: ErrInvalidSampleRate},
		{name: "short zero", fs: fs, cfg: Config{ShortWindow: 0, LongWindow: 5, Trigger: 3}, want: ErrInvalidWindow},
		{name: "long not longer", fs: fs, cfg: Config{ShortWindow: 5, LongWindow: 5, Trigger: 3}, want: ErrInvalidWindow},
		{name: "trigger zero", fs: fs, cfg: Config{ShortWindow: 0.5, LongWindow: 5, Trigger: 0}, want: ErrInvalidTrigger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := STALTA([]float64{1, 2, 3}, tt.fs, tt.cfg)
			if !errors.Is(err, tt.want) || !errors.Is(err, core.ErrInvalidInput) {
				t.Fatalf("STALTA error = %v, want %v", err, tt.want)
			}
		})
	}
}
