package burg

import (
	"errors"
	"math"
	"testing"

	"github.com/sartorproj/goburg/timeseries"
)

func TestPSDNotTrained(t *testing.T) {
	model, _ := New(4)
	if _, _, err := model.PSD(128); !errors.Is(err, ErrNotTrained) {
		t.Errorf("Expected ErrNotTrained, got %v", err)
	}
}

func TestPSDShape(t *testing.T) {
	n := 64
	values := make([]float64, n)
	for i := range values {
		values[i] = math.Sin(0.3*float64(i)) + 0.1*math.Sin(1.1*float64(i))
	}

	model, _ := New(6)
	if _, err := model.Fit(timeseries.New(values)); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	freqs, psd, err := model.PSD(256)
	if err != nil {
		t.Fatalf("PSD failed: %v", err)
	}

	if len(freqs) != 256 || len(psd) != 256 {
		t.Fatalf("Expected 256 points, got %d and %d", len(freqs), len(psd))
	}
	if freqs[0] != 0 {
		t.Errorf("Expected first frequency 0, got %f", freqs[0])
	}
	if math.Abs(freqs[len(freqs)-1]-0.5) > 1e-15 {
		t.Errorf("Expected last frequency 0.5, got %f", freqs[len(freqs)-1])
	}

	for i, p := range psd {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			t.Errorf("PSD value %d is not a non-negative finite number: %g", i, p)
		}
	}
}

func TestPeakFrequencySinusoid(t *testing.T) {
	// A sinusoid at angular frequency 0.3 rad/sample has normalized frequency
	// 0.3/(2*pi) ~ 0.0477 cycles/sample. The AR spectrum should peak there.
	n := 64
	values := make([]float64, n)
	for i := range values {
		values[i] = math.Sin(0.3 * float64(i))
	}

	model, _ := New(4)
	if _, err := model.Fit(timeseries.New(values)); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	peak, err := model.PeakFrequency(1024)
	if err != nil {
		t.Fatalf("PeakFrequency failed: %v", err)
	}

	expected := 0.3 / (2 * math.Pi)
	if math.Abs(peak-expected) > 0.005 {
		t.Errorf("Expected peak near %f, got %f", expected, peak)
	}

	t.Logf("Spectral peak at %f (expected %f)", peak, expected)
}
