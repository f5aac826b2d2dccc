package timeseries

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	s := New(values)

	if s.Len() != 5 {
		t.Errorf("Expected length 5, got %d", s.Len())
	}

	for i, v := range s.Values {
		if v != values[i] {
			t.Errorf("Expected value %f at index %d, got %f", values[i], i, v)
		}
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"simple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"single", []float64{5}, 5.0},
		{"negative", []float64{-1, -2, -3}, -2.0},
		{"mixed", []float64{-1, 0, 1}, 0.0},
		{"empty", []float64{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.values)
			result := s.Mean()
			if math.Abs(result-tt.expected) > 1e-10 {
				t.Errorf("Expected mean %f, got %f", tt.expected, result)
			}
		})
	}
}

func TestVariance(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	expected := 4.571428571428571

	result := s.Variance()
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Expected variance %f, got %f", expected, result)
	}
}

func TestStd(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	expected := math.Sqrt(4.571428571428571)

	result := s.Std()
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Expected std %f, got %f", expected, result)
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected bool
	}{
		{"finite", []float64{1, 2, 3}, true},
		{"empty", []float64{}, true},
		{"nan", []float64{1, math.NaN(), 3}, false},
		{"posinf", []float64{1, math.Inf(1)}, false},
		{"neginf", []float64{math.Inf(-1), 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.values)
			if s.IsFinite() != tt.expected {
				t.Errorf("Expected IsFinite=%v for %v", tt.expected, tt.values)
			}
		})
	}
}

func TestDemean(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})
	centered := s.Demean()

	if math.Abs(centered.Mean()) > 1e-10 {
		t.Errorf("Expected mean close to 0, got %f", centered.Mean())
	}

	expected := []float64{-2, -1, 0, 1, 2}
	for i, v := range centered.Values {
		if math.Abs(v-expected[i]) > 1e-10 {
			t.Errorf("Expected %f at index %d, got %f", expected[i], i, v)
		}
	}

	// Original should be untouched
	if s.Values[0] != 1 {
		t.Errorf("Demean modified the original series")
	}
}

func TestTail(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})

	tail := s.Tail(2)
	expected := []float64{4, 5}
	if len(tail.Values) != len(expected) {
		t.Fatalf("Expected length %d, got %d", len(expected), len(tail.Values))
	}
	for i, v := range tail.Values {
		if v != expected[i] {
			t.Errorf("Expected %f at index %d, got %f", expected[i], i, v)
		}
	}

	// Tail longer than the series returns the whole series
	all := s.Tail(10)
	if all.Len() != s.Len() {
		t.Errorf("Expected full series, got length %d", all.Len())
	}

	empty := s.Tail(0)
	if empty.Len() != 0 {
		t.Errorf("Expected empty series, got length %d", empty.Len())
	}
}

func TestSlice(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})
	sliced := s.Slice(1, 4)

	expected := []float64{2, 3, 4}
	if len(sliced.Values) != len(expected) {
		t.Errorf("Expected length %d, got %d", len(expected), len(sliced.Values))
	}

	for i, v := range sliced.Values {
		if math.Abs(v-expected[i]) > 1e-10 {
			t.Errorf("Expected %f at index %d, got %f", expected[i], i, v)
		}
	}
}

func TestCopy(t *testing.T) {
	s := New([]float64{1, 2, 3})
	copied := s.Copy()

	// Modify original
	s.Values[0] = 100

	// Copy should be unchanged
	if copied.Values[0] != 1 {
		t.Errorf("Copy was modified when original changed")
	}
}
