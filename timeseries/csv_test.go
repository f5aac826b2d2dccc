package timeseries

import (
	"strings"
	"testing"
)

func TestLoadCSVFromReader(t *testing.T) {
	// Test basic CSV loading
	csvData := `ds,y
2020-01-01,100
2020-01-02,101
2020-01-03,102
2020-01-04,103
2020-01-05,104`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Len() != 5 {
		t.Errorf("Expected 5 observations, got %d", series.Len())
	}

	// Check values
	expected := []float64{100, 101, 102, 103, 104}
	for i, v := range expected {
		if series.Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Values[i])
		}
	}

	t.Logf("Loaded %d values: %v", series.Len(), series.Values)
}

func TestLoadCSVWithNAValues(t *testing.T) {
	// Test handling of NA values
	csvData := `ds,y
2020-01-01,100
2020-01-02,NA
2020-01-03,102
2020-01-04,NaN
2020-01-05,104`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	// NA and NaN values should be skipped
	if series.Len() != 3 {
		t.Errorf("Expected 3 observations (NA values skipped), got %d", series.Len())
	}

	expected := []float64{100, 102, 104}
	for i, v := range expected {
		if series.Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Values[i])
		}
	}

	t.Logf("Series with NA skipped: %v", series.Values)
}

func TestLoadCSVMultipleColumns(t *testing.T) {
	// Test loading specific column
	csvData := `ds,level,flow,rainfall
2020-01-01,100,200,50
2020-01-02,110,210,55
2020-01-03,120,220,60`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()
	opts.ValueColumn = "flow"

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	expected := []float64{200, 210, 220}
	for i, v := range expected {
		if series.Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Values[i])
		}
	}

	t.Logf("flow column: %v", series.Values)
}

func TestLoadCSVQuotedFields(t *testing.T) {
	// Test handling of quoted fields
	csvData := `"ds","y"
"2020-01-01","1000000"
"2020-01-02","1000100"
"2020-01-03","1000200"`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Len() != 3 {
		t.Errorf("Expected 3 observations, got %d", series.Len())
	}

	t.Logf("Quoted fields loaded: %v", series.Values)
}

func TestLoadCSVNoValidData(t *testing.T) {
	csvData := `ds,y
2020-01-01,NA
2020-01-02,NaN`

	reader := strings.NewReader(csvData)

	_, err := LoadCSVFromReader(reader, DefaultCSVOptions())
	if err == nil {
		t.Error("Expected error for CSV with no valid values")
	}
}

func TestDefaultCSVOptions(t *testing.T) {
	opts := DefaultCSVOptions()

	if opts.ValueColumn != "y" {
		t.Errorf("Expected default value column 'y', got '%s'", opts.ValueColumn)
	}

	if opts.DateFormat != "2006-01-02" {
		t.Errorf("Expected default date format '2006-01-02', got '%s'", opts.DateFormat)
	}

	if !opts.HasHeader {
		t.Error("Expected HasHeader to be true by default")
	}

	if opts.Delimiter != ',' {
		t.Errorf("Expected default delimiter ',', got '%c'", opts.Delimiter)
	}
}
