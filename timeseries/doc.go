// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing time series data,
// along with functions for data loading and the transformations needed for
// autoregressive modeling.
//
// # Creating a Series
//
// Create a time series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// # Loading from CSV
//
// Load time series data from CSV files:
//
//	// Load a specific column
//	series, err := timeseries.LoadCSVColumn("data.csv", "value")
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := series.Mean()
//	std := series.Std()
//	variance := series.Variance()
//
// # Transformations
//
// Prepare a series for AR fitting:
//
//	// Remove the mean (AR models assume a zero-mean process)
//	centered := series.Demean()
//
//	// Seed state for forecasting
//	tail := series.Tail(4)
//
// # Slicing and Manipulation
//
// Work with subsets of the data:
//
//	subset := series.Slice(10, 50)
//	copy := series.Copy()
//
// # CSV Options
//
// Customize CSV loading:
//
//	opts := &timeseries.CSVOptions{
//	    DateColumn:  "date",
//	    ValueColumn: "value",
//	    DateFormat:  "2006-01-02",
//	    HasHeader:   true,
//	}
//	series, err := timeseries.LoadCSVFromReader(reader, opts)
package timeseries
