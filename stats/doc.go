// Package stats provides statistical tests and analysis functions for time series.
//
// This package includes autocorrelation functions and residual diagnostics
// for AR model validation.
//
// # Autocorrelation Functions
//
// Analyze autocorrelation patterns:
//
//	// Autocorrelation Function
//	acf := stats.ACF(series, 20)
//
//	// Partial Autocorrelation Function
//	pacf := stats.PACF(series, 20)
//
//	// ACF with confidence bounds
//	acfResult := stats.ACFWithConfidence(series, 20)
//	significant := stats.SignificantLags(acfResult.Values, acfResult.ConfBounds)
//
// The PACF of an AR(m) process cuts off after lag m, which makes it the
// standard visual check that a fitted order is plausible.
//
// # Residual Diagnostics
//
// Test fitted-model residuals for remaining autocorrelation:
//
//	residuals := timeseries.New(model.Residuals())
//	lb := stats.LjungBox(residuals, 10, model.Order())
//	if lb.PValue > 0.05 {
//	    // Residuals are white noise (good)
//	}
package stats
