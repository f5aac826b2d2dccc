// Package burg implements autoregressive (AR) models fitted with Burg's method.
//
// An AR(m) model predicts each series value as a linear combination of its m
// immediate predecessors. Burg's method estimates the coefficients with a
// recursion that minimizes the sum of forward and backward prediction-error
// power at each order, subject to the Levinson-Durbin constraint. Unlike
// Yule-Walker estimation it works directly on the data rather than on sample
// autocorrelations, which makes it accurate on short records.
//
// # Basic Usage
//
// Create and fit a model, then forecast:
//
//	model, err := burg.New(4) // AR(4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	coeffs, err := model.Fit(series)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Forecast up to order steps ahead
//	forecasts, _ := model.Predict(4)
//
// The stored coefficients follow the AR polynomial sign convention: the next
// value is predicted as the negated linear combination
//
//	x[t] = -(a_1*x[t-1] + a_2*x[t-2] + ... + a_m*x[t-m])
//
// # Forecast Horizon
//
// Predict forecasts at most order steps per call; a steps value of 0 or above
// the order is clamped to the order. To forecast further, append the forecasts
// to the series and fit again.
//
// # Spectral Estimation
//
// The fitted model doubles as a maximum entropy spectral estimator:
//
//	freqs, psd, _ := model.PSD(512)
//	peak, _ := model.PeakFrequency(512)
//
// # Degenerate Input
//
// When the prediction-error energy reaches zero mid-recursion (for example on
// an all-zero series), the reflection coefficient is undefined. Fit detects
// this and returns ErrDegenerateRecursion rather than silently producing NaN
// coefficients.
//
// # Residual Analysis
//
// Analyze in-sample residuals to check model adequacy:
//
//	residuals := model.Residuals()
//	// Use stats.LjungBox to test for remaining autocorrelation
//
// For an unconstrained least-squares fit of the same AR form, use the ols
// package.
package burg
