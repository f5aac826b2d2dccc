// Package goburg provides autoregressive (AR) time series modeling using Burg's method.
//
// GoBurg fits AR models of fixed order to univariate time series with Burg's
// recursive least-squares algorithm and uses the fitted coefficients to
// forecast future values. Burg's method estimates the AR coefficients by
// jointly minimizing forward and backward prediction-error power at each
// recursion order, which makes it well suited to short records and to
// spectral estimation.
//
// # Features
//
//   - AR model fitting via the Burg recursion
//   - Multi-step forecasting from the fitted coefficients
//   - Least-squares (OLS) AR estimation for cross-checking
//   - AR power spectral density estimation
//   - Autocorrelation analysis (ACF, PACF)
//   - Residual diagnostics (Ljung-Box)
//
// # Quick Start
//
// Fit a Burg AR model and forecast:
//
//	series := timeseries.New(values)
//	model, _ := burg.New(4) // AR(4)
//	coeffs, err := model.Fit(series)
//	forecasts, _ := model.Predict(4)
//
// Compare against the unconstrained least-squares fit:
//
//	ref, _ := ols.New(4)
//	ref.Fit(series)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - burg: AR models fitted with Burg's method
//   - ols: AR models fitted by ordinary least squares
//   - stats: Autocorrelation analysis and residual diagnostics
//   - timeseries: Time series data structures and utilities
//
// # References
//
//   - Burg, J.P. (1975). Maximum Entropy Spectral Analysis
//   - Kay, S.M., & Marple, S.L. (1981). Spectrum Analysis - A Modern Perspective
package goburg
