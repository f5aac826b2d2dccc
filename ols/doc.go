// Package ols implements autoregressive (AR) models fitted by ordinary least squares.
//
// The estimator regresses each observation on its m immediate predecessors
// and solves the resulting overdetermined system with a QR-based least-squares
// solve. It mirrors the burg package's API and sign convention so the two
// estimators can be swapped or compared:
//
//	model, _ := ols.New(2)
//	coeffs, err := model.Fit(series)
//	forecasts, _ := model.Predict(2)
//
// # When to Prefer OLS over Burg
//
// Burg's reflection coefficients are bounded in magnitude by one, which
// guarantees a stable AR model but biases estimates on non-stationary data.
// The least-squares fit is unconstrained: on data generated by an exact
// linear recurrence (stable or not) it recovers the generating coefficients
// exactly. On short noisy records Burg's method is usually the better
// estimator; OLS is the useful cross-check.
package ols
