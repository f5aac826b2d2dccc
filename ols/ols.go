// Package ols implements autoregressive (AR) models fitted by ordinary least squares.
package ols

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goburg/timeseries"
)

var (
	// ErrInvalidOrder is returned by New when the order is not positive.
	ErrInvalidOrder = errors.New("model order must be positive")

	// ErrInvalidInput is returned by Fit when the series is nil, empty,
	// or contains non-finite values.
	ErrInvalidInput = errors.New("series is not a well-formed numeric sequence")

	// ErrInsufficientData is returned by Fit when the series has fewer than
	// 2*order+1 observations, the minimum for a determined lag regression.
	ErrInsufficientData = errors.New("series too short for least-squares AR fit")

	// ErrNotTrained is returned by Predict before a successful Fit.
	ErrNotTrained = errors.New("model has not been fitted")

	// ErrSingularSystem is returned by Fit when the lag regression has no
	// unique least-squares solution.
	ErrSingularSystem = errors.New("lag regression matrix is singular")
)

// Model represents an AR model of fixed order fitted by least squares on the
// lag matrix. It shares the burg package's API shape and coefficient sign
// convention, so the two estimators are interchangeable; unlike Burg's method
// the least-squares fit is unconstrained, so it recovers exact coefficients
// from exact linear recurrences (at the price of possibly unstable models).
type Model struct {
	order  int
	coeffs []float64
	tail   []float64
}

// New creates a new AR model with the specified order.
func New(order int) (*Model, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidOrder, order)
	}
	return &Model{order: order}, nil
}

// Order returns the model order.
func (m *Model) Order() int {
	return m.order
}

// Fit estimates the AR coefficients a_1..a_m by solving the least-squares
// lag regression
//
//	x[t] ~ phi_1*x[t-1] + ... + phi_m*x[t-m],  a_j = -phi_j
//
// and returns them. The previous fit, if any, is replaced on success only.
func (m *Model) Fit(series *timeseries.Series) ([]float64, error) {
	if series == nil || series.Len() == 0 {
		return nil, fmt.Errorf("%w: nil or empty series", ErrInvalidInput)
	}
	if !series.IsFinite() {
		return nil, fmt.Errorf("%w: series contains NaN or Inf", ErrInvalidInput)
	}

	x := series.Values
	n := len(x)
	rows := n - m.order
	if rows < m.order+1 {
		return nil, fmt.Errorf("%w: need at least %d observations, got %d", ErrInsufficientData, 2*m.order+1, n)
	}

	X := mat.NewDense(rows, m.order, nil)
	y := mat.NewVecDense(rows, nil)
	for t := 0; t < rows; t++ {
		for j := 0; j < m.order; j++ {
			X.Set(t, j, x[t+m.order-1-j])
		}
		y.SetVec(t, x[t+m.order])
	}

	var phi mat.VecDense
	if err := phi.SolveVec(X, y); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularSystem, err)
	}

	coeffs := make([]float64, m.order)
	for j := range coeffs {
		coeffs[j] = -phi.AtVec(j)
	}

	tail := make([]float64, m.order)
	copy(tail, x[n-m.order:])

	m.coeffs = coeffs
	m.tail = tail

	result := make([]float64, len(coeffs))
	copy(result, coeffs)
	return result, nil
}

// Predict forecasts future values from the stored coefficients and series
// tail, with the same clamp rule as the burg package: steps of 0 or above the
// order is treated as the order.
func (m *Model) Predict(steps int) ([]float64, error) {
	if m.coeffs == nil {
		return nil, ErrNotTrained
	}

	n := steps
	if n <= 0 || n > m.order {
		n = m.order
	}

	buf := make([]float64, m.order, m.order+n)
	copy(buf, m.tail)

	for i := m.order; i < m.order+n; i++ {
		next := 0.0
		for j := 0; j < m.order; j++ {
			next -= m.coeffs[j] * buf[i-1-j]
		}
		buf = append(buf, next)
	}

	return buf[m.order:], nil
}

// Coefficients returns the AR coefficients a_1..a_m from the most recent
// successful Fit, or nil if the model has not been fitted.
func (m *Model) Coefficients() []float64 {
	if m.coeffs == nil {
		return nil
	}
	result := make([]float64, len(m.coeffs))
	copy(result, m.coeffs)
	return result
}
