// Package burg implements autoregressive (AR) models fitted with Burg's method.
package burg

import (
	"errors"
	"fmt"
	"math"

	"github.com/sartorproj/goburg/timeseries"
)

var (
	// ErrInvalidOrder is returned by New when the order is not positive.
	ErrInvalidOrder = errors.New("model order must be positive")

	// ErrInvalidInput is returned by Fit when the series is nil, empty,
	// or contains non-finite values.
	ErrInvalidInput = errors.New("series is not a well-formed numeric sequence")

	// ErrInsufficientData is returned by Fit when the series is not longer
	// than the model order.
	ErrInsufficientData = errors.New("series length must exceed the model order")

	// ErrNotTrained is returned by Predict before a successful Fit.
	ErrNotTrained = errors.New("model has not been fitted")

	// ErrDegenerateRecursion is returned by Fit when the total prediction-error
	// energy vanishes mid-recursion. Dividing by it would poison the remaining
	// coefficients with NaN or Inf, so Fit fails instead of returning them.
	ErrDegenerateRecursion = errors.New("prediction-error energy vanished during recursion")
)

// Model represents an AR model of fixed order fitted with Burg's method.
//
// The order is immutable for the model's lifetime. Fit replaces the fitted
// state (coefficients, series tail, residuals) as a whole, so a failed re-fit
// leaves the previous fit intact. A Model must not be shared between
// concurrent Fit and Predict calls without external synchronization.
type Model struct {
	order int
	state *fit
}

// fit is the immutable result of one successful Fit call.
type fit struct {
	coeffs    []float64 // a_1..a_m (leading unit term not stored)
	tail      []float64 // last order+1 observations of the training series
	residuals []float64 // one-step in-sample prediction errors
	variance  float64
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

// Fit estimates the AR coefficients a_1..a_m from the series using the Burg
// recursion and returns them. On success the coefficients, the tail of the
// training series, and the in-sample residuals are stored on the model,
// replacing any previous fit. On failure the previous fit is untouched.
func (m *Model) Fit(series *timeseries.Series) ([]float64, error) {
	if series == nil || series.Len() == 0 {
		return nil, fmt.Errorf("%w: nil or empty series", ErrInvalidInput)
	}
	if !series.IsFinite() {
		return nil, fmt.Errorf("%w: series contains NaN or Inf", ErrInvalidInput)
	}

	x := series.Values
	n := len(x)
	if n <= m.order {
		return nil, fmt.Errorf("%w: need more than %d observations, got %d", ErrInsufficientData, m.order, n)
	}

	coeffs, err := burgRecursion(x, m.order)
	if err != nil {
		return nil, err
	}

	tail := make([]float64, m.order+1)
	copy(tail, x[n-m.order-1:])

	residuals, variance := computeResiduals(x, coeffs)

	m.state = &fit{
		coeffs:    coeffs,
		tail:      tail,
		residuals: residuals,
		variance:  variance,
	}

	result := make([]float64, len(coeffs))
	copy(result, coeffs)
	return result, nil
}

// burgRecursion runs the Burg recursion on x and returns the AR coefficients
// a_1..a_order. At each stage the reflection coefficient is chosen to minimize
// the sum of forward and backward prediction-error power, and the coefficient
// vector is updated under the Levinson-Durbin constraint.
func burgRecursion(x []float64, order int) ([]float64, error) {
	n := len(x)

	a := make([]float64, order+1)
	a[0] = 1

	f := make([]float64, n) // forward prediction errors
	b := make([]float64, n) // backward prediction errors
	copy(f, x)
	copy(b, x)

	sum := 0.0
	for _, v := range f {
		sum += v * v
	}
	d := 2*sum - f[0]*f[0] - b[n-1]*b[n-1]

	for k := 0; k < order; k++ {
		num := 0.0
		for i := 0; i <= n-k-2; i++ {
			num += f[i+k+1] * b[i]
		}

		mu := -2 * num / d
		if d == 0 || math.IsNaN(mu) || math.IsInf(mu, 0) {
			return nil, fmt.Errorf("%w: at stage %d", ErrDegenerateRecursion, k)
		}

		// Symmetric in-place coefficient update. Both new values must be
		// computed from the old pair before either is written.
		for i := 0; i <= (k+1)/2; i++ {
			t1 := a[i] + mu*a[k+1-i]
			t2 := a[k+1-i] + mu*a[i]
			a[i], a[k+1-i] = t1, t2
		}

		// Same simultaneous-update rule for the error vectors.
		for i := 0; i <= n-k-2; i++ {
			t1 := f[i+k+1] + mu*b[i]
			t2 := b[i] + mu*f[i+k+1]
			f[i+k+1], b[i] = t1, t2
		}

		d = (1-mu*mu)*d - f[k+1]*f[k+1] - b[n-k-2]*b[n-k-2]
	}

	return a[1:], nil
}

// computeResiduals computes the one-step in-sample prediction errors of the
// fitted coefficients over the training data, and their variance.
func computeResiduals(x []float64, coeffs []float64) ([]float64, float64) {
	m := len(coeffs)
	n := len(x)

	res := make([]float64, 0, n-m)
	sse := 0.0
	for t := m; t < n; t++ {
		pred := 0.0
		for j := 0; j < m; j++ {
			pred -= coeffs[j] * x[t-1-j]
		}
		r := x[t] - pred
		res = append(res, r)
		sse += r * r
	}

	variance := 0.0
	if len(res) > m {
		variance = sse / float64(len(res)-m)
	} else if len(res) > 0 {
		variance = sse / float64(len(res))
	}

	return res, variance
}

// Predict forecasts future values from the stored coefficients and series
// tail. A steps value of 0 or greater than the model order is clamped to the
// order: the order is the maximum single-call horizon. Longer horizons require
// re-fitting on the extended series. Predict does not mutate model state.
func (m *Model) Predict(steps int) ([]float64, error) {
	if m.state == nil {
		return nil, ErrNotTrained
	}

	n := steps
	if n <= 0 || n > m.order {
		n = m.order
	}

	buf := make([]float64, m.order, m.order+n)
	copy(buf, m.state.tail[len(m.state.tail)-m.order:])

	for i := m.order; i < m.order+n; i++ {
		next := 0.0
		for j := 0; j < m.order; j++ {
			next -= m.state.coeffs[j] * buf[i-1-j]
		}
		buf = append(buf, next)
	}

	return buf[m.order:], nil
}

// Coefficients returns the AR coefficients a_1..a_m from the most recent
// successful Fit, or nil if the model has not been fitted.
func (m *Model) Coefficients() []float64 {
	if m.state == nil {
		return nil
	}
	result := make([]float64, len(m.state.coeffs))
	copy(result, m.state.coeffs)
	return result
}

// Residuals returns the one-step in-sample prediction errors from the most
// recent successful Fit, or nil if the model has not been fitted.
func (m *Model) Residuals() []float64 {
	if m.state == nil {
		return nil
	}
	result := make([]float64, len(m.state.residuals))
	copy(result, m.state.residuals)
	return result
}

// Variance returns the residual variance from the most recent successful Fit.
// It returns 0 if the model has not been fitted.
func (m *Model) Variance() float64 {
	if m.state == nil {
		return 0
	}
	return m.state.variance
}
