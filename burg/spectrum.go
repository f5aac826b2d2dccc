package burg

import "math"

// PSD estimates the AR power spectral density of the fitted model at nfreq
// evenly spaced normalized frequencies from 0 to 0.5 cycles per sample
// (inclusive). The density at frequency f is
//
//	S(f) = sigma^2 / |1 + a_1 e^{-2*pi*i*f} + ... + a_m e^{-2*pi*i*f*m}|^2
//
// where sigma^2 is the residual variance of the fit. Maximum entropy spectral
// estimation is the classical application of Burg's method: the AR spectrum
// resolves sharp peaks from short records where periodogram methods smear them.
func (m *Model) PSD(nfreq int) ([]float64, []float64, error) {
	if m.state == nil {
		return nil, nil, ErrNotTrained
	}
	if nfreq < 2 {
		nfreq = 2
	}

	freqs := make([]float64, nfreq)
	psd := make([]float64, nfreq)

	for i := 0; i < nfreq; i++ {
		f := 0.5 * float64(i) / float64(nfreq-1)
		freqs[i] = f

		// Transfer function denominator 1 + sum a_k e^{-2*pi*i*f*k}
		re, im := 1.0, 0.0
		for k, a := range m.state.coeffs {
			w := 2 * math.Pi * f * float64(k+1)
			re += a * math.Cos(w)
			im -= a * math.Sin(w)
		}

		psd[i] = m.state.variance / (re*re + im*im)
	}

	return freqs, psd, nil
}

// PeakFrequency returns the normalized frequency in [0, 0.5] at which the AR
// spectral density is largest, evaluated on a grid of nfreq points.
func (m *Model) PeakFrequency(nfreq int) (float64, error) {
	freqs, psd, err := m.PSD(nfreq)
	if err != nil {
		return 0, err
	}

	best := 0
	for i := 1; i < len(psd); i++ {
		if psd[i] > psd[best] {
			best = i
		}
	}
	return freqs[best], nil
}
