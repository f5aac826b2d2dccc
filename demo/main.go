// Package main demonstrates Burg AR fitting, forecasting, and spectral estimation.
package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/sartorproj/goburg/burg"
	"github.com/sartorproj/goburg/ols"
	"github.com/sartorproj/goburg/stats"
	"github.com/sartorproj/goburg/timeseries"
)

// Dataset defines a demonstration time series.
type Dataset struct {
	Name   string
	Order  int
	Values []float64
}

func main() {
	fmt.Println(strings.Repeat("=", 72))
	fmt.Println("GoBurg Demonstration - AR modeling with Burg's method")
	fmt.Println(strings.Repeat("=", 72))

	datasets := []Dataset{
		{Name: "Sampled sinusoid", Order: 4, Values: sinusoid(96, 0.3)},
		{Name: "AR(2) process", Order: 2, Values: ar2(240, 1.2, -0.5)},
		{Name: "Doubling sequence", Order: 1, Values: []float64{1, 2, 4, 8, 16, 32, 64}},
	}

	// Optionally analyze a CSV file passed on the command line.
	if len(os.Args) > 1 {
		series, err := timeseries.LoadCSV(os.Args[1], nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load %s: %v\n", os.Args[1], err)
			os.Exit(1)
		}
		datasets = append(datasets, Dataset{Name: os.Args[1], Order: 4, Values: series.Values})
	}

	for i, ds := range datasets {
		fmt.Printf("\n[%d/%d] %s (n=%d, order=%d)\n", i+1, len(datasets), ds.Name, len(ds.Values), ds.Order)
		fmt.Println(strings.Repeat("-", 72))
		analyze(ds)
	}
}

func analyze(ds Dataset) {
	series := timeseries.New(ds.Values)

	model, err := burg.New(ds.Order)
	if err != nil {
		fmt.Printf("  burg: %v\n", err)
		return
	}

	coeffs, err := model.Fit(series)
	if err != nil {
		fmt.Printf("  burg fit: %v\n", err)
		return
	}

	forecast, _ := model.Predict(ds.Order)
	fmt.Printf("  Burg coefficients: %s\n", fmtVec(coeffs))
	fmt.Printf("  Burg forecast:     %s\n", fmtVec(forecast))
	fmt.Printf("  Residual variance: %.6g\n", model.Variance())

	if peak, err := model.PeakFrequency(1024); err == nil {
		fmt.Printf("  Spectral peak:     %.4f cycles/sample\n", peak)
	}

	// Cross-check against the unconstrained least-squares fit.
	ref, _ := ols.New(ds.Order)
	if refCoeffs, err := ref.Fit(series); err == nil {
		refForecast, _ := ref.Predict(ds.Order)
		fmt.Printf("  OLS coefficients:  %s\n", fmtVec(refCoeffs))
		fmt.Printf("  OLS forecast:      %s\n", fmtVec(refForecast))
	} else {
		fmt.Printf("  OLS fit: %v\n", err)
	}

	// Residual whiteness check
	if res := model.Residuals(); len(res) >= 10 {
		if lb := stats.LjungBox(timeseries.New(res), 10, model.Order()); lb != nil {
			fmt.Printf("  Ljung-Box:         Q=%.3f p=%.3f\n", lb.Statistic, lb.PValue)
		}
	}
}

func sinusoid(n int, omega float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = math.Sin(omega * float64(i))
	}
	return values
}

// ar2 generates a deterministic AR(2) process with a small periodic innovation.
func ar2(n int, phi1, phi2 float64) []float64 {
	values := make([]float64, n)
	x1, x2 := 1.0, 0.5
	for i := 0; i < n; i++ {
		next := phi1*x1 + phi2*x2 + float64((i*37)%11-5)/50
		values[i] = next
		x2, x1 = x1, next
	}
	return values
}

func fmtVec(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.4f", x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
