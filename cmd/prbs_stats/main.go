// Copyright 2018 The PRBS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/pointlander/prbs"
)

const (
	// Polynomial is the polynomial the sequence statistics are taken from
	Polynomial = prbs.G15
	// Samples is the number of bits to generate for the statistics
	Samples = 1 << 17
	// Lags is the number of autocorrelation lags to plot
	Lags = 64
)

// Periods are the polynomials short enough to cycle exhaustively
var Periods = []struct {
	Name string
	Poly uint32
}{
	{"G7", prbs.G7},
	{"G8", prbs.G8},
	{"G15", prbs.G15},
	{"G16", prbs.G16},
}

// Period measures the period of the sequence for a polynomial
func Period(poly uint32) int {
	g, err := prbs.New(poly)
	if err != nil {
		panic(err)
	}
	period := 0
	for {
		g.Step()
		period++
		if g.State() == g.Mask() {
			return period
		}
	}
}

// Bits generates the sample bits for the statistics
func Bits() []int {
	g, err := prbs.New(Polynomial)
	if err != nil {
		panic(err)
	}
	bits := make([]int, Samples)
	for i := range bits {
		bits[i] = g.Step()
	}
	return bits
}

// RunLengths computes the lengths of the runs of equal bits
func RunLengths(bits []int) plotter.Values {
	values, length := make(plotter.Values, 0, len(bits)/2), 1
	for i := 1; i < len(bits); i++ {
		if bits[i] == bits[i-1] {
			length++
			continue
		}
		values = append(values, float64(length))
		length = 1
	}
	return append(values, float64(length))
}

// Autocorrelation computes the autocorrelation of the bits mapped to
// +1 and -1 for lags 1 through Lags
func Autocorrelation(bits []int) plotter.XYs {
	mapped := make([]float64, len(bits))
	for i, bit := range bits {
		mapped[i] = float64(2*bit - 1)
	}
	xys := make(plotter.XYs, Lags)
	for lag := 1; lag <= Lags; lag++ {
		sum, n := 0.0, len(mapped)-lag
		for i := 0; i < n; i++ {
			sum += mapped[i] * mapped[i+lag]
		}
		xys[lag-1].X = float64(lag)
		xys[lag-1].Y = sum / float64(n)
	}
	return xys
}

func main() {
	graph := 1

	histogram := func(title, name string, values plotter.Values) {
		p, err := plot.New()
		if err != nil {
			panic(err)
		}
		p.Title.Text = title

		h, err := plotter.NewHist(values, 16)
		if err != nil {
			panic(err)
		}
		h.Normalize(1)
		p.Add(h)

		err = p.Save(8*vg.Inch, 8*vg.Inch, fmt.Sprintf("graph_%v_%v", graph, name))
		if err != nil {
			panic(err)
		}

		graph++
	}

	scatterPlot := func(xTitle, yTitle, name string, xys plotter.XYs) {
		p, err := plot.New()
		if err != nil {
			panic(err)
		}
		p.Title.Text = fmt.Sprintf("%v vs %v", yTitle, xTitle)
		p.X.Label.Text = xTitle
		p.Y.Label.Text = yTitle

		s, err := plotter.NewScatter(xys)
		if err != nil {
			panic(err)
		}
		p.Add(s)

		err = p.Save(8*vg.Inch, 8*vg.Inch, fmt.Sprintf("graph_%v_%v", graph, name))
		if err != nil {
			panic(err)
		}

		graph++
	}

	for _, polynomial := range Periods {
		fmt.Printf("%v period=%v\n", polynomial.Name, Period(polynomial.Poly))
	}

	bits := Bits()
	ones := 0
	for _, bit := range bits {
		ones += bit
	}
	fmt.Printf("balance=%v\n", float64(ones)/float64(len(bits)))

	histogram("Run Length Distribution", "run_length_distribution.png", RunLengths(bits))
	scatterPlot("Lag", "Autocorrelation", "autocorrelation.png", Autocorrelation(bits))
}
