// Package summary reduces composition distributions to box plot statistics and
// writes them out as a table.
package summary

import (
	"fmt"
	"math"
	"sort"

	"github.com/carbocation/rrnacomp/estimator"
	"github.com/montanaflynn/stats"
)

// WhiskerIQR is how far past the quartiles, in interquartile ranges, a value
// may sit before it is called an outlier.
const WhiskerIQR = 1.5

// Box holds the statistics behind one box of a box plot. Quartiles are the
// medians of the lower and upper halves of the data.
type Box struct {
	N           int
	Min         float64
	Q1          float64
	Median      float64
	Q3          float64
	Max         float64
	WhiskerLow  float64
	WhiskerHigh float64
	Outliers    []float64
	Mean        float64
	SD          float64
}

// Summarize computes box statistics over values.
func Summarize(values []float64) (Box, error) {
	data := stats.LoadRawData(values)
	if data.Len() == 0 {
		return Box{}, fmt.Errorf("Cannot summarize an empty distribution")
	}

	out := Box{N: data.Len()}

	var err error
	if out.Min, err = data.Min(); err != nil {
		return out, err
	}
	if out.Max, err = data.Max(); err != nil {
		return out, err
	}
	if out.Median, err = data.Median(); err != nil {
		return out, err
	}
	if out.Mean, err = data.Mean(); err != nil {
		return out, err
	}
	if out.SD, err = data.StandardDeviation(); err != nil {
		return out, err
	}

	// With fewer than 3 values one half is empty, so the quartiles collapse
	// onto the median.
	out.Q1, out.Q3 = out.Median, out.Median
	if data.Len() >= 3 {
		q, err := stats.Quartile(data)
		if err != nil {
			return out, err
		}
		out.Q1, out.Q3 = q.Q1, q.Q3
	}

	iqr := out.Q3 - out.Q1
	lo, hi := out.Q1-WhiskerIQR*iqr, out.Q3+WhiskerIQR*iqr

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	out.WhiskerLow, out.WhiskerHigh = math.Inf(1), math.Inf(-1)
	out.Outliers = make([]float64, 0)
	for _, v := range sorted {
		if v < lo || v > hi {
			out.Outliers = append(out.Outliers, v)
			continue
		}
		if v < out.WhiskerLow {
			out.WhiskerLow = v
		}
		if v > out.WhiskerHigh {
			out.WhiskerHigh = v
		}
	}

	return out, nil
}

// Organism pairs an organism's box statistics with its uncorrected share.
type Organism struct {
	Name            string
	TaxonomyID      string
	Box             Box
	RawGeneFraction float64
}

// FromResult summarizes every entry of res, keeping the result order.
func FromResult(res *estimator.Result) ([]Organism, error) {
	out := make([]Organism, 0, res.Len())
	for _, e := range res.Entries {
		box, err := Summarize(e.Values())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name, err)
		}
		out = append(out, Organism{
			Name:            e.Name,
			TaxonomyID:      e.TaxonomyID,
			Box:             box,
			RawGeneFraction: e.RawGeneFraction,
		})
	}
	return out, nil
}
