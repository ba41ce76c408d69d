package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/carbocation/rrnacomp/summary"
	chart "github.com/wcharczuk/go-chart/v2"
)

// Comparison draws each organism's raw gene fraction against the median of
// its corrected composition distribution, with the identity line for
// reference. format is "png" or "svg".
func Comparison(organisms []summary.Organism, w io.Writer, format string) error {
	if len(organisms) == 0 {
		return fmt.Errorf("No organisms to compare")
	}

	renderer, err := ComparisonRenderer(format)
	if err != nil {
		return err
	}

	xs := make([]float64, 0, len(organisms))
	ys := make([]float64, 0, len(organisms))
	labels := make([]chart.Value2, 0, len(organisms))
	top := 0.0
	for _, o := range organisms {
		xs = append(xs, o.RawGeneFraction)
		ys = append(ys, o.Box.Median)
		labels = append(labels, chart.Value2{XValue: o.RawGeneFraction, YValue: o.Box.Median, Label: o.Name})

		if o.RawGeneFraction > top {
			top = o.RawGeneFraction
		}
		if o.Box.Median > top {
			top = o.Box.Median
		}
	}

	graph := chart.Chart{
		Width:  800,
		Height: 800,
		XAxis: chart.XAxis{
			Name:  "Raw gene fraction",
			Range: &chart.ContinuousRange{Min: 0, Max: top},
		},
		YAxis: chart.YAxis{
			Name:  "Median corrected rRNA fraction",
			Range: &chart.ContinuousRange{Min: 0, Max: top},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "identity",
				Style:   chart.Style{StrokeColor: chart.ColorAlternateGray, StrokeDashArray: []float64{5, 5}},
				XValues: []float64{0, top},
				YValues: []float64{0, top},
			},
			chart.ContinuousSeries{
				Name:    "organisms",
				Style:   chart.Style{StrokeWidth: chart.Disabled, DotWidth: 5},
				XValues: xs,
				YValues: ys,
			},
			chart.AnnotationSeries{
				Annotations: labels,
			},
		},
	}

	if err := graph.Render(renderer, w); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// ComparisonRenderer maps a comparison chart format to its renderer, so
// callers can reject a bad format before creating any output.
func ComparisonRenderer(format string) (chart.RendererProvider, error) {
	switch strings.ToLower(format) {
	case "png":
		return chart.PNG, nil
	case "svg":
		return chart.SVG, nil
	}

	return nil, fmt.Errorf("Comparison charts can be png or svg, not %q", format)
}
