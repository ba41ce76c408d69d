// Package render draws composition results. It is a sink only: nothing here
// feeds back into the estimate.
package render

import (
	"fmt"

	"github.com/carbocation/pfx"
	"github.com/carbocation/rrnacomp/estimator"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	boxWidth    = vg.Points(12)
	rowHeight   = vg.Points(22)
	plotWidth   = 8 * vg.Inch
	minHeight   = 4 * vg.Inch
	plotPadding = 1.5 * vg.Inch
)

// Options controls the titles of a rendered figure.
type Options struct {
	Title  string
	XLabel string
}

func (o Options) withDefaults(xlabel string) Options {
	if o.XLabel == "" {
		o.XLabel = xlabel
	}
	return o
}

// CompositionPlot builds a horizontal box plot with one box per organism of
// res, bottom to top in result order, and marks each organism's raw gene
// fraction with a point.
func CompositionPlot(res *estimator.Result, opts Options) (*plot.Plot, error) {
	if res.Len() == 0 {
		return nil, fmt.Errorf("No organisms passed the cutoff; nothing to plot")
	}
	opts = opts.withDefaults("Fraction of rRNA signal")

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel

	raw := make(plotter.XYs, 0, res.Len())
	for i, e := range res.Entries {
		b, err := plotter.NewBoxPlot(boxWidth, float64(i), plotter.Values(e.Values()))
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %v", e.Name, err))
		}
		b.Horizontal = true
		p.Add(b)

		raw = append(raw, plotter.XY{X: e.RawGeneFraction, Y: float64(i)})
	}

	scatter, err := plotter.NewScatter(raw)
	if err != nil {
		return nil, pfx.Err(err)
	}
	scatter.GlyphStyle.Shape = draw.CrossGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(4)
	p.Add(scatter)
	p.Legend.Add("Raw gene fraction", scatter)
	p.Legend.Top = true

	p.NominalY(res.Labels()...)
	p.X.Min = 0

	return p, nil
}

// BoxPlot renders res to path. The format follows the file extension (png,
// svg, pdf, eps, jpg, tif).
func BoxPlot(res *estimator.Result, path string, opts Options) error {
	p, err := CompositionPlot(res, opts)
	if err != nil {
		return err
	}

	return save(p, res.Len(), path)
}

func save(p *plot.Plot, rows int, path string) error {
	height := vg.Length(rows)*rowHeight + plotPadding
	if height < minHeight {
		height = minHeight
	}

	if err := p.Save(plotWidth, height, path); err != nil {
		return pfx.Err(err)
	}

	return nil
}
