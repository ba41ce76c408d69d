package render

import (
	"fmt"

	"github.com/carbocation/pfx"
	"github.com/carbocation/rrnacomp/variability"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// CopyNumberPlot builds a horizontal box plot of candidate rRNA copy numbers,
// one box per entry. Whiskers span the full range, so no point is drawn as an
// outlier.
func CopyNumberPlot(entries []variability.Entry, opts Options) (*plot.Plot, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("No organisms passed the variability filter; nothing to plot")
	}
	opts = opts.withDefaults("rRNA copies per genome")

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel

	names := make([]string, 0, len(entries))
	for i, e := range entries {
		values := make(plotter.Values, len(e.RRNA))
		for j, v := range e.RRNA {
			values[j] = float64(v)
		}

		b, err := plotter.NewBoxPlot(boxWidth, float64(i), values)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %v", e.Name, err))
		}
		b.Horizontal = true
		b.AdjLow, b.AdjHigh = b.Min, b.Max
		b.Outside = nil
		p.Add(b)

		names = append(names, e.Name)
	}

	p.NominalY(names...)
	p.X.Min = 0

	return p, nil
}

func CopyNumberBoxPlot(entries []variability.Entry, path string, opts Options) error {
	p, err := CopyNumberPlot(entries, opts)
	if err != nil {
		return err
	}

	return save(p, len(entries), path)
}
