package summary

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// Row is one line of the summary table.
type Row struct {
	Name            string  `csv:"organism"`
	TaxonomyID      string  `csv:"taxonomy_id"`
	N               int     `csv:"n"`
	Min             float64 `csv:"min"`
	WhiskerLow      float64 `csv:"whisker_low"`
	Q1              float64 `csv:"q1"`
	Median          float64 `csv:"median"`
	Q3              float64 `csv:"q3"`
	WhiskerHigh     float64 `csv:"whisker_high"`
	Max             float64 `csv:"max"`
	Mean            float64 `csv:"mean"`
	SD              float64 `csv:"sd"`
	Outliers        string  `csv:"outliers"`
	RawGeneFraction float64 `csv:"raw_gene_fraction"`
}

func (o Organism) Row() Row {
	outliers := make([]string, 0, len(o.Box.Outliers))
	for _, v := range o.Box.Outliers {
		outliers = append(outliers, strconv.FormatFloat(v, 'g', 6, 64))
	}

	return Row{
		Name:            o.Name,
		TaxonomyID:      o.TaxonomyID,
		N:               o.Box.N,
		Min:             o.Box.Min,
		WhiskerLow:      o.Box.WhiskerLow,
		Q1:              o.Box.Q1,
		Median:          o.Box.Median,
		Q3:              o.Box.Q3,
		WhiskerHigh:     o.Box.WhiskerHigh,
		Max:             o.Box.Max,
		Mean:            o.Box.Mean,
		SD:              o.Box.SD,
		Outliers:        strings.Join(outliers, ";"),
		RawGeneFraction: o.RawGeneFraction,
	}
}

// WriteTSV writes one tab-delimited row per organism, with a header.
func WriteTSV(w io.Writer, organisms []Organism) error {
	rows := make([]Row, 0, len(organisms))
	for _, o := range organisms {
		rows = append(rows, o.Row())
	}

	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return pfx.Err(err)
	}

	return nil
}
