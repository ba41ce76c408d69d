package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/pfx"
	"github.com/carbocation/rrnacomp/config"
	"github.com/carbocation/rrnacomp/estimator"
	"github.com/carbocation/rrnacomp/render"
	"github.com/carbocation/rrnacomp/sample"
	"github.com/carbocation/rrnacomp/summary"
)

func run(ctx context.Context, cfg config.JSONConfig, client *storage.Client, hist bool) error {
	opts, err := cfg.EstimatorOptions()
	if err != nil {
		return err
	}

	if cfg.Compare != "" {
		if _, err := render.ComparisonRenderer(comparisonFormat(cfg.Compare)); err != nil {
			return err
		}
	}

	s, err := sample.Load(ctx, cfg.File, cfg.Layout, client)
	if err != nil {
		return err
	}
	log.Println("Loaded", s.Len(), "organisms from", cfg.File)

	res, err := estimator.Estimate(s, opts)
	if err != nil {
		return err
	}
	log.Printf("%d organisms at or above the %v cutoff (mode policy %s, convention %s); %d dropped\n", res.Len(), opts.Cutoff, opts.Mode, opts.Convention, len(res.Dropped))

	organisms, err := summary.FromResult(res)
	if err != nil {
		return err
	}

	if cfg.Summary != "" {
		if err := writeSummary(cfg.Summary, organisms); err != nil {
			return err
		}
	}

	if hist && res.Len() > 0 {
		if err := printHistogram(os.Stderr, res); err != nil {
			return err
		}
	}

	if res.Len() == 0 && (cfg.Save != "" || cfg.Compare != "") {
		log.Println("No organisms passed the cutoff; skipping plots")
		return nil
	}

	if cfg.Save != "" {
		if err := render.BoxPlot(res, cfg.Save, render.Options{Title: cfg.Title}); err != nil {
			return err
		}
		log.Println("Saved box plot to", cfg.Save)
	}

	if cfg.Compare != "" {
		if err := writeComparison(cfg.Compare, organisms); err != nil {
			return err
		}
		log.Println("Saved comparison chart to", cfg.Compare)
	}

	return nil
}

func writeSummary(path string, organisms []summary.Organism) error {
	if path == "-" {
		return summary.WriteTSV(os.Stdout, organisms)
	}

	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}

	if err := summary.WriteTSV(f, organisms); err != nil {
		f.Close()
		return err
	}

	return pfx.Err(f.Close())
}

func writeComparison(path string, organisms []summary.Organism) error {
	format := comparisonFormat(path)
	if _, err := render.ComparisonRenderer(format); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}

	if err := render.Comparison(organisms, f, format); err != nil {
		f.Close()
		return err
	}

	return pfx.Err(f.Close())
}

func comparisonFormat(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

func printHistogram(w io.Writer, res *estimator.Result) error {
	all := make([]float64, 0)
	for _, series := range res.Series() {
		all = append(all, series...)
	}

	fmt.Fprintf(w, "Composition fractions (%d values across %d organisms):\n", len(all), res.Len())

	// The number of buckets is arbitrary.
	h := histogram.Hist(20, all)
	return histogram.Fprint(w, h, histogram.Linear(40))
}
