// rrnacomp estimates, for every organism in a sample, the share of total rRNA
// gene signal it could account for given its uncertain rRNA copy number.
package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"cloud.google.com/go/storage"
	_ "github.com/carbocation/rrnacomp/compileinfoprint"
	"github.com/carbocation/rrnacomp/config"
	"github.com/carbocation/rrnacomp/estimator"
	"github.com/carbocation/rrnacomp/sample"
	"google.golang.org/api/option"
)

func main() {
	var configPath string
	var file, layout string
	var cutoff float64
	var mode, convention, order string
	var workers int
	var summaryPath, savePath, comparePath, title string
	var hist, anonymous bool

	defaults := estimator.DefaultOptions()

	flag.StringVar(&configPath, "config", "", "(Optional) Path to a JSON file holding any of the settings below. Flags given on the command line take precedence.")
	flag.StringVar(&file, "file", "", "Path to the sample table (tab-delimited: name, taxonomy id, gene copy count, ;-separated rRNA copy numbers). May be gzip/bzip2/xz/zip compressed, or a gs:// path.")
	flag.StringVar(&layout, "layout", sample.LayoutComposition, "Layout of the sample table. Valid layouts: "+sample.LayoutNames())
	flag.Float64Var(&cutoff, "cutoff", defaults.Cutoff, "Drop organisms whose largest composition fraction is below this value. Must be in [0, 1).")
	flag.StringVar(&mode, "mode", defaults.Mode.String(), "How to choose the modal rRNA copy number when several values tie: firstseen, smallest or error.")
	flag.StringVar(&convention, "convention", defaults.Convention.String(), "Which copy number divides an organism's own gene count: candidates (each of its own candidates), matched (same reference as its neighbours) or opposite (the opposite extreme to its neighbours).")
	flag.StringVar(&order, "order", defaults.Order.String(), "Output order: reversed (last organism of the input first) or input.")
	flag.IntVar(&workers, "workers", defaults.Workers, "Number of organisms whose backgrounds are computed concurrently.")
	flag.StringVar(&summaryPath, "summary", "-", "Path to write the per-organism summary table to. Use - for stdout, or an empty string to skip.")
	flag.StringVar(&savePath, "save", "", "(Optional) Path to save the box plot to. The extension sets the format (png, svg, pdf, eps).")
	flag.StringVar(&comparePath, "compare", "", "(Optional) Path to save a raw vs corrected scatter chart to (png or svg).")
	flag.StringVar(&title, "title", "", "(Optional) Title for the box plot.")
	flag.BoolVar(&hist, "hist", false, "Print a histogram of every composition fraction to stderr.")
	flag.BoolVar(&anonymous, "anonymous", false, "Read gs:// paths without credentials (public buckets only).")
	flag.Parse()

	cfg := config.JSONConfig{}
	if configPath != "" {
		var err error
		cfg, err = config.ParseJSONConfigFromPath(configPath)
		if err != nil {
			log.Fatalln(err)
		}
	}

	// Flags explicitly given on the command line override the config file.
	// Anything set in neither place keeps its default.
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	overlay := func(name string, cfgValue *string, flagValue string) {
		if set[name] || *cfgValue == "" {
			*cfgValue = flagValue
		}
	}
	overlay("file", &cfg.File, file)
	overlay("layout", &cfg.Layout, layout)
	overlay("mode", &cfg.Mode, mode)
	overlay("convention", &cfg.Convention, convention)
	overlay("order", &cfg.Order, order)
	overlay("save", &cfg.Save, savePath)
	overlay("compare", &cfg.Compare, comparePath)
	overlay("title", &cfg.Title, title)
	if set["summary"] || configPath == "" {
		cfg.Summary = summaryPath
	}
	if set["cutoff"] || cfg.Cutoff == nil {
		cfg.Cutoff = &cutoff
	}
	if set["workers"] || cfg.Workers == 0 {
		cfg.Workers = workers
	}

	sample.Logger = log.Default()

	if cfg.File == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide -file")
	}

	ctx := context.Background()

	var client *storage.Client
	if strings.HasPrefix(cfg.File, "gs://") {
		var clientOpts []option.ClientOption
		if anonymous {
			clientOpts = append(clientOpts, option.WithoutAuthentication())
		}

		var err error
		client, err = storage.NewClient(ctx, clientOpts...)
		if err != nil {
			log.Fatalln(err)
		}
		defer client.Close()
	}

	if err := run(ctx, cfg, client, hist); err != nil {
		log.Fatalln(err)
	}
}
