// rrnavariability lists, and optionally plots, the organisms of an rRNA copy
// number database whose copy number varies the most between genomes.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	_ "github.com/carbocation/rrnacomp/compileinfoprint"
	"github.com/carbocation/rrnacomp/render"
	"github.com/carbocation/rrnacomp/sample"
	"github.com/carbocation/rrnacomp/variability"
	"google.golang.org/api/option"
)

func main() {
	var file, savePath, title string
	var pathogens, anonymous bool

	filter := variability.DefaultFilter()

	flag.StringVar(&file, "file", "", "Path to the copy number table (tab-delimited: organism, taxonomy id, ;-separated rRNA copy numbers). Lines containing 'Organism' are treated as headers. May be compressed, or a gs:// path.")
	flag.IntVar(&filter.MinSpread, "minspread", filter.MinSpread, "Keep organisms whose largest minus smallest copy number is greater than this.")
	flag.IntVar(&filter.MinMax, "minmax", filter.MinMax, "Keep organisms whose largest copy number is greater than this.")
	flag.BoolVar(&pathogens, "pathogens", false, "Only keep the common human pathogen genera.")
	flag.StringVar(&savePath, "save", "", "(Optional) Path to save the box plot to. The extension sets the format (png, svg, pdf, eps).")
	flag.StringVar(&title, "title", "", "(Optional) Title for the box plot.")
	flag.BoolVar(&anonymous, "anonymous", false, "Read gs:// paths without credentials (public buckets only).")
	flag.Parse()

	if file == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide -file")
	}

	sample.Logger = log.Default()

	if pathogens {
		filter.Genera = variability.PathogenGenera
	}

	ctx := context.Background()

	var client *storage.Client
	if strings.HasPrefix(file, "gs://") {
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

	entries, err := variability.Load(ctx, file, client, filter)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println(len(entries), "organisms have a copy number spread greater than", filter.MinSpread, "and a maximum greater than", filter.MinMax)

	if err := printEntries(os.Stdout, entries); err != nil {
		log.Fatalln(err)
	}

	if savePath != "" {
		if err := render.CopyNumberBoxPlot(entries, savePath, render.Options{Title: title}); err != nil {
			log.Fatalln(err)
		}
		log.Println("Saved box plot to", savePath)
	}
}

func printEntries(w io.Writer, entries []variability.Entry) error {
	if _, err := fmt.Fprintln(w, "organism\ttaxonomy_id\tn\tmin\tmax\tspread"); err != nil {
		return err
	}

	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\n", e.Name, e.TaxonomyID, len(e.RRNA), e.Min(), e.Max(), e.Spread()); err != nil {
			return err
		}
	}

	return nil
}
