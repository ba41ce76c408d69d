// Package variability picks out organisms whose rRNA copy number is poorly
// pinned down, from a copy number database export.
package variability

import (
	"context"
	"sort"
	"unicode"
	"unicode/utf8"

	"cloud.google.com/go/storage"
	"github.com/carbocation/rrnacomp/sample"
)

// Entry is one organism (usually reduced to its genus) and its candidate rRNA
// copy numbers.
type Entry struct {
	Name       string
	TaxonomyID string
	RRNA       []int
}

func (e Entry) Min() int {
	return sample.OrganismRecord{RRNA: e.RRNA}.MinRRNA()
}

func (e Entry) Max() int {
	return sample.OrganismRecord{RRNA: e.RRNA}.MaxRRNA()
}

// Spread is the distance between the largest and smallest candidate.
func (e Entry) Spread() int {
	return e.Max() - e.Min()
}

type Filter struct {
	// Keep organisms whose spread is strictly greater than MinSpread
	MinSpread int

	// and whose largest candidate is strictly greater than MinMax.
	MinMax int

	// If non-empty, only these names are kept.
	Genera []string
}

func DefaultFilter() Filter {
	return Filter{
		MinSpread: 2,
		MinMax:    5,
	}
}

// Keep reports whether rec passes the filter. Names must start with a
// character that is its own upper case, which discards lower-case
// placeholders such as "uncultured".
func (f Filter) Keep(rec sample.OrganismRecord) bool {
	if rec.Name == "" || len(rec.RRNA) == 0 {
		return false
	}

	first, _ := utf8.DecodeRuneInString(rec.Name)
	if unicode.ToUpper(first) != first {
		return false
	}

	e := Entry{RRNA: rec.RRNA}
	if e.Spread() <= f.MinSpread || e.Max() <= f.MinMax {
		return false
	}

	if len(f.Genera) > 0 {
		for _, g := range f.Genera {
			if g == rec.Name {
				return true
			}
		}
		return false
	}

	return true
}

// Select applies f to records. When several passing records share a name, the
// last one wins. Entries are sorted by name, descending, so that a
// bottom-to-top plot axis reads alphabetically from the top.
func Select(records []sample.OrganismRecord, f Filter) []Entry {
	byName := make(map[string]Entry)
	for _, rec := range records {
		if !f.Keep(rec) {
			continue
		}
		byName[rec.Name] = Entry{
			Name:       rec.Name,
			TaxonomyID: rec.TaxonomyID,
			RRNA:       append([]int(nil), rec.RRNA...),
		}
	}

	out := make([]Entry, 0, len(byName))
	for _, e := range byName {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name > out[j].Name
	})

	return out
}

// Load reads a copy number database table (local, gs:// or compressed) and
// applies f.
func Load(ctx context.Context, path string, client *storage.Client, f Filter) ([]Entry, error) {
	records, err := sample.LoadRecords(ctx, path, sample.LayoutCopyNumberDB, client)
	if err != nil {
		return nil, err
	}

	return Select(records, f), nil
}

// PathogenGenera are the bacterial genera that commonly cause human disease.
var PathogenGenera = []string{
	"Bacillus",
	"Bartonella",
	"Bordetella",
	"Borrelia",
	"Brucella",
	"Campylobacter",
	"Chlamydia",
	"Chlamydophila",
	"Clostridium",
	"Corynebacterium",
	"Enterococcus",
	"Escherichia",
	"Francisella",
	"Haemophilus",
	"Helicobacter",
	"Legionella",
	"Leptospira",
	"Listeria",
	"Mycobacterium",
	"Mycoplasma",
	"Neisseria",
	"Pseudomonas",
	"Rickettsia",
	"Salmonella",
	"Shigella",
	"Staphylococcus",
	"Streptococcus",
	"Treponema",
	"Ureaplasma",
	"Vibrio",
	"Yersinia",
}
