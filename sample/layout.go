package sample

import (
	"fmt"
	"sort"
	"strings"
)

// Layout describes where each field lives in a delimited organism table.
type Layout struct {
	Delimiter     rune // 0 means sniff the delimiter from the first lines
	Comment       rune // Lines starting with this rune are skipped
	ListSeparator string
	HeaderMarker  string // Lines containing this text are skipped

	ColName          int
	ColTaxonomyID    int
	ColGeneCopyCount int // -1 if the table carries no gene counts
	ColRRNA          int

	// FirstWordName keeps only the first whitespace-delimited word of the
	// name (usually the genus) and strips double quotes.
	FirstWordName bool
}

// NColumns is the number of fields each data line must have.
func (l Layout) NColumns() int {
	n := l.ColName
	for _, c := range []int{l.ColTaxonomyID, l.ColGeneCopyCount, l.ColRRNA} {
		if c > n {
			n = c
		}
	}
	return n + 1
}

func (l Layout) HasGeneCopyCount() bool {
	return l.ColGeneCopyCount >= 0
}

const (
	LayoutComposition  = "COMPOSITION"
	LayoutCopyNumberDB = "COPYNUMBERDB"
)

var Layouts = map[string]Layout{
	// name, taxonomy id, gene copy count, ;-separated rRNA copy numbers
	LayoutComposition: {
		Delimiter:        '\t',
		Comment:          '#',
		ListSeparator:    ";",
		ColName:          0,
		ColTaxonomyID:    1,
		ColGeneCopyCount: 2,
		ColRRNA:          3,
	},

	// rRNA copy number database export: name, taxonomy id, ;-separated rRNA
	// copy numbers, with "Organism" header lines.
	LayoutCopyNumberDB: {
		Delimiter:        '\t',
		ListSeparator:    ";",
		HeaderMarker:     "Organism",
		ColName:          0,
		ColTaxonomyID:    1,
		ColGeneCopyCount: -1,
		ColRRNA:          2,
		FirstWordName:    true,
	},
}

func LayoutNames() string {
	names := make([]string, 0, len(Layouts))
	for m := range Layouts {
		names = append(names, m)
	}
	sort.Strings(names)

	return strings.Join(names, ", ")
}

func LookupLayout(name string) (Layout, error) {
	l, exists := Layouts[name]
	if !exists {
		return Layout{}, fmt.Errorf("Layout %s is not found. Valid layout names include: %s", name, LayoutNames())
	}

	return l, nil
}
