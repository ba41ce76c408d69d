package sample

import (
	"fmt"
	"strconv"
	"strings"
)

type Parser struct {
	Layout Layout
}

func NewParser(layout string) (*Parser, error) {
	l, err := LookupLayout(layout)
	if err != nil {
		return nil, err
	}

	return NewParserWithLayout(l), nil
}

func NewParserWithLayout(layout Layout) *Parser {
	return &Parser{Layout: layout}
}

// ParseRow converts one already-split data line into a record. It checks
// syntax only; positivity is enforced when a Sample is built.
func (p *Parser) ParseRow(row []string) (OrganismRecord, error) {
	rec := OrganismRecord{}

	if expected := p.Layout.NColumns(); len(row) != expected {
		return rec, fmt.Errorf("Expected %d columns, but found %d", expected, len(row))
	}

	rec.Name = strings.TrimSpace(row[p.Layout.ColName])
	if p.Layout.FirstWordName {
		rec.Name = genusName(rec.Name)
	}
	rec.TaxonomyID = strings.TrimSpace(row[p.Layout.ColTaxonomyID])

	if p.Layout.HasGeneCopyCount() {
		gene, err := strconv.Atoi(strings.TrimSpace(row[p.Layout.ColGeneCopyCount]))
		if err != nil {
			return rec, &MalformedError{Organism: rec.Name, Field: FieldGeneCopyCount, Value: row[p.Layout.ColGeneCopyCount], Reason: err.Error()}
		}
		rec.GeneCopyCount = gene
	}

	rrna, err := parseRRNAList(strings.TrimSpace(row[p.Layout.ColRRNA]), p.Layout.ListSeparator)
	if err != nil {
		return rec, &MalformedError{Organism: rec.Name, Field: FieldRRNA, Value: row[p.Layout.ColRRNA], Reason: err.Error()}
	}
	rec.RRNA = rrna

	return rec, nil
}

func parseRRNAList(field, sep string) ([]int, error) {
	if field == "" {
		return nil, fmt.Errorf("no rRNA copy number candidates")
	}

	parts := strings.Split(field, sep)
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

func genusName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return strings.ReplaceAll(fields[0], "\"", "")
}
