package sample

import (
	"fmt"
	"strconv"
	"strings"
)

// OrganismRecord is one row of a sample: the gene copies attributed to an
// organism and the candidate rRNA copy numbers of its genome.
type OrganismRecord struct {
	Name          string
	TaxonomyID    string // Opaque; carried through but never computed on
	GeneCopyCount int
	RRNA          []int // Candidate rRNA copy numbers, in file order
}

// MinRRNA returns the smallest candidate copy number. The record must have at
// least one candidate.
func (o OrganismRecord) MinRRNA() int {
	out := o.RRNA[0]
	for _, v := range o.RRNA[1:] {
		if v < out {
			out = v
		}
	}
	return out
}

// MaxRRNA returns the largest candidate copy number. The record must have at
// least one candidate.
func (o OrganismRecord) MaxRRNA() int {
	out := o.RRNA[0]
	for _, v := range o.RRNA[1:] {
		if v > out {
			out = v
		}
	}
	return out
}

// Validate checks that the record can take part in a composition estimate
// without dividing by zero.
func (o OrganismRecord) Validate() error {
	if o.Name == "" {
		return &MalformedError{Organism: o.Name, Field: FieldName, Value: "", Reason: "organism name is empty"}
	}
	if o.GeneCopyCount <= 0 {
		return &MalformedError{Organism: o.Name, Field: FieldGeneCopyCount, Value: strconv.Itoa(o.GeneCopyCount), Reason: "gene copy count must be positive"}
	}
	return o.validateRRNA()
}

func (o OrganismRecord) validateRRNA() error {
	if len(o.RRNA) == 0 {
		return &MalformedError{Organism: o.Name, Field: FieldRRNA, Value: "", Reason: "no rRNA copy number candidates"}
	}
	for i, v := range o.RRNA {
		if v <= 0 {
			return &MalformedError{Organism: o.Name, Field: FieldRRNA, Value: formatRRNA(o.RRNA), Reason: fmt.Sprintf("candidate #%d (%d) must be positive", i+1, v)}
		}
	}
	return nil
}

func (o OrganismRecord) clone() OrganismRecord {
	out := o
	out.RRNA = append([]int(nil), o.RRNA...)
	return out
}

func formatRRNA(rrna []int) string {
	parts := make([]string, 0, len(rrna))
	for _, v := range rrna {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, ";")
}

// Fields named in MalformedError
const (
	FieldName          = "name"
	FieldGeneCopyCount = "gene_copy_count"
	FieldRRNA          = "rRNA_observations"
)

// MalformedError reports a record that cannot be used, with enough context to
// find it again without re-parsing the source file.
type MalformedError struct {
	Organism string
	Field    string
	Value    string
	Reason   string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed record for organism %q: field %s=%q: %s", e.Organism, e.Field, e.Value, e.Reason)
}
