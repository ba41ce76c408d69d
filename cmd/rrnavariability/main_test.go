package main

import (
	"bytes"
	"testing"

	"github.com/carbocation/rrnacomp/variability"
)

func TestPrintEntries(t *testing.T) {
	var buf bytes.Buffer
	err := printEntries(&buf, []variability.Entry{
		{Name: "Vibrio", TaxonomyID: "662", RRNA: []int{8, 9, 11, 14}},
	})
	if err != nil {
		t.Fatal(err)
	}

	expected := "organism\ttaxonomy_id\tn\tmin\tmax\tspread\nVibrio\t662\t4\t8\t14\t6\n"
	if buf.String() != expected {
		t.Fatalf("Got %q, expected %q", buf.String(), expected)
	}
}
