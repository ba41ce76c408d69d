package sample

import (
	"errors"
	"io"
	"strings"
	"testing"
)

const compositionTable = `# name	taxid	genes	rRNA
Escherichia coli	562	10	7;7;6
Bacillus subtilis	1423	5	10;10
# trailing comment

Vibrio cholerae	666	3	8;9;11
`

func TestReadComposition(t *testing.T) {
	s, err := Read(strings.NewReader(compositionTable), Layouts[LayoutComposition])
	if err != nil {
		t.Fatal(err)
	}

	if s.Len() != 3 {
		t.Fatalf("Expected 3 records, got %d", s.Len())
	}

	names := s.Names()
	for i, expected := range []string{"Escherichia coli", "Bacillus subtilis", "Vibrio cholerae"} {
		if names[i] != expected {
			t.Errorf("Record %d: got %q, expected %q", i, names[i], expected)
		}
	}

	rec, ok := s.Lookup("Vibrio cholerae")
	if !ok {
		t.Fatal("Vibrio cholerae not found")
	}
	if rec.TaxonomyID != "666" || rec.GeneCopyCount != 3 || len(rec.RRNA) != 3 || rec.RRNA[2] != 11 {
		t.Fatalf("Mismatch: %+v", rec)
	}
	if rec.MinRRNA() != 8 || rec.MaxRRNA() != 11 {
		t.Fatalf("Min/max: %d/%d", rec.MinRRNA(), rec.MaxRRNA())
	}

	if total := s.GeneTotal(); total != 18 {
		t.Fatalf("Gene total %d, expected 18", total)
	}
}

func TestSampleIsImmutable(t *testing.T) {
	rrna := []int{1, 2}
	s, err := New(OrganismRecord{Name: "A", GeneCopyCount: 10, RRNA: rrna})
	if err != nil {
		t.Fatal(err)
	}

	rrna[0] = 99
	if got := s.At(0).RRNA[0]; got != 1 {
		t.Fatalf("Sample saw caller mutation: %d", got)
	}

	rec := s.At(0)
	rec.RRNA[1] = 99
	if got := s.At(0).RRNA[1]; got != 2 {
		t.Fatalf("Sample saw mutation through At: %d", got)
	}
}

func TestMalformedRecords(t *testing.T) {
	for _, v := range []struct {
		rec   OrganismRecord
		field string
	}{
		{OrganismRecord{Name: "A", GeneCopyCount: 0, RRNA: []int{1}}, FieldGeneCopyCount},
		{OrganismRecord{Name: "A", GeneCopyCount: -4, RRNA: []int{1}}, FieldGeneCopyCount},
		{OrganismRecord{Name: "A", GeneCopyCount: 3, RRNA: nil}, FieldRRNA},
		{OrganismRecord{Name: "A", GeneCopyCount: 3, RRNA: []int{2, 0}}, FieldRRNA},
		{OrganismRecord{Name: "A", GeneCopyCount: 3, RRNA: []int{-1}}, FieldRRNA},
		{OrganismRecord{Name: "", GeneCopyCount: 3, RRNA: []int{1}}, FieldName},
	} {
		_, err := New(v.rec)
		var me *MalformedError
		if !errors.As(err, &me) {
			t.Fatalf("%+v: expected a MalformedError, got %v", v.rec, err)
		}
		if me.Field != v.field {
			t.Errorf("%+v: field %s, expected %s", v.rec, me.Field, v.field)
		}
	}
}

func TestDuplicateNames(t *testing.T) {
	_, err := New(
		OrganismRecord{Name: "A", GeneCopyCount: 1, RRNA: []int{1}},
		OrganismRecord{Name: "A", GeneCopyCount: 2, RRNA: []int{2}},
	)
	var me *MalformedError
	if !errors.As(err, &me) || me.Field != FieldName {
		t.Fatalf("Expected a duplicate name error, got %v", err)
	}
}

func TestReadZeroGeneCountIsMalformed(t *testing.T) {
	_, err := Read(strings.NewReader("A\t1\t0\t1;2\n"), Layouts[LayoutComposition])
	var me *MalformedError
	if !errors.As(err, &me) || me.Organism != "A" || me.Field != FieldGeneCopyCount {
		t.Fatalf("Expected a gene count error for A, got %v", err)
	}
}

func TestReadBadLineNumbers(t *testing.T) {
	_, err := Read(strings.NewReader("# header\nA\t1\t10\t1;2\nB\t2\tten\t1\n"), Layouts[LayoutComposition])

	var le *LineError
	if !errors.As(err, &le) {
		t.Fatalf("Expected a LineError, got %v", err)
	}
	if le.Line != 3 {
		t.Fatalf("Error on line %d, expected 3", le.Line)
	}

	var me *MalformedError
	if !errors.As(err, &me) || me.Organism != "B" || me.Field != FieldGeneCopyCount {
		t.Fatalf("Expected the gene count of B to be blamed, got %v", err)
	}
}

func TestReadWrongColumnCount(t *testing.T) {
	_, err := Read(strings.NewReader("A\t1\t10\n"), Layouts[LayoutComposition])
	if err == nil {
		t.Fatal("Expected an error for a 3 column line")
	}
}

func TestEmptyInput(t *testing.T) {
	s, err := Read(strings.NewReader("# nothing here\n"), Layouts[LayoutComposition])
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 0 {
		t.Fatalf("Expected an empty sample, got %d records", s.Len())
	}
}

func TestCopyNumberDBLayout(t *testing.T) {
	table := "\"Organism\"\t\"Taxid\"\t\"16S\"\n" +
		"\"Escherichia coli K-12\"\t83333\t7;7;7;7;7;7;7\n" +
		"\"Bacillus subtilis\"\t1423\t10;10;9\n"

	reader, err := NewReader(strings.NewReader(table), Layouts[LayoutCopyNumberDB])
	if err != nil {
		t.Fatal(err)
	}

	rec, err := reader.Read()
	if err != nil {
		t.Fatal(err)
	}
	if rec.Name != "Escherichia" || rec.TaxonomyID != "83333" || len(rec.RRNA) != 7 || rec.GeneCopyCount != 0 {
		t.Fatalf("Mismatch: %+v", rec)
	}
	if reader.Line() != 2 || reader.Skipped() != 1 {
		t.Fatalf("Line %d skipped %d", reader.Line(), reader.Skipped())
	}

	rec, err = reader.Read()
	if err != nil {
		t.Fatal(err)
	}
	if rec.Name != "Bacillus" {
		t.Fatalf("Got name %q", rec.Name)
	}

	if _, err := reader.Read(); err != io.EOF {
		t.Fatalf("Expected io.EOF, got %v", err)
	}

	if _, err := Read(strings.NewReader(table), Layouts[LayoutCopyNumberDB]); err == nil {
		t.Fatal("A copy number table should not be readable as a sample")
	}
}

func TestSniffedDelimiter(t *testing.T) {
	layout := Layouts[LayoutComposition]
	layout.Delimiter = 0

	s, err := Read(strings.NewReader("A,1,10,1\nB,2,20,2;3\nC,3,30,4;5;6\n"), layout)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 3 {
		t.Fatalf("Expected 3 records, got %d", s.Len())
	}
}

func TestLookupLayout(t *testing.T) {
	if _, err := NewParser("NOPE"); err == nil {
		t.Fatal("Expected an error for an unknown layout")
	}
	if _, err := NewParser(LayoutComposition); err != nil {
		t.Fatal(err)
	}
}
