package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/carbocation/rrnacomp/estimator"
	"github.com/carbocation/rrnacomp/sample"
	"github.com/carbocation/rrnacomp/summary"
	"github.com/carbocation/rrnacomp/variability"
)

func testResult(t *testing.T) *estimator.Result {
	t.Helper()
	s, err := sample.New(
		sample.OrganismRecord{Name: "Escherichia", GeneCopyCount: 120, RRNA: []int{7, 7, 6}},
		sample.OrganismRecord{Name: "Bacillus", GeneCopyCount: 40, RRNA: []int{10, 10, 9, 12}},
		sample.OrganismRecord{Name: "Vibrio", GeneCopyCount: 15, RRNA: []int{8, 9, 11}},
	)
	if err != nil {
		t.Fatal(err)
	}
	res, err := estimator.Estimate(s, estimator.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func nonEmptyFile(t *testing.T, path string) {
	t.Helper()
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Fatalf("%s is empty", path)
	}
}

func TestCompositionPlot(t *testing.T) {
	res := testResult(t)

	p, err := CompositionPlot(res, Options{Title: "test"})
	if err != nil {
		t.Fatal(err)
	}
	if p.X.Min != 0 {
		t.Errorf("x axis should start at 0, got %v", p.X.Min)
	}

	for _, ext := range []string{"png", "svg"} {
		path := filepath.Join(t.TempDir(), "composition."+ext)
		if err := BoxPlot(res, path, Options{}); err != nil {
			t.Fatal(err)
		}
		nonEmptyFile(t, path)
	}
}

func TestCompositionPlotEmpty(t *testing.T) {
	if _, err := CompositionPlot(&estimator.Result{}, Options{}); err == nil {
		t.Fatal("Expected an error for an empty result")
	}
}

func TestComparison(t *testing.T) {
	orgs, err := summary.FromResult(testResult(t))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Comparison(orgs, &buf, "png"); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatal("Output is not a PNG")
	}

	if err := Comparison(orgs, &buf, "gif"); err == nil {
		t.Fatal("Expected an error for an unsupported format")
	}
}

func TestCopyNumberPlot(t *testing.T) {
	entries := []variability.Entry{
		{Name: "Vibrio", RRNA: []int{8, 9, 11, 14}},
		{Name: "Bacillus", RRNA: []int{8, 10, 13, 1}},
	}

	p, err := CopyNumberPlot(entries, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if p.X.Label.Text != "rRNA copies per genome" {
		t.Errorf("Unexpected label %q", p.X.Label.Text)
	}

	path := filepath.Join(t.TempDir(), "copynumber.png")
	if err := CopyNumberBoxPlot(entries, path, Options{}); err != nil {
		t.Fatal(err)
	}
	nonEmptyFile(t, path)
}

func TestComparisonRenderer(t *testing.T) {
	for _, format := range []string{"png", "PNG", "svg"} {
		if _, err := ComparisonRenderer(format); err != nil {
			t.Errorf("%s: %v", format, err)
		}
	}
	for _, format := range []string{"pdf", "", "jpg"} {
		if _, err := ComparisonRenderer(format); err == nil {
			t.Errorf("%q: expected an error", format)
		}
	}
}

func TestPlotHeightGrowsWithRows(t *testing.T) {
	if boxWidth <= 0 || rowHeight <= boxWidth {
		t.Fatalf("Boxes (%v) must fit inside rows (%v)", boxWidth, rowHeight)
	}

	entries := make([]variability.Entry, 0, 40)
	for i := 0; i < 40; i++ {
		entries = append(entries, variability.Entry{Name: string(rune('A'+i%26)) + "x", RRNA: []int{1, 5, 9}})
	}

	path := filepath.Join(t.TempDir(), "tall.svg")
	if err := CopyNumberBoxPlot(entries, path, Options{}); err != nil {
		t.Fatal(err)
	}
	nonEmptyFile(t, path)
}
