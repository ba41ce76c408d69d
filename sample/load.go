package sample

import (
	"context"
	"fmt"
	"io"
	"log"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/carbocation/rrnacomp"
)

// ReadRecords reads every record from r without checking that the records
// form a valid Sample.
func ReadRecords(r io.Reader, layout Layout) ([]OrganismRecord, error) {
	reader, err := NewReader(r, layout)
	if err != nil {
		return nil, pfx.Err(err)
	}

	out := make([]OrganismRecord, 0)
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	if Logger != nil {
		Logger.Printf("Read %d records (%d comment, header or blank lines skipped)\n", len(out), reader.Skipped())
	}

	return out, nil
}

// Read reads a full Sample from r. The layout must carry gene copy counts.
func Read(r io.Reader, layout Layout) (*Sample, error) {
	if !layout.HasGeneCopyCount() {
		return nil, fmt.Errorf("Layout has no gene copy count column, so it cannot describe a sample")
	}

	records, err := ReadRecords(r, layout)
	if err != nil {
		return nil, err
	}

	return New(records...)
}

// Load opens path (local, gs:// or compressed) and reads a Sample from it
// using the named layout. client may be nil for local files.
func Load(ctx context.Context, path, layout string, client *storage.Client) (*Sample, error) {
	l, err := LookupLayout(layout)
	if err != nil {
		return nil, err
	}

	rc, err := rrnacomp.OpenInput(ctx, path, client)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	s, err := Read(rc, l)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// LoadRecords is Load without sample validation, for tables such as copy
// number databases that carry no gene counts.
func LoadRecords(ctx context.Context, path, layout string, client *storage.Client) ([]OrganismRecord, error) {
	l, err := LookupLayout(layout)
	if err != nil {
		return nil, err
	}

	rc, err := rrnacomp.OpenInput(ctx, path, client)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	records, err := ReadRecords(rc, l)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return records, nil
}

// Logger, when set, receives a one-line report per table read.
var Logger *log.Logger
