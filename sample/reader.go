package sample

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/carbocation/rrnacomp"
)

// sniffBytes is how much of the stream is inspected when a layout asks for
// its delimiter to be detected.
const sniffBytes = 16 * 1024

// Reader streams organism records out of a delimited table, one line at a
// time.
type Reader struct {
	parser    *Parser
	scanner   *bufio.Scanner
	delimiter string
	line      int
	skipped   int
}

func NewReader(r io.Reader, layout Layout) (*Reader, error) {
	br := bufio.NewReaderSize(r, sniffBytes)

	delim := layout.Delimiter
	if delim == 0 {
		head, err := br.Peek(sniffBytes)
		if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
			return nil, err
		}
		delim = rrnacomp.DetermineDelimiter(head)
	}

	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return &Reader{
		parser:    NewParserWithLayout(layout),
		scanner:   scanner,
		delimiter: string(delim),
	}, nil
}

// Line is the 1-based line number of the most recently read line.
func (r *Reader) Line() int {
	return r.line
}

// Skipped counts comment, header and blank lines seen so far.
func (r *Reader) Skipped() int {
	return r.skipped
}

// Read returns the next record, or io.EOF once the input is exhausted. Errors
// name the offending line.
func (r *Reader) Read() (OrganismRecord, error) {
	for r.scanner.Scan() {
		r.line++
		text := strings.TrimRight(r.scanner.Text(), "\r\n")

		if r.skipLine(text) {
			r.skipped++
			continue
		}

		rec, err := r.parser.ParseRow(strings.Split(text, r.delimiter))
		if err != nil {
			return rec, &LineError{Line: r.line, Err: err}
		}

		return rec, nil
	}

	if err := r.scanner.Err(); err != nil {
		return OrganismRecord{}, err
	}

	return OrganismRecord{}, io.EOF
}

func (r *Reader) skipLine(text string) bool {
	l := r.parser.Layout

	if strings.TrimSpace(text) == "" {
		return true
	}
	if l.Comment != 0 && strings.HasPrefix(text, string(l.Comment)) {
		return true
	}
	if l.HeaderMarker != "" && strings.Contains(text, l.HeaderMarker) {
		return true
	}

	return false
}

// LineError ties a parse failure to its position in the input.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
