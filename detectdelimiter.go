package rrnacomp

import (
	"bytes"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune that would delimit the
// values in head, which should be the first few lines of a CSV-like file. Tab
// is assumed when nothing can be detected, since that is what our tables use.
func DetermineDelimiter(head []byte) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(bytes.NewReader(head), '"')

	if len(delimiters) > 0 && len(delimiters[0]) > 0 {
		return rune(delimiters[0][0])
	}

	return '\t'
}
