package compileinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	c := CompileInfo{Tool: "rrnacomp", Module: "github.com/carbocation/rrnacomp", Version: "(devel)", GoVersion: "go1.18", Commit: "abc123", CommitTime: "2022-01-01T00:00:00Z", Modified: true}
	s := c.String()
	for _, want := range []string{"rrnacomp", "go1.18", "abc123", "modified"} {
		if !strings.Contains(s, want) {
			t.Errorf("%q does not mention %q", s, want)
		}
	}

	if s := (CompileInfo{Tool: "x"}).String(); !strings.Contains(s, "no build information") {
		t.Errorf("Unexpected %q", s)
	}
}
