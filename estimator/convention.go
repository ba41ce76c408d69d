package estimator

import (
	"fmt"
	"strings"
)

// Convention fixes which copy number divides an organism's own gene count,
// relative to the reference values used for its neighbours.
type Convention int

const (
	// ConventionCandidates evaluates the organism at every one of its own
	// candidate copy numbers, against neighbours held at the scenario's
	// reference value. Yields one MIN, MAX, MODE triple per candidate.
	ConventionCandidates Convention = iota

	// ConventionMatched holds the organism at the same reference value as its
	// neighbours: everybody at min, everybody at max, everybody at mode.
	// Yields a single triple.
	ConventionMatched

	// ConventionOpposite holds the organism at the opposite extreme to its
	// neighbours (neighbours at min against itself at max, and the reverse;
	// mode against mode). Yields a single triple that brackets the
	// candidates distribution.
	ConventionOpposite
)

var conventionNames = map[string]Convention{
	"candidates": ConventionCandidates,
	"matched":    ConventionMatched,
	"opposite":   ConventionOpposite,
}

func (c Convention) String() string {
	for k, v := range conventionNames {
		if v == c {
			return k
		}
	}
	return fmt.Sprintf("Convention(%d)", int(c))
}

func ParseConvention(name string) (Convention, error) {
	c, exists := conventionNames[strings.ToLower(name)]
	if !exists {
		return 0, fmt.Errorf("Convention %q is not found. Valid conventions include: %s", name, joinKeys(conventionNames))
	}
	return c, nil
}

// ownCandidates returns the copy numbers that divide the organism's own gene
// count under scenario s.
func (c Convention) ownCandidates(self references, rrna []int, s Scenario) []int {
	switch c {
	case ConventionMatched:
		return []int{self.get(s)}
	case ConventionOpposite:
		return []int{self.get(s.opposite())}
	}

	return rrna
}
