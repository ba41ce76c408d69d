package estimator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/carbocation/rrnacomp/sample"
	"gonum.org/v1/gonum/stat"
)

// ModePolicy decides which value stands for an organism under the MODE
// scenario when several candidate copy numbers are equally frequent.
type ModePolicy int

const (
	// ModeFirstSeen takes whichever of the tied values appears first in the
	// organism's candidate list.
	ModeFirstSeen ModePolicy = iota

	// ModeSmallest takes the smallest of the tied values.
	ModeSmallest

	// ModeErrorOnTie refuses to estimate when the mode is not unique.
	ModeErrorOnTie
)

var modePolicyNames = map[string]ModePolicy{
	"firstseen": ModeFirstSeen,
	"smallest":  ModeSmallest,
	"error":     ModeErrorOnTie,
}

func (p ModePolicy) String() string {
	for k, v := range modePolicyNames {
		if v == p {
			return k
		}
	}
	return fmt.Sprintf("ModePolicy(%d)", int(p))
}

func ParseModePolicy(name string) (ModePolicy, error) {
	p, exists := modePolicyNames[strings.ToLower(name)]
	if !exists {
		return 0, fmt.Errorf("Mode policy %q is not found. Valid mode policies include: %s", name, joinKeys(modePolicyNames))
	}
	return p, nil
}

// AmbiguousModeError is returned under ModeErrorOnTie when an organism's
// candidate list has more than one most-frequent value.
type AmbiguousModeError struct {
	Organism string
	Tied     []int
	Count    int
}

func (e *AmbiguousModeError) Error() string {
	return fmt.Sprintf("organism %q has no unique modal rRNA copy number: %v each occur %d time(s)", e.Organism, e.Tied, e.Count)
}

// Mode returns the modal candidate copy number of rec under the policy.
func (p ModePolicy) Mode(rec sample.OrganismRecord) (int, error) {
	mode, tied, count := modalValues(rec.RRNA)

	if len(tied) == 1 {
		return mode, nil
	}

	switch p {
	case ModeFirstSeen:
		return tied[0], nil
	case ModeSmallest:
		smallest := tied[0]
		for _, v := range tied[1:] {
			if v < smallest {
				smallest = v
			}
		}
		return smallest, nil
	case ModeErrorOnTie:
		return 0, &AmbiguousModeError{Organism: rec.Name, Tied: tied, Count: count}
	}

	return 0, fmt.Errorf("Unknown mode policy %d", int(p))
}

// modalValues returns the mode as reported by stat.Mode, every value sharing
// the highest frequency in order of first appearance, and that frequency. The
// reported mode is only meaningful when exactly one value is tied.
func modalValues(values []int) (int, []int, int) {
	x := make([]float64, len(values))
	for i, v := range values {
		x[i] = float64(v)
	}

	// stat.Mode may return any of several tied values, so ties are resolved
	// by the policy rather than taken from its value.
	mode, maxCount := stat.Mode(x, nil)

	counts := make(map[int]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	tied := make([]int, 0, 1)
	for _, v := range values {
		if float64(counts[v]) == maxCount {
			tied = append(tied, v)
			counts[v] = -1 // only record each value once
		}
	}

	return int(mode), tied, int(maxCount)
}

func joinKeys[T any](m map[string]T) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
