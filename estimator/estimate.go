package estimator

import (
	"github.com/carbocation/rrnacomp/sample"
	"golang.org/x/sync/errgroup"
)

// references holds an organism's reference copy number under each scenario.
type references [len(Scenarios)]int

func (r references) get(s Scenario) int {
	return r[s]
}

func referencesFor(rec sample.OrganismRecord, policy ModePolicy) (references, error) {
	mode, err := policy.Mode(rec)
	if err != nil {
		return references{}, err
	}

	var out references
	out[ScenarioMin] = rec.MinRRNA()
	out[ScenarioMax] = rec.MaxRRNA()
	out[ScenarioMode] = mode

	return out, nil
}

// backgrounds holds, per scenario, the summed normalized gene signal of every
// organism except one.
type backgrounds [len(Scenarios)]float64

// Estimate computes the composition distribution of every organism in s and
// drops those whose best case falls below opts.Cutoff. An empty sample yields
// an empty Result. s is never modified.
func Estimate(s *sample.Sample, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	out := &Result{
		Entries: make([]Entry, 0, s.Len()),
		Dropped: make([]string, 0),
		Options: opts,
	}

	if s.Len() == 0 {
		return out, nil
	}

	records := s.Records()

	refs := make([]references, len(records))
	for i, rec := range records {
		r, err := referencesFor(rec, opts.Mode)
		if err != nil {
			return nil, err
		}
		refs[i] = r
	}

	bgs, err := computeBackgrounds(records, refs, opts.Workers)
	if err != nil {
		return nil, err
	}

	geneTotal := float64(s.GeneTotal())

	for i, rec := range records {
		entry := Entry{
			Name:            rec.Name,
			TaxonomyID:      rec.TaxonomyID,
			GeneCopyCount:   rec.GeneCopyCount,
			Fractions:       fractions(rec, refs[i], bgs[i], opts.Convention),
			RawGeneFraction: float64(rec.GeneCopyCount) / geneTotal,
		}

		if entry.Max() < opts.Cutoff {
			out.Dropped = append(out.Dropped, rec.Name)
			continue
		}

		out.Entries = append(out.Entries, entry)
	}

	if opts.Order == OrderReversed {
		for i, j := 0, len(out.Entries)-1; i < j; i, j = i+1, j-1 {
			out.Entries[i], out.Entries[j] = out.Entries[j], out.Entries[i]
		}
	}

	return out, nil
}

// fractions emits one value per own copy number and scenario: for each own
// candidate, the MIN, MAX and MODE scenarios in that order.
func fractions(rec sample.OrganismRecord, self references, bg backgrounds, convention Convention) []Fraction {
	gene := float64(rec.GeneCopyCount)

	if convention == ConventionCandidates {
		out := make([]Fraction, 0, len(rec.RRNA)*len(Scenarios))
		for _, d := range rec.RRNA {
			own := gene / float64(d)
			for _, s := range Scenarios {
				out = append(out, Fraction{Candidate: d, Scenario: s, Value: own / (bg[s] + own)})
			}
		}
		return out
	}

	out := make([]Fraction, 0, len(Scenarios))
	for _, s := range Scenarios {
		for _, d := range convention.ownCandidates(self, rec.RRNA, s) {
			own := gene / float64(d)
			out = append(out, Fraction{Candidate: d, Scenario: s, Value: own / (bg[s] + own)})
		}
	}
	return out
}

func computeBackgrounds(records []sample.OrganismRecord, refs []references, workers int) ([]backgrounds, error) {
	out := make([]backgrounds, len(records))

	if workers <= 1 {
		for o := range records {
			out[o] = backgroundOf(o, records, refs)
		}
		return out, nil
	}

	// Each goroutine writes only its own slot of out, and records/refs are
	// read-only from here on.
	var g errgroup.Group
	g.SetLimit(workers)
	for o := range records {
		o := o
		g.Go(func() error {
			out[o] = backgroundOf(o, records, refs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// backgroundOf sums genes(I)/ref_S(I) over every organism I other than o, in
// input order.
func backgroundOf(o int, records []sample.OrganismRecord, refs []references) backgrounds {
	var bg backgrounds
	for i, rec := range records {
		if i == o {
			continue
		}
		gene := float64(rec.GeneCopyCount)
		for _, s := range Scenarios {
			bg[s] += gene / float64(refs[i].get(s))
		}
	}
	return bg
}
