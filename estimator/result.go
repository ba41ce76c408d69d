package estimator

// Fraction is one composition estimate: the share of total rRNA signal
// attributed to an organism assuming it carries Candidate copies and the rest
// of the community sits at its Scenario reference value.
type Fraction struct {
	Candidate int
	Scenario  Scenario
	Value     float64
}

// Entry is the composition distribution of one organism.
type Entry struct {
	Name          string
	TaxonomyID    string
	GeneCopyCount int
	Fractions     []Fraction

	// Gene copy count over the total of the whole, unfiltered sample, with no
	// rRNA correction.
	RawGeneFraction float64
}

// Values returns the fraction values in emission order.
func (e Entry) Values() []float64 {
	out := make([]float64, len(e.Fractions))
	for i, f := range e.Fractions {
		out[i] = f.Value
	}
	return out
}

// ScenarioValues returns the fraction values computed under s.
func (e Entry) ScenarioValues(s Scenario) []float64 {
	out := make([]float64, 0, len(e.Fractions)/len(Scenarios)+1)
	for _, f := range e.Fractions {
		if f.Scenario == s {
			out = append(out, f.Value)
		}
	}
	return out
}

// Max is the organism's best-case contribution, which the cutoff is compared
// against.
func (e Entry) Max() float64 {
	max := 0.0
	for _, f := range e.Fractions {
		if f.Value > max {
			max = f.Value
		}
	}
	return max
}

// Result is the output of Estimate. Entries are ordered by Options.Order.
type Result struct {
	Entries []Entry

	// Organisms removed by the cutoff, in input order.
	Dropped []string

	Options Options
}

func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Entries)
}

// Labels returns the organism names in result order.
func (r *Result) Labels() []string {
	out := make([]string, 0, r.Len())
	for _, e := range r.Entries {
		out = append(out, e.Name)
	}
	return out
}

// Series returns each organism's fraction values, aligned with Labels.
func (r *Result) Series() [][]float64 {
	out := make([][]float64, 0, r.Len())
	for _, e := range r.Entries {
		out = append(out, e.Values())
	}
	return out
}

// RawSeries returns each organism's raw gene fraction, aligned with Labels.
func (r *Result) RawSeries() []float64 {
	out := make([]float64, 0, r.Len())
	for _, e := range r.Entries {
		out = append(out, e.RawGeneFraction)
	}
	return out
}

// Lookup finds an organism's entry by name.
func (r *Result) Lookup(name string) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}
	for _, e := range r.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
