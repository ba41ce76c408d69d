package sample

// Sample is an immutable, ordered collection of organism records with unique
// names. The order is the order in which records were read.
type Sample struct {
	records []OrganismRecord
	index   map[string]int
}

// New validates records and builds a Sample from them. Records are copied, so
// later changes to the caller's slices are not seen by the Sample.
func New(records ...OrganismRecord) (*Sample, error) {
	s := &Sample{
		records: make([]OrganismRecord, 0, len(records)),
		index:   make(map[string]int, len(records)),
	}

	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, err
		}
		if _, exists := s.index[rec.Name]; exists {
			return nil, &MalformedError{Organism: rec.Name, Field: FieldName, Value: rec.Name, Reason: "organism appears more than once in the sample"}
		}
		s.index[rec.Name] = len(s.records)
		s.records = append(s.records, rec.clone())
	}

	return s, nil
}

func (s *Sample) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// At returns the i'th record in input order.
func (s *Sample) At(i int) OrganismRecord {
	return s.records[i].clone()
}

func (s *Sample) Lookup(name string) (OrganismRecord, bool) {
	if s == nil {
		return OrganismRecord{}, false
	}
	i, exists := s.index[name]
	if !exists {
		return OrganismRecord{}, false
	}
	return s.records[i].clone(), true
}

// Records returns a copy of every record, in input order.
func (s *Sample) Records() []OrganismRecord {
	out := make([]OrganismRecord, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		out = append(out, s.records[i].clone())
	}
	return out
}

// Names returns organism names in input order.
func (s *Sample) Names() []string {
	out := make([]string, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		out = append(out, s.records[i].Name)
	}
	return out
}

// GeneTotal is the sum of gene copy counts over the whole sample.
func (s *Sample) GeneTotal() int {
	total := 0
	for i := 0; i < s.Len(); i++ {
		total += s.records[i].GeneCopyCount
	}
	return total
}
