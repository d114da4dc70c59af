package variant

// Samples holds the decoded per-sample FORMAT fields of one record:
// a shared key list plus one value row per sample, aligned to the keys.
// A nil value is a missing entry for that sample.
type Samples struct {
	keys   []string
	values [][]*Value
}

// NewSamples returns a Samples over the given keys and rows. Each row
// must be aligned to keys.
func NewSamples(keys []string, values [][]*Value) *Samples {
	return &Samples{keys: keys, values: values}
}

// Keys returns the FORMAT keys in declaration order.
func (s *Samples) Keys() []string {
	return s.keys
}

// Len returns the number of samples.
func (s *Samples) Len() int {
	return len(s.values)
}

// Row returns the values of one sample, aligned to Keys.
func (s *Samples) Row(i int) ([]*Value, bool) {
	if i < 0 || i >= len(s.values) {
		return nil, false
	}
	return s.values[i], true
}

// Series returns a column view over one FORMAT key.
func (s *Samples) Series(name string) (*Series, bool) {
	for i, key := range s.keys {
		if key == name {
			return &Series{name: name, values: s.values, i: i}, true
		}
	}
	return nil, false
}

// Series is a column view over one FORMAT key across all samples.
type Series struct {
	name   string
	values [][]*Value
	i      int
}

// Name returns the FORMAT key of the series.
func (s *Series) Name() string {
	return s.name
}

// Get returns the value for sample i. The second return is false when
// the sample index is out of range; a nil value with true means the
// sample exists but the value is missing.
func (s *Series) Get(i int) (*Value, bool) {
	if i < 0 || i >= len(s.values) {
		return nil, false
	}
	row := s.values[i]
	if s.i >= len(row) {
		return nil, true
	}
	return row[s.i], true
}
