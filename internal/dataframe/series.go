package dataframe

// Series is a named column of nullable cells.
type Series struct {
	Name   string
	values []Value
}

// NewSeries creates a column from the given cells.
func NewSeries(name string, values ...Value) *Series {
	return &Series{Name: name, values: values}
}

// Len returns the number of cells.
func (s *Series) Len() int { return len(s.values) }

// At returns the cell at position i.
func (s *Series) At(i int) Value { return s.values[i] }

// Set replaces the cell at position i.
func (s *Series) Set(i int, v Value) { s.values[i] = v }

// Kind infers the column storage type: the kind shared by all non-null
// cells, KindString when kinds are mixed, KindNull for an all-null column.
func (s *Series) Kind() Kind {
	kind := KindNull
	for _, v := range s.values {
		if v.IsNull() {
			continue
		}
		if kind == KindNull {
			kind = v.Kind()
			continue
		}
		if v.Kind() != kind {
			return KindString
		}
	}
	return kind
}

// NullCount returns the number of absent cells.
func (s *Series) NullCount() int {
	n := 0
	for _, v := range s.values {
		if v.IsNull() {
			n++
		}
	}
	return n
}

// Transform replaces every cell with fn applied to it, in place.
func (s *Series) Transform(fn func(Value) Value) {
	for i, v := range s.values {
		s.values[i] = fn(v)
	}
}

// clone returns an independent copy of the column.
func (s *Series) clone() *Series {
	values := make([]Value, len(s.values))
	copy(values, s.values)
	return &Series{Name: s.Name, values: values}
}
