package shared

// Filter represents query filter options passed to list operations.
// Listing is insertion-ordered by default; OrderBy overrides it where a
// backend supports sorting on the named column.
type Filter struct {
	OrderBy  string
	OrderDir string
	Filters  map[string]interface{}
}

// DefaultFilter returns an empty filter
func DefaultFilter() Filter {
	return Filter{Filters: make(map[string]interface{})}
}

// WithEq adds an equality condition to the filter
func (f Filter) WithEq(field string, value interface{}) Filter {
	if f.Filters == nil {
		f.Filters = make(map[string]interface{})
	}
	f.Filters[field] = value
	return f
}
