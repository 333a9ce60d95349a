package collection

import "strings"

// AllValues is the facet value that disables a filter.
const AllValues = "all"

// Filter is the search text plus one selected value per facet.
type Filter struct {
	Search string
	Facets map[string]string
}

func (f Filter) active(facet string) (string, bool) {
	v, ok := f.Facets[facet]
	if !ok || v == "" || v == AllValues {
		return "", false
	}
	return v, true
}

// Match reports whether item passes f. Search is a case-insensitive
// substring match over the searchable fields; facets must match exactly.
// All conditions are ANDed.
func Match[T any](item T, f Filter, search func(T) []string, facets map[string]func(T) string) bool {
	for name, get := range facets {
		want, on := f.active(name)
		if on && get(item) != want {
			return false
		}
	}
	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" || search == nil {
		return true
	}
	for _, field := range search(item) {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
