package whatwgurl

import (
	"sort"
	"strings"
)

// pair is a single (name, value) entry of a SearchParams container.
type pair struct {
	name  string
	value string
}

// SearchParams is an ordered multimap of (name, value) string pairs, as
// produced by a URL's query component (spec.md §4.7). Unlike URL, it never
// fails to construct: malformed input is silently dropped, never
// rejected.
type SearchParams struct {
	pairs []pair
}

// NewSearchParams builds an empty SearchParams.
func NewSearchParams() *SearchParams {
	return &SearchParams{}
}

// NewSearchParamsFromString builds a SearchParams by parsing a query
// string: a single leading '?' is stripped, the remainder is split on '&',
// and each non-empty piece is split at its first '='. Pieces with no '='
// are dropped, matching the source implementation this package is
// grounded on rather than the WHATWG-widened value="" behavior (see
// DESIGN.md).
func NewSearchParamsFromString(s string) *SearchParams {
	sp := &SearchParams{}
	s = strings.TrimPrefix(s, "?")
	if s == "" {
		return sp
	}
	for _, piece := range strings.Split(s, "&") {
		if piece == "" {
			continue
		}
		eq := strings.IndexByte(piece, '=')
		if eq == -1 {
			continue
		}
		sp.pairs = append(sp.pairs, pair{name: piece[:eq], value: piece[eq+1:]})
	}
	return sp
}

// NewSearchParamsFromPairs builds a SearchParams from an ordered list of
// (name, value) pairs, preserving order, e.g. from a decoded query
// iterable.
func NewSearchParamsFromPairs(pairs [][2]string) *SearchParams {
	sp := &SearchParams{pairs: make([]pair, 0, len(pairs))}
	for _, p := range pairs {
		sp.pairs = append(sp.pairs, pair{name: p[0], value: p[1]})
	}
	return sp
}

// NewSearchParamsFromMap builds a SearchParams from a mapping, iterating
// in the order names appear in the order slice (a Go map has no ordering
// guarantee of its own, so the caller supplies iteration order).
func NewSearchParamsFromMap(m map[string]string, order []string) *SearchParams {
	sp := &SearchParams{pairs: make([]pair, 0, len(order))}
	for _, name := range order {
		sp.pairs = append(sp.pairs, pair{name: name, value: m[name]})
	}
	return sp
}

// Append pushes (name, value) onto the end, regardless of existing entries.
func (sp *SearchParams) Append(name, value string) {
	sp.pairs = append(sp.pairs, pair{name: name, value: value})
}

// Delete removes every pair whose name equals name, preserving the relative
// order of survivors.
func (sp *SearchParams) Delete(name string) {
	kept := sp.pairs[:0]
	for _, p := range sp.pairs {
		if p.name != name {
			kept = append(kept, p)
		}
	}
	sp.pairs = kept
}

// Get returns the value of the first pair named name, and whether one
// exists.
func (sp *SearchParams) Get(name string) (string, bool) {
	for _, p := range sp.pairs {
		if p.name == name {
			return p.value, true
		}
	}
	return "", false
}

// GetAll returns every value associated with name, in order.
func (sp *SearchParams) GetAll(name string) []string {
	var values []string
	for _, p := range sp.pairs {
		if p.name == name {
			values = append(values, p.value)
		}
	}
	return values
}

// Has reports whether any pair is named name.
func (sp *SearchParams) Has(name string) bool {
	for _, p := range sp.pairs {
		if p.name == name {
			return true
		}
	}
	return false
}

// Set removes every pair named name, then appends (name, value) at the
// end. If name was not present, this is equivalent to Append.
func (sp *SearchParams) Set(name, value string) {
	sp.Delete(name)
	sp.pairs = append(sp.pairs, pair{name: name, value: value})
}

// Sort stably reorders pairs by name, comparing names as Unicode
// code-point sequences (Go's string comparison operators already compare
// valid UTF-8 this way), preserving relative order among equal names.
func (sp *SearchParams) Sort() {
	sort.SliceStable(sp.pairs, func(i, j int) bool {
		return sp.pairs[i].name < sp.pairs[j].name
	})
}

// Keys returns every name, in order, including duplicates.
func (sp *SearchParams) Keys() []string {
	keys := make([]string, len(sp.pairs))
	for i, p := range sp.pairs {
		keys[i] = p.name
	}
	return keys
}

// Values returns every value, in order.
func (sp *SearchParams) Values() []string {
	values := make([]string, len(sp.pairs))
	for i, p := range sp.pairs {
		values[i] = p.value
	}
	return values
}

// Entries returns every (name, value) pair, in order.
func (sp *SearchParams) Entries() [][2]string {
	entries := make([][2]string, len(sp.pairs))
	for i, p := range sp.pairs {
		entries[i] = [2]string{p.name, p.value}
	}
	return entries
}

// ForEach invokes fn once per pair in order, passing value then name, to
// match the callback argument order of the JavaScript URLSearchParams API
// this container's source was bound to.
func (sp *SearchParams) ForEach(fn func(value, name string)) {
	for _, p := range sp.pairs {
		fn(p.value, p.name)
	}
}

// String joins "name=value" pairs with '&', using the raw names and
// values as stored; percent-encoding on ingress/egress is left to the
// caller.
func (sp *SearchParams) String() string {
	parts := make([]string, len(sp.pairs))
	for i, p := range sp.pairs {
		parts[i] = p.name + "=" + p.value
	}
	return strings.Join(parts, "&")
}
