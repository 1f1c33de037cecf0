// Package compile turns a validated reaction network into its stoichiometric
// matrix, dependency graph and rewritten propensity expressions.
package compile

import (
	"sort"

	"github.com/rnetlab/go-rnet/rnet"
)

// SymbolTable maps species and rate names to signed indices: species get
// positive 1-based indices, rate constants negative 1-based indices. The
// table is read-only after construction.
type SymbolTable struct {
	index   map[string]int
	byLen   []string // all names, longest first
	species []string
	rates   []rnet.RateConstant
}

// NewSymbolTable builds a table from ordered species and rate lists. The
// lists are assumed to have passed rnet validation (unique, disjoint,
// identifier-shaped names).
func NewSymbolTable(species []string, rates []rnet.RateConstant) *SymbolTable {
	t := &SymbolTable{
		index:   make(map[string]int, len(species)+len(rates)),
		species: species,
		rates:   rates,
	}

	for i, s := range species {
		t.index[s] = i + 1
		t.byLen = append(t.byLen, s)
	}
	for j, r := range rates {
		t.index[r.Name] = -(j + 1)
		t.byLen = append(t.byLen, r.Name)
	}

	// Longest first, so a short name never substitutes inside a longer one.
	sort.SliceStable(t.byLen, func(a, b int) bool {
		return len(t.byLen[a]) > len(t.byLen[b])
	})

	return t
}

// Lookup returns the signed index for a name.
func (t *SymbolTable) Lookup(name string) (int, bool) {
	idx, ok := t.index[name]
	return idx, ok
}

// Species returns the zero-based species index for a name, rejecting names
// that resolve to rate constants.
func (t *SymbolTable) Species(name string) (int, bool) {
	idx, ok := t.index[name]
	if !ok || idx < 0 {
		return 0, false
	}
	return idx - 1, true
}

// SpeciesName returns the species name at a zero-based index.
func (t *SymbolTable) SpeciesName(i int) string {
	return t.species[i]
}

// rateName returns the rate name at a 1-based index.
func (t *SymbolTable) rateName(j int) string {
	return t.rates[j-1].Name
}
