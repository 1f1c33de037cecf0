// Package rnet defines the reaction network model consumed by the compiler.
// A network is an ordered list of species, an ordered list of named rate
// constants, and a list of reaction strings in the two-separator grammar
// "reactants > propensity > products".
package rnet

// RateConstant pairs a rate name with its numeric value. Rates are emitted
// into generated code as named constants, never accessed by position.
type RateConstant struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Network is the compiler's input model. Species order is significant: a
// species' zero-based position in Species is its row in the stoichiometric
// matrix and its enumerator value in generated code.
type Network struct {
	Name      string         `json:"name,omitempty"`
	Species   []string       `json:"species"`
	Rates     []RateConstant `json:"rates"`
	Reactions []string       `json:"reactions"`
}

// New creates an empty network.
func New(name string) *Network {
	return &Network{Name: name}
}

// AddSpecies appends species names in order.
func (n *Network) AddSpecies(names ...string) {
	n.Species = append(n.Species, names...)
}

// AddRate appends a named rate constant.
func (n *Network) AddRate(name string, value float64) {
	n.Rates = append(n.Rates, RateConstant{Name: name, Value: value})
}

// AddReaction appends a raw reaction string.
func (n *Network) AddReaction(r string) {
	n.Reactions = append(n.Reactions, r)
}

// SetRates replaces the rate list from parallel name/value slices.
// The slices must have matching length.
func (n *Network) SetRates(names []string, values []float64) error {
	if len(names) != len(values) {
		return ErrRateArity
	}
	n.Rates = n.Rates[:0]
	for i, name := range names {
		n.Rates = append(n.Rates, RateConstant{Name: name, Value: values[i]})
	}
	return nil
}

// SpeciesIndex returns the zero-based position of a species name, or -1.
func (n *Network) SpeciesIndex(name string) int {
	for i, s := range n.Species {
		if s == name {
			return i
		}
	}
	return -1
}
