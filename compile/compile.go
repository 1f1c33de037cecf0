package compile

import (
	"errors"
	"fmt"

	"github.com/rnetlab/go-rnet/dsl"
	"github.com/rnetlab/go-rnet/rnet"
)

// ErrUnknownSpecies is returned when a reactant or product token does not
// resolve to a species.
var ErrUnknownSpecies = errors.New("unknown species")

// Result holds everything one compilation produces. All fields are built
// fresh per Compile call and immutable afterwards.
type Result struct {
	Net       *rnet.Network
	Reactions []dsl.Reaction // parsed reaction triples, in input order
	Rewritten []string       // propensity expressions in accessor form

	// N is the stoichiometric matrix, species × reactions. Column i holds
	// the net copy-count change of each species when reaction i fires.
	N *Matrix

	// H is the dependency indicator, species × reactions. Entry (s, i) is
	// true iff species s occurs as a whole symbol in reaction i's
	// propensity expression.
	H *BoolMatrix

	// G is the dependency graph, reactions × (species + reactions). The
	// species block is Hᵗ; the reaction block marks which reactions'
	// firings require re-evaluating this reaction's propensity.
	G *BoolMatrix
}

// Compile runs the full pipeline over a network: validation, per-reaction
// splitting and symbol resolution, matrix assembly and the dependency graph.
// It is a pure function of its input; a failing step aborts with no partial
// output.
func Compile(net *rnet.Network) (*Result, error) {
	if err := net.Validate(); err != nil {
		return nil, err
	}

	table := NewSymbolTable(net.Species, net.Rates)
	nspecies := len(net.Species)
	nreactions := len(net.Reactions)

	res := &Result{
		Net:       net,
		Reactions: make([]dsl.Reaction, 0, nreactions),
		Rewritten: make([]string, 0, nreactions),
		N:         NewMatrix(nspecies, nreactions),
		H:         NewBoolMatrix(nspecies, nreactions),
	}

	for i, raw := range net.Reactions {
		r, err := dsl.SplitReaction(raw, i+1)
		if err != nil {
			return nil, err
		}

		for _, tok := range r.Reactants {
			s, ok := table.Species(tok)
			if !ok {
				return nil, fmt.Errorf("%w: %q in reaction #%d", ErrUnknownSpecies, tok, i+1)
			}
			res.N.Add(s, i, -1)
		}
		for _, tok := range r.Products {
			s, ok := table.Species(tok)
			if !ok {
				return nil, fmt.Errorf("%w: %q in reaction #%d", ErrUnknownSpecies, tok, i+1)
			}
			res.N.Add(s, i, +1)
		}

		rewritten, deps := table.Rewrite(r.Propensity)
		for _, d := range deps {
			res.H.Set(d, i, true)
		}

		res.Reactions = append(res.Reactions, r)
		res.Rewritten = append(res.Rewritten, rewritten)
	}

	res.G = dependencyGraph(res.N, res.H)
	return res, nil
}

// dependencyGraph derives G = nonzero([Hᵗ, Hᵗ·|N|]). The first block states
// which species each reaction's propensity reads; the second marks reaction
// pairs (i, j) where firing j changes some species that i's propensity
// reads.
func dependencyGraph(n *Matrix, h *BoolMatrix) *BoolMatrix {
	nspecies := n.Rows
	nreactions := n.Cols
	g := NewBoolMatrix(nreactions, nspecies+nreactions)

	for i := 0; i < nreactions; i++ {
		for s := 0; s < nspecies; s++ {
			if h.At(s, i) {
				g.Set(i, s, true)
			}
		}
		for j := 0; j < nreactions; j++ {
			for s := 0; s < nspecies; s++ {
				if h.At(s, i) && n.At(s, j) != 0 {
					g.Set(i, nspecies+j, true)
					break
				}
			}
		}
	}
	return g
}
