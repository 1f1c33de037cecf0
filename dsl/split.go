// Package dsl splits reaction strings written in the two-separator grammar
// "reactants > propensity > products". Reactant and product segments are
// '+'-joined species tokens; the empty set is written '@'. The propensity
// segment is opaque text handed to the rewriter unparsed.
package dsl

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Separator divides a reaction string into its three segments.
	Separator = ">"

	// Join separates species tokens within a segment.
	Join = "+"

	// EmptySet marks a segment with no reactants or no products.
	EmptySet = "@"
)

// ErrMalformedReaction is returned when a reaction string does not contain
// exactly two separators.
var ErrMalformedReaction = errors.New("malformed reaction")

// Reaction holds the three segments of one parsed reaction string.
type Reaction struct {
	Index      int    // 1-based position in the input list, for diagnostics
	Raw        string // original reaction text, echoed into generated code
	Reactants  []string
	Propensity string
	Products   []string
}

// SplitReaction partitions one reaction string into reactant tokens, the
// propensity expression and product tokens. pos is the reaction's 1-based
// position, used to tag errors.
func SplitReaction(s string, pos int) (Reaction, error) {
	if strings.Count(s, Separator) != 2 {
		return Reaction{}, fmt.Errorf("%w: reaction #%d: %q", ErrMalformedReaction, pos, s)
	}
	first := strings.Index(s, Separator)
	last := strings.LastIndex(s, Separator)

	return Reaction{
		Index:      pos,
		Raw:        s,
		Reactants:  SplitTerms(s[:first]),
		Propensity: strings.TrimSpace(s[first+1 : last]),
		Products:   SplitTerms(s[last+1:]),
	}, nil
}

// SplitTerms splits a reactant or product segment into its ordered species
// tokens. Whitespace and the empty-set symbol are stripped; an empty segment
// yields nil.
func SplitTerms(segment string) []string {
	segment = strings.ReplaceAll(segment, EmptySet, "")

	var terms []string
	for _, part := range strings.Split(segment, Join) {
		part = strings.TrimSpace(part)
		if part != "" {
			terms = append(terms, part)
		}
	}
	return terms
}
