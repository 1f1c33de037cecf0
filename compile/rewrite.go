package compile

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// markerDelim delimits the intermediate signed-index markers embedded during
// phase one of the rewrite. Validated names are C identifiers and can never
// contain '$', and every marker payload includes the delimiters, so phase
// one substitutions cannot corrupt each other. A '$' in the source
// expression is escaped to escapedDelim before any substitution, so the
// only single delimiters phase two sees are the ones phase one inserted.
const (
	markerDelim  = "$"
	escapedDelim = "$$"
)

// Rewrite replaces every species and rate identifier occurring in expr with
// its generated-code accessor form, leaving all other text untouched. It
// returns the rewritten expression and the sorted, duplicate-free set of
// zero-based species indices the expression reads.
//
// The substitution runs in two phases. Phase one escapes any '$' already in
// the expression, then walks all names longest first and replaces each
// occurrence with a marker "$i$" carrying the name's signed index. Phase two
// expands markers: a positive index becomes an xstate access through the
// species enumerator, a negative index becomes the literal rate name, and
// escaped delimiters come back out as literal '$'.
func (t *SymbolTable) Rewrite(expr string) (string, []int) {
	out := strings.ReplaceAll(expr, markerDelim, escapedDelim)
	depset := make(map[int]bool)

	for _, name := range t.byLen {
		if !strings.Contains(out, name) {
			continue
		}
		idx := t.index[name]
		if idx > 0 {
			depset[idx-1] = true
		}
		out = strings.ReplaceAll(out, name, markerDelim+strconv.Itoa(idx)+markerDelim)
	}

	deps := make([]int, 0, len(depset))
	for d := range depset {
		deps = append(deps, d)
	}
	sort.Ints(deps)

	return t.expand(out), deps
}

// expand performs the second rewrite pass, scanning left to right for
// markers and substituting their final form. Escaped delimiters decode back
// to a single '$'. A delimiter that does not open a valid marker passes
// through as literal text; that cannot happen for phase-one output but keeps
// the pass total.
func (t *SymbolTable) expand(s string) string {
	var b strings.Builder
	for len(s) > 0 {
		open := strings.Index(s, markerDelim)
		if open < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:open])

		rest := s[open+1:]
		if strings.HasPrefix(rest, markerDelim) {
			b.WriteString(markerDelim)
			s = rest[1:]
			continue
		}
		end := strings.Index(rest, markerDelim)
		if end < 0 {
			b.WriteString(markerDelim)
			b.WriteString(rest)
			break
		}
		idx, err := strconv.Atoi(rest[:end])
		if err != nil || !t.inRange(idx) {
			b.WriteString(markerDelim)
			s = rest
			continue
		}

		if idx > 0 {
			fmt.Fprintf(&b, "xstate[%s]", t.SpeciesName(idx-1))
		} else {
			b.WriteString(t.rateName(-idx))
		}
		s = rest[end+1:]
	}
	return b.String()
}

// inRange reports whether a decoded marker payload is a live signed index.
func (t *SymbolTable) inRange(idx int) bool {
	if idx > 0 {
		return idx <= len(t.species)
	}
	return idx < 0 && -idx <= len(t.rates)
}
