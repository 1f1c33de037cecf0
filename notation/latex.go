// Package notation renders a reaction listing as LaTeX. It works from the
// same parsed triples as the compiler but shares no state with it.
package notation

import (
	"fmt"
	"strings"

	"github.com/rnetlab/go-rnet/dsl"
)

// Render produces a LaTeX align environment with one line per reaction.
// Empty reactant or product segments render as the empty-set symbol.
func Render(reactions []dsl.Reaction) string {
	var b strings.Builder

	b.WriteString("\\begin{align}\n")
	for i, r := range reactions {
		fmt.Fprintf(&b, "  %s &\\xrightarrow{%s} %s", side(r.Reactants), texExpr(r.Propensity), side(r.Products))
		if i < len(reactions)-1 {
			b.WriteString(" \\\\")
		}
		b.WriteString("\n")
	}
	b.WriteString("\\end{align}\n")

	return b.String()
}

// RenderStrings splits raw reaction strings and renders them. Malformed
// reactions abort with the splitter's error.
func RenderStrings(raw []string) (string, error) {
	reactions := make([]dsl.Reaction, 0, len(raw))
	for i, s := range raw {
		r, err := dsl.SplitReaction(s, i+1)
		if err != nil {
			return "", err
		}
		reactions = append(reactions, r)
	}
	return Render(reactions), nil
}

func side(tokens []string) string {
	if len(tokens) == 0 {
		return "\\emptyset"
	}
	return strings.Join(tokens, " + ")
}

// texExpr applies light typesetting to a propensity expression.
func texExpr(expr string) string {
	expr = strings.ReplaceAll(expr, "*", " \\cdot ")
	return expr
}
