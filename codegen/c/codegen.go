// Package c generates the C propensity plugin consumed by discrete-event
// stochastic solvers. The emitted unit defines one propensity function per
// reaction plus the ALLOC/FREE boundary pair of the solver plugin contract.
package c

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rnetlab/go-rnet/compile"
)

// Marker is the fixed first line of every generated file. The persistence
// layer refuses to overwrite an existing file whose first line differs.
const Marker = "/* Generated by rnetc - do not edit. */"

// signature is the propensity function parameter list required by the
// solver. The parameter names are the reserved identifiers rejected during
// network validation.
const signature = "const int *xstate, double time, double vol, const double *ldata, const double *gdata, int sd"

// Generate produces the C source for a compilation result, stamped with the
// current time.
func Generate(res *compile.Result) string {
	return GenerateAt(res, time.Now())
}

// GenerateAt produces the C source with an explicit timestamp. The
// timestamp occupies exactly one line, so two generations of the same
// network differ in at most that line.
func GenerateAt(res *compile.Result, now time.Time) string {
	g := &generator{res: res, now: now}
	return g.generate()
}

type generator struct {
	res *compile.Result
	now time.Time
}

func (g *generator) generate() string {
	var b strings.Builder

	b.WriteString(Marker + "\n")
	fmt.Fprintf(&b, "/* Generated at %s */\n", g.now.UTC().Format(time.RFC3339))
	b.WriteString(g.generateHeader())
	b.WriteString(g.generateIncludes())
	b.WriteString(g.generateSpeciesEnum())
	b.WriteString(g.generateConstants())
	b.WriteString(g.generateForwardDecls())
	b.WriteString(g.generateDispatchTable())
	b.WriteString(g.generateFunctions())
	b.WriteString(g.generateBoundary())

	return b.String()
}

// generateHeader echoes each original reaction string for traceability.
func (g *generator) generateHeader() string {
	var b strings.Builder
	b.WriteString("/* Reactions:\n")
	for _, r := range g.res.Reactions {
		fmt.Fprintf(&b, "     %s\n", r.Raw)
	}
	b.WriteString("*/\n\n")
	return b.String()
}

func (g *generator) generateIncludes() string {
	return "#include <stdio.h>\n" +
		"#include <stdlib.h>\n" +
		"#include \"propensities.h\"\n\n"
}

// generateSpeciesEnum emits the species enumeration in input order, so each
// enumerator equals the species' row in the stoichiometric matrix.
func (g *generator) generateSpeciesEnum() string {
	if len(g.res.Net.Species) == 0 {
		return ""
	}
	return fmt.Sprintf("enum Species {%s};\n\n", strings.Join(g.res.Net.Species, ", "))
}

func (g *generator) generateConstants() string {
	var b strings.Builder
	fmt.Fprintf(&b, "const size_t NR = %d; /* number of reactions */\n\n", len(g.res.Reactions))
	for _, r := range g.res.Net.Rates {
		fmt.Fprintf(&b, "const double %s = %s;\n", r.Name, formatValue(r.Value))
	}
	if len(g.res.Net.Rates) > 0 {
		b.WriteString("\n")
	}
	return b.String()
}

func (g *generator) generateForwardDecls() string {
	var b strings.Builder
	for i := range g.res.Reactions {
		fmt.Fprintf(&b, "double %s(%s);\n", funcName(i), signature)
	}
	b.WriteString("\n")
	return b.String()
}

// generateDispatchTable emits the static, order-preserving table of
// propensity function references indexed by reaction position.
func (g *generator) generateDispatchTable() string {
	names := make([]string, len(g.res.Reactions))
	for i := range g.res.Reactions {
		names[i] = funcName(i)
	}
	return fmt.Sprintf("static PropensityFun ptr[] = {%s};\n\n", strings.Join(names, ", "))
}

func (g *generator) generateFunctions() string {
	var b strings.Builder
	for i, r := range g.res.Reactions {
		fmt.Fprintf(&b, "/* %s */\n", r.Raw)
		fmt.Fprintf(&b, "double %s(%s)\n", funcName(i), signature)
		b.WriteString("{\n")
		fmt.Fprintf(&b, "  return %s;\n", g.res.Rewritten[i])
		b.WriteString("}\n\n")
	}
	return b.String()
}

// generateBoundary emits the two plugin entry points. ALLOC rejects a
// reaction count above the compiled count as a fatal configuration
// mismatch; FREE is a no-op because the dispatch table has static lifetime.
func (g *generator) generateBoundary() string {
	var b strings.Builder

	b.WriteString("PropensityFun *ALLOC_propensities(size_t Mreactions)\n")
	b.WriteString("{\n")
	b.WriteString("  if (Mreactions > NR) {\n")
	b.WriteString("    fprintf(stderr, \"requested %zu reactions, compiled for %zu\\n\", Mreactions, NR);\n")
	b.WriteString("    exit(EXIT_FAILURE);\n")
	b.WriteString("  }\n")
	b.WriteString("  return ptr;\n")
	b.WriteString("}\n\n")

	b.WriteString("void FREE_propensities(PropensityFun *ptr)\n")
	b.WriteString("{\n")
	b.WriteString("  /* nothing to free, the table is static */\n")
	b.WriteString("}\n")

	return b.String()
}

func funcName(i int) string {
	return fmt.Sprintf("rFun%d", i+1)
}

// formatValue renders a rate value losslessly as a C double literal.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
