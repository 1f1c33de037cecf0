package c

import (
	"strings"
	"testing"
	"time"

	"github.com/rnetlab/go-rnet/compile"
	"github.com/rnetlab/go-rnet/rnet"
)

func birthDeath(t *testing.T) *compile.Result {
	t.Helper()
	n := rnet.New("birth-death")
	n.AddSpecies("X")
	n.AddRate("k", 1)
	n.AddRate("mu", 1e-3)
	n.AddReaction("@ > k*vol > X")
	n.AddReaction("X > mu*X > @")

	res, err := compile.Compile(n)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	return res
}

func TestGenerateStructure(t *testing.T) {
	src := Generate(birthDeath(t))

	if !strings.HasPrefix(src, Marker+"\n") {
		t.Error("generated source must start with the marker line")
	}

	for _, want := range []string{
		"enum Species {X};",
		"const size_t NR = 2;",
		"const double k = 1;",
		"const double mu = 0.001;",
		"static PropensityFun ptr[] = {rFun1, rFun2};",
		"PropensityFun *ALLOC_propensities(size_t Mreactions)",
		"void FREE_propensities(PropensityFun *ptr)",
		"exit(EXIT_FAILURE);",
		"@ > k*vol > X",
		"X > mu*X > @",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q", want)
		}
	}
}

func TestGeneratePropensityBodies(t *testing.T) {
	src := Generate(birthDeath(t))

	if !strings.Contains(src, "return k*vol;") {
		t.Error("expected first propensity body")
	}
	if !strings.Contains(src, "return mu*xstate[X];") {
		t.Error("expected second propensity body")
	}

	// The first reaction reads no species: its body must not touch xstate.
	def := "double rFun1(const int *xstate, double time, double vol, " +
		"const double *ldata, const double *gdata, int sd)\n{\n  return k*vol;\n}"
	if !strings.Contains(src, def) {
		t.Error("rFun1 definition should return k*vol without touching xstate")
	}
}

func TestGenerateForwardDeclsMatchTable(t *testing.T) {
	src := Generate(birthDeath(t))

	decls := strings.Count(src, "double rFun1(")
	if decls != 2 { // forward declaration plus definition
		t.Errorf("rFun1 declared %d times, want 2", decls)
	}
}

func TestGenerateIdempotent(t *testing.T) {
	res := birthDeath(t)
	stamp := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	a := GenerateAt(res, stamp)
	b := GenerateAt(res, stamp)
	if a != b {
		t.Error("two generations with the same timestamp must be byte-identical")
	}

	// A different timestamp may change exactly one line.
	c := GenerateAt(res, stamp.Add(time.Hour))
	la := strings.Split(a, "\n")
	lc := strings.Split(c, "\n")
	if len(la) != len(lc) {
		t.Fatal("timestamp change altered line count")
	}
	diff := 0
	for i := range la {
		if la[i] != lc[i] {
			diff++
		}
	}
	if diff != 1 {
		t.Errorf("timestamp change altered %d lines, want 1", diff)
	}
}

func TestGenerateLosslessRateValues(t *testing.T) {
	n := rnet.New("precise")
	n.AddSpecies("X")
	n.AddRate("tiny", 1.5e-300)
	n.AddRate("third", 1.0/3.0)
	n.AddReaction("X > tiny*X > @")

	res, err := compile.Compile(n)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	src := Generate(res)

	if !strings.Contains(src, "const double tiny = 1.5e-300;") {
		t.Error("tiny value not formatted losslessly")
	}
	if !strings.Contains(src, "const double third = 0.3333333333333333;") {
		t.Error("third value not formatted losslessly")
	}
}

func TestGenerateSubstringCollision(t *testing.T) {
	n := rnet.New("collision")
	n.AddSpecies("B", "BA")
	n.AddRate("k", 1)
	n.AddReaction("B+BA > k*B*BA > @")

	res, err := compile.Compile(n)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	src := Generate(res)

	if !strings.Contains(src, "return k*xstate[B]*xstate[BA];") {
		t.Error("expected both species referenced distinctly")
	}
}
