package notation

import (
	"errors"
	"strings"
	"testing"

	"github.com/rnetlab/go-rnet/dsl"
)

func TestRender(t *testing.T) {
	out, err := RenderStrings([]string{
		"@ > k*vol > X",
		"X > mu*X > @",
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.HasPrefix(out, "\\begin{align}\n") || !strings.HasSuffix(out, "\\end{align}\n") {
		t.Errorf("missing align environment:\n%s", out)
	}
	if !strings.Contains(out, "\\emptyset &\\xrightarrow{k \\cdot vol} X") {
		t.Errorf("first reaction rendered wrong:\n%s", out)
	}
	if !strings.Contains(out, "X &\\xrightarrow{mu \\cdot X} \\emptyset") {
		t.Errorf("second reaction rendered wrong:\n%s", out)
	}

	// Line continuations between reactions but not after the last.
	if strings.Count(out, "\\\\") != 1 {
		t.Errorf("expected exactly one line continuation:\n%s", out)
	}
}

func TestRenderJoinedSides(t *testing.T) {
	out, err := RenderStrings([]string{"X+Y > kk*X*Y/vol > @"})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(out, "X + Y &\\xrightarrow{") {
		t.Errorf("reactants not joined:\n%s", out)
	}
}

func TestRenderMalformed(t *testing.T) {
	_, err := RenderStrings([]string{"X mu*X"})
	if !errors.Is(err, dsl.ErrMalformedReaction) {
		t.Errorf("error = %v, want ErrMalformedReaction", err)
	}
}
