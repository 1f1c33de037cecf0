package rnet

import "fmt"

// reservedWords are the parameter names of the generated propensity
// functions. A species or rate with one of these names would shadow a
// function parameter in the generated code.
var reservedWords = map[string]bool{
	"xstate": true,
	"time":   true,
	"vol":    true,
	"ldata":  true,
	"gdata":  true,
	"sd":     true,
}

// Reserved reports whether name is reserved by the propensity function
// signature.
func Reserved(name string) bool {
	return reservedWords[name]
}

// ValidIdentifier reports whether name is a C identifier: a letter or
// underscore followed by letters, digits or underscores. Identifier-shaped
// names cannot contain the '$' marker delimiter used during propensity
// rewriting, so validating the shape here guarantees marker substitution
// never collides with an input name.
func ValidIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Validate checks the well-formedness of the network's name sets. It fails
// on the first violated condition and has no side effects; compilation must
// not proceed past a failing validation.
func (n *Network) Validate() error {
	for i, s := range n.Species {
		if s == "" {
			return fmt.Errorf("%w: species #%d", ErrEmptySpeciesName, i+1)
		}
	}

	species := make(map[string]bool, len(n.Species))
	for _, s := range n.Species {
		if species[s] {
			return fmt.Errorf("%w: species %q", ErrDuplicateName, s)
		}
		species[s] = true
	}

	rates := make(map[string]bool, len(n.Rates))
	for _, r := range n.Rates {
		if rates[r.Name] {
			return fmt.Errorf("%w: rate %q", ErrDuplicateName, r.Name)
		}
		rates[r.Name] = true
	}

	for _, r := range n.Rates {
		if species[r.Name] {
			return fmt.Errorf("%w: %q", ErrNameCollision, r.Name)
		}
	}

	for _, s := range n.Species {
		if Reserved(s) {
			return fmt.Errorf("%w: species %q", ErrReservedName, s)
		}
	}
	for _, r := range n.Rates {
		if Reserved(r.Name) {
			return fmt.Errorf("%w: rate %q", ErrReservedName, r.Name)
		}
	}

	for _, s := range n.Species {
		if !ValidIdentifier(s) {
			return fmt.Errorf("%w: species %q", ErrBadIdentifier, s)
		}
	}
	for _, r := range n.Rates {
		if !ValidIdentifier(r.Name) {
			return fmt.Errorf("%w: rate %q", ErrBadIdentifier, r.Name)
		}
	}

	return nil
}
