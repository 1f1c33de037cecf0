// Package templates provides common reaction network patterns.
package templates

import (
	"fmt"
	"sort"

	"github.com/rnetlab/go-rnet/rnet"
)

// Template defines a parameterized reaction network pattern.
type Template interface {
	Name() string
	Description() string
	Parameters() []Parameter
	Generate(params map[string]interface{}) (*rnet.Network, error)
}

// Parameter defines a template parameter.
type Parameter struct {
	Name        string
	Description string
	Type        string // "int", "float", "string"
	Default     interface{}
	Required    bool
	Min         *float64 // For numeric types
	Max         *float64
}

// Registry holds all available templates.
var Registry = map[string]Template{
	"birth-death":  &BirthDeathTemplate{},
	"dimerization": &DimerizationTemplate{},
	"sir":          &SIRTemplate{},
}

// Get returns a template by name.
func Get(name string) (Template, error) {
	t, ok := Registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown template: %s", name)
	}
	return t, nil
}

// List returns all available template names, sorted.
func List() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Helper functions shared by the template implementations.
func getFloatParam(params map[string]interface{}, name string, defaultVal float64) float64 {
	if val, ok := params[name]; ok {
		switch v := val.(type) {
		case float64:
			return v
		case int:
			return float64(v)
		}
	}
	return defaultVal
}
