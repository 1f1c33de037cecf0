package templates

import (
	"github.com/rnetlab/go-rnet/rnet"
)

// BirthDeathTemplate implements the linear birth-death process.
type BirthDeathTemplate struct{}

func (t *BirthDeathTemplate) Name() string {
	return "birth-death"
}

func (t *BirthDeathTemplate) Description() string {
	return "Linear birth-death process (∅ → X → ∅)"
}

func (t *BirthDeathTemplate) Parameters() []Parameter {
	return []Parameter{
		{
			Name:        "birth_rate",
			Description: "Birth intensity per unit volume (k)",
			Type:        "float",
			Default:     1.0,
			Required:    false,
		},
		{
			Name:        "death_rate",
			Description: "Per-molecule death rate (mu)",
			Type:        "float",
			Default:     1e-3,
			Required:    false,
		},
	}
}

func (t *BirthDeathTemplate) Generate(params map[string]interface{}) (*rnet.Network, error) {
	n := rnet.New("birth-death")
	n.AddSpecies("X")
	n.AddRate("k", getFloatParam(params, "birth_rate", 1.0))
	n.AddRate("mu", getFloatParam(params, "death_rate", 1e-3))
	n.AddReaction("@ > k*vol > X")
	n.AddReaction("X > mu*X > @")
	return n, nil
}

// DimerizationTemplate implements reversible dimerization.
type DimerizationTemplate struct{}

func (t *DimerizationTemplate) Name() string {
	return "dimerization"
}

func (t *DimerizationTemplate) Description() string {
	return "Reversible dimerization (M + M ⇌ D)"
}

func (t *DimerizationTemplate) Parameters() []Parameter {
	return []Parameter{
		{
			Name:        "forward_rate",
			Description: "Dimer formation rate (kf)",
			Type:        "float",
			Default:     1e-3,
			Required:    false,
		},
		{
			Name:        "reverse_rate",
			Description: "Dimer dissociation rate (kr)",
			Type:        "float",
			Default:     0.5,
			Required:    false,
		},
	}
}

func (t *DimerizationTemplate) Generate(params map[string]interface{}) (*rnet.Network, error) {
	n := rnet.New("dimerization")
	n.AddSpecies("M", "D")
	n.AddRate("kf", getFloatParam(params, "forward_rate", 1e-3))
	n.AddRate("kr", getFloatParam(params, "reverse_rate", 0.5))
	n.AddReaction("M+M > kf*M*(M-1)/vol > D")
	n.AddReaction("D > kr*D > M+M")
	return n, nil
}

// SIRTemplate implements the SIR epidemic model as a reaction network.
type SIRTemplate struct{}

func (t *SIRTemplate) Name() string {
	return "sir"
}

func (t *SIRTemplate) Description() string {
	return "SIR epidemic model (Susceptible → Infected → Recovered)"
}

func (t *SIRTemplate) Parameters() []Parameter {
	return []Parameter{
		{
			Name:        "infection_rate",
			Description: "Infection rate (beta)",
			Type:        "float",
			Default:     0.0003,
			Required:    false,
		},
		{
			Name:        "recovery_rate",
			Description: "Recovery rate (gamma)",
			Type:        "float",
			Default:     0.1,
			Required:    false,
		},
	}
}

func (t *SIRTemplate) Generate(params map[string]interface{}) (*rnet.Network, error) {
	n := rnet.New("sir")
	n.AddSpecies("S", "I", "R")
	n.AddRate("beta", getFloatParam(params, "infection_rate", 0.0003))
	n.AddRate("gamma", getFloatParam(params, "recovery_rate", 0.1))
	n.AddReaction("S+I > beta*S*I/vol > I+I")
	n.AddReaction("I > gamma*I > R")
	return n, nil
}
