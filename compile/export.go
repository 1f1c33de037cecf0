package compile

import "encoding/json"

// MatricesJSON serializes the stoichiometric matrix and dependency graph so
// downstream simulators can load them without parsing generated C.
func (r *Result) MatricesJSON() ([]byte, error) {
	reactions := make([]string, len(r.Reactions))
	for i, rx := range r.Reactions {
		reactions[i] = rx.Raw
	}

	export := map[string]any{
		"name":      r.Net.Name,
		"cid":       r.Net.CID(),
		"species":   r.Net.Species,
		"reactions": reactions,
		"N":         r.N.ToRows(),
		"H":         r.H.ToRows(),
		"G":         r.G.ToRows(),
	}

	return json.MarshalIndent(export, "", "  ")
}
