package parser

import (
	"errors"
	"testing"

	"github.com/rnetlab/go-rnet/rnet"
)

func TestFromJSON(t *testing.T) {
	data := []byte(`{
		"name": "birth-death",
		"species": ["X"],
		"rates": [{"name": "k", "value": 1}, {"name": "mu", "value": 1e-3}],
		"reactions": ["@ > k*vol > X", "X > mu*X > @"]
	}`)

	net, err := FromJSON(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if net.Name != "birth-death" {
		t.Errorf("name = %q", net.Name)
	}
	if len(net.Species) != 1 || net.Species[0] != "X" {
		t.Errorf("species = %v", net.Species)
	}
	if len(net.Rates) != 2 || net.Rates[1].Name != "mu" || net.Rates[1].Value != 1e-3 {
		t.Errorf("rates = %v", net.Rates)
	}
	if len(net.Reactions) != 2 {
		t.Errorf("reactions = %v", net.Reactions)
	}
}

func TestFromJSONParallelRateArrays(t *testing.T) {
	data := []byte(`{
		"species": ["X"],
		"rate_names": ["k", "mu"],
		"rate_values": [1, 0.001],
		"reactions": []
	}`)

	net, err := FromJSON(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(net.Rates) != 2 || net.Rates[0].Name != "k" {
		t.Errorf("rates = %v", net.Rates)
	}
}

func TestFromJSONRateArityMismatch(t *testing.T) {
	data := []byte(`{
		"species": ["X"],
		"rate_names": ["k", "mu"],
		"rate_values": [1],
		"reactions": []
	}`)

	_, err := FromJSON(data)
	if !errors.Is(err, rnet.ErrRateArity) {
		t.Errorf("error = %v, want ErrRateArity", err)
	}
}

func TestFromJSONNonStringSpecies(t *testing.T) {
	data := []byte(`{"species": [7], "reactions": []}`)
	if _, err := FromJSON(data); err == nil {
		t.Error("expected error for non-string species entry")
	}
}

func TestFromJSONNonNumericRate(t *testing.T) {
	data := []byte(`{"species": ["X"], "rates": [{"name": "k", "value": "fast"}], "reactions": []}`)
	if _, err := FromJSON(data); err == nil {
		t.Error("expected error for non-numeric rate value")
	}
}

func TestFromJSONConflictingRateForms(t *testing.T) {
	data := []byte(`{
		"species": ["X"],
		"rates": [{"name": "k", "value": 1}],
		"rate_names": ["k"],
		"rate_values": [1],
		"reactions": []
	}`)
	if _, err := FromJSON(data); err == nil {
		t.Error("expected error when both rate forms are present")
	}
}

func TestRoundTrip(t *testing.T) {
	net := rnet.New("sir")
	net.AddSpecies("S", "I", "R")
	net.AddRate("beta", 0.0003)
	net.AddReaction("S+I > beta*S*I/vol > I+I")

	data, err := ToJSON(net)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	back, err := FromJSON(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !net.Equal(back) {
		t.Error("round trip changed the network fingerprint")
	}
}
