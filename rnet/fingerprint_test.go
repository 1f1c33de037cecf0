package rnet

import (
	"strings"
	"testing"
)

func TestFingerprintDeterministic(t *testing.T) {
	a := validNetwork()
	b := validNetwork()

	if !a.Equal(b) {
		t.Error("identical networks should have equal fingerprints")
	}
	if a.CID() != b.CID() {
		t.Errorf("CID mismatch: %s vs %s", a.CID(), b.CID())
	}
}

func TestFingerprintChangesWithContent(t *testing.T) {
	a := validNetwork()
	b := validNetwork()
	b.AddSpecies("Y")

	if a.Equal(b) {
		t.Error("different networks should have different fingerprints")
	}
}

func TestFingerprintOrderSensitive(t *testing.T) {
	a := New("m")
	a.AddSpecies("X", "Y")
	b := New("m")
	b.AddSpecies("Y", "X")

	// Species order determines matrix rows and enum values.
	if a.Equal(b) {
		t.Error("species order must be part of the fingerprint")
	}
}

func TestCIDFormat(t *testing.T) {
	cid := validNetwork().CID()
	if !strings.HasPrefix(cid, "cid:") {
		t.Errorf("CID %q should have cid: prefix", cid)
	}
	if len(cid) != 4+64 {
		t.Errorf("CID %q should encode 32 bytes of hex", cid)
	}
}
