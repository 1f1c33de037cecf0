package rnet

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/holiman/uint256"
)

// Fingerprint computes a content-addressed identity for the network as a
// 256-bit integer. Any change to the species, rates or reactions changes
// the fingerprint. Species and reaction order is significant, so no
// normalization is applied before hashing.
func (n *Network) Fingerprint() *uint256.Int {
	data, err := json.Marshal(n)
	if err != nil {
		return uint256.NewInt(0)
	}
	hash := sha256.Sum256(data)
	return new(uint256.Int).SetBytes(hash[:])
}

// CID renders the fingerprint as a stable string identifier.
func (n *Network) CID() string {
	b := n.Fingerprint().Bytes32()
	return "cid:" + hex.EncodeToString(b[:])
}

// Equal returns true if two networks have the same fingerprint.
func (n *Network) Equal(other *Network) bool {
	if other == nil {
		return false
	}
	return n.Fingerprint().Eq(other.Fingerprint())
}
