// Package crypto provides hashing helpers for seed-phrases-for-stellar.
package crypto

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// FingerprintSize is the length of a seed fingerprint in bytes.
const FingerprintSize = 4

// Hash computes a BLAKE3-256 hash of the input data.
func Hash(data []byte) [32]byte {
	return blake3.Sum256(data)
}

// SeedFingerprint returns a short hex identifier for a binary seed.
// The fingerprint lets a user check that two derivations used the same seed
// without revealing any usable key material.
func SeedFingerprint(seed []byte) string {
	h := Hash(seed)
	return hex.EncodeToString(h[:FingerprintSize])
}
