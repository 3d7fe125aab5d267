// Package slip10 implements SLIP-0010 hierarchical key derivation for the
// ed25519 curve. Only hardened derivation exists for ed25519, so every child
// index must have the hardened bit set.
package slip10

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

const (
	// SeedSize is the length of a binary seed in bytes (512 bits).
	SeedSize = 64

	// KeySize is the length of a private key or chain code in bytes.
	KeySize = 32

	// FirstHardened is the index of the first hardened child key.
	FirstHardened uint32 = 1 << 31
)

// curveKey is the HMAC key for master key generation, per SLIP-0010.
var curveKey = []byte("ed25519 seed")

// ExtendedKey is a (private key, chain code) pair as defined by BIP-0032.
// Extended keys form a strict tree: the master key comes from a binary seed
// and every other key from exactly one parent plus a hardened index.
type ExtendedKey struct {
	Key       []byte // 32-byte private key
	ChainCode []byte // 32-byte chain code
}

// Zero overwrites the key material held by k.
func (k *ExtendedKey) Zero() {
	for i := range k.Key {
		k.Key[i] = 0
	}
	for i := range k.ChainCode {
		k.ChainCode[i] = 0
	}
}

// NewMasterKey derives the extended master key from a 64-byte binary seed.
func NewMasterKey(seed []byte) (ExtendedKey, error) {
	if len(seed) != SeedSize {
		return ExtendedKey{}, fmt.Errorf("seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	return split(hmacSHA512(curveKey, seed)), nil
}

// Child derives the extended child key at the given hardened index.
// Indices below FirstHardened are rejected: ed25519 has no public
// (non-hardened) derivation.
func (k ExtendedKey) Child(index uint32) (ExtendedKey, error) {
	if len(k.Key) != KeySize {
		return ExtendedKey{}, fmt.Errorf("parent key must be %d bytes, got %d", KeySize, len(k.Key))
	}
	if len(k.ChainCode) != KeySize {
		return ExtendedKey{}, fmt.Errorf("parent chain code must be %d bytes, got %d", KeySize, len(k.ChainCode))
	}
	if index < FirstHardened {
		return ExtendedKey{}, fmt.Errorf("non-hardened index %d: ed25519 supports hardened derivation only", index)
	}

	// data = 0x00 || parent_key || ser32(index)
	data := make([]byte, 0, 1+KeySize+4)
	data = append(data, 0x00)
	data = append(data, k.Key...)
	data = binary.BigEndian.AppendUint32(data, index)

	return split(hmacSHA512(k.ChainCode, data)), nil
}

// ParsePath parses a derivation path such as "m/44'/148'/0'" into its raw
// indices, without the hardened bit. Every index must fit in 31 bits. The
// trailing apostrophes are optional: all derivation here is hardened anyway.
func ParsePath(path string) ([]uint32, error) {
	segments := strings.Split(path, "/")
	if segments[0] != "m" {
		return nil, fmt.Errorf("path %q must start with \"m\"", path)
	}

	indices := make([]uint32, 0, len(segments)-1)
	for _, seg := range segments[1:] {
		seg = strings.TrimSuffix(seg, "'")
		n, err := strconv.ParseUint(seg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid path segment %q: %w", seg, err)
		}
		if uint32(n) >= FirstHardened {
			return nil, fmt.Errorf("path index %d does not fit in 31 bits", n)
		}
		indices = append(indices, uint32(n))
	}
	return indices, nil
}

// DeriveAlongPath derives the private key reached by following path from the
// master key of the given 64-byte binary seed. Every step is hardened. The
// final chain code is discarded.
func DeriveAlongPath(path string, seed []byte) ([]byte, error) {
	indices, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	key, err := NewMasterKey(seed)
	if err != nil {
		return nil, err
	}
	for _, idx := range indices {
		child, err := key.Child(idx | FirstHardened)
		if err != nil {
			return nil, err
		}
		key.Zero()
		key = child
	}
	return key.Key, nil
}

func hmacSHA512(key, data []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

// split cuts a 64-byte HMAC digest into (private key, chain code).
func split(sum []byte) ExtendedKey {
	return ExtendedKey{Key: sum[:KeySize], ChainCode: sum[KeySize:]}
}
