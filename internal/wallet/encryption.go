package wallet

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// saltSize is the length of the Argon2id salt in bytes.
const saltSize = 16

// sealedHeaderSize covers salt, Argon2id parameters and the AEAD nonce:
// [salt(16)][time(4)][memory(4)][threads(1)][nonce(24)]
const sealedHeaderSize = saltSize + 4 + 4 + 1 + chacha20poly1305.NonceSizeX

// KDFParams holds the Argon2id cost parameters used to seal a seed.
type KDFParams struct {
	Time    uint32
	Memory  uint32 // in KiB
	Threads uint8
}

// DefaultKDFParams returns the recommended Argon2id cost parameters.
func DefaultKDFParams() KDFParams {
	return KDFParams{
		Time:    3,
		Memory:  64 * 1024, // 64 MiB
		Threads: 4,
	}
}

// validate rejects cost parameters the Argon2 implementation panics on.
func (p KDFParams) validate() error {
	if p.Time == 0 {
		return fmt.Errorf("argon2 time cost must be at least 1")
	}
	if p.Threads == 0 {
		return fmt.Errorf("argon2 parallelism must be at least 1")
	}
	return nil
}

// sealingKey derives the 32-byte AEAD key from a password and salt.
func sealingKey(password, salt []byte, params KDFParams) []byte {
	return argon2.IDKey(password, salt, params.Time, params.Memory, params.Threads,
		chacha20poly1305.KeySize)
}

// SealSeed encrypts a 64-byte binary seed under a password using Argon2id
// key derivation and XChaCha20-Poly1305.
//
// Output format: salt(16) | time(4) | memory(4) | threads(1) | nonce(24) | ciphertext
func SealSeed(seed, password []byte, params KDFParams) ([]byte, error) {
	if len(seed) != BinarySeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", BinarySeedSize, len(seed))
	}
	if err := params.validate(); err != nil {
		return nil, err
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	key := sealingKey(password, salt, params)
	aead, err := chacha20poly1305.NewX(key)
	for i := range key {
		key[i] = 0
	}
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	out := make([]byte, 0, sealedHeaderSize+len(seed)+aead.Overhead())
	out = append(out, salt...)
	out = binary.LittleEndian.AppendUint32(out, params.Time)
	out = binary.LittleEndian.AppendUint32(out, params.Memory)
	out = append(out, params.Threads)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, seed, nil), nil
}

// OpenSeed decrypts a seed sealed by SealSeed. A wrong password surfaces as
// an authentication failure from the AEAD open.
func OpenSeed(sealed, password []byte) ([]byte, error) {
	minSize := sealedHeaderSize + chacha20poly1305.Overhead
	if len(sealed) < minSize {
		return nil, fmt.Errorf("sealed seed too short: %d bytes, need at least %d", len(sealed), minSize)
	}

	salt := sealed[:saltSize]
	params := KDFParams{
		Time:    binary.LittleEndian.Uint32(sealed[saltSize:]),
		Memory:  binary.LittleEndian.Uint32(sealed[saltSize+4:]),
		Threads: sealed[saltSize+8],
	}
	// A corrupted header could carry cost parameters the KDF panics on.
	if err := params.validate(); err != nil {
		return nil, fmt.Errorf("sealed seed header: %w", err)
	}
	nonce := sealed[saltSize+9 : sealedHeaderSize]
	ciphertext := sealed[sealedHeaderSize:]

	key := sealingKey(password, salt, params)
	aead, err := chacha20poly1305.NewX(key)
	for i := range key {
		key[i] = 0
	}
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	seed, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt seed: %w", err)
	}
	return seed, nil
}
