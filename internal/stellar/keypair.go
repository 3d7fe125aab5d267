// Package stellar adapts the Stellar SDK's keypair encoding to the wallet
// package's KeypairLibrary seam.
package stellar

import (
	"fmt"

	"github.com/stellar/go/keypair"

	"github.com/reverbel/seed-phrases-for-stellar/internal/wallet"
)

// RawSeedSize is the length of a raw ed25519 private seed in bytes.
const RawSeedSize = 32

// KeypairLibrary produces Stellar keypairs (strkey-encoded G... address and
// S... private seed) from raw 32-byte private keys.
type KeypairLibrary struct{}

// FromRawSeed implements wallet.KeypairLibrary.
func (KeypairLibrary) FromRawSeed(raw []byte) (wallet.Keypair, error) {
	if len(raw) != RawSeedSize {
		return wallet.Keypair{}, fmt.Errorf("raw seed must be %d bytes, got %d", RawSeedSize, len(raw))
	}

	var seed [RawSeedSize]byte
	copy(seed[:], raw)
	full, err := keypair.FromRawSeed(seed)
	for i := range seed {
		seed[i] = 0
	}
	if err != nil {
		return wallet.Keypair{}, fmt.Errorf("keypair from raw seed: %w", err)
	}

	return wallet.Keypair{Address: full.Address(), Seed: full.Seed()}, nil
}
