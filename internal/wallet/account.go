package wallet

import (
	"fmt"

	"github.com/reverbel/seed-phrases-for-stellar/pkg/slip10"
)

// AccountPathFormat is the BIP-0044 path template for Stellar keypair
// derivation, per SEP-0005. All three levels are hardened.
const AccountPathFormat = "m/44'/148'/%d'"

// Keypair is the terminal artifact of account derivation: a public address
// and the matching private seed string, both produced by the external
// keypair library. This package never retains it.
type Keypair struct {
	Address string
	Seed    string
}

// KeypairLibrary converts a raw 32-byte private key into an encoded keypair.
// It is the seam to the external ed25519/address-encoding collaborator.
type KeypairLibrary interface {
	FromRawSeed(raw []byte) (Keypair, error)
}

// AccountPath returns the derivation path for an account number.
// Account numbers must fit in 31 bits; larger values cannot be hardened.
func AccountPath(account uint32) (string, error) {
	if account >= slip10.FirstHardened {
		return "", fmt.Errorf("account number %d does not fit in 31 bits", account)
	}
	return fmt.Sprintf(AccountPathFormat, account), nil
}

// AccountKeypair derives the keypair for one account from a 64-byte binary
// seed: walk m/44'/148'/{account}' and hand the resulting private key to the
// keypair library. The intermediate key material is wiped before returning.
func AccountKeypair(lib KeypairLibrary, seed []byte, account uint32) (Keypair, error) {
	if lib == nil {
		return Keypair{}, fmt.Errorf("no keypair library configured")
	}

	path, err := AccountPath(account)
	if err != nil {
		return Keypair{}, err
	}
	raw, err := slip10.DeriveAlongPath(path, seed)
	if err != nil {
		return Keypair{}, fmt.Errorf("derive %s: %w", path, err)
	}

	kp, err := lib.FromRawSeed(raw)
	for i := range raw {
		raw[i] = 0
	}
	if err != nil {
		return Keypair{}, fmt.Errorf("keypair from raw seed: %w", err)
	}
	return kp, nil
}
