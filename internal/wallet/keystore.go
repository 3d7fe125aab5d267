package wallet

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/reverbel/seed-phrases-for-stellar/pkg/crypto"
)

// walletFile is the on-disk JSON format for a stored wallet.
type walletFile struct {
	Version         int            `json:"version"`
	CreatedAt       time.Time      `json:"created_at"`
	SeedPhraseType  string         `json:"seed_phrase_type"`
	SeedFingerprint string         `json:"seed_fingerprint"`
	SealedSeed      []byte         `json:"sealed_seed"`
	Accounts        []AccountEntry `json:"accounts"`
}

// AccountEntry stores public metadata for a derived account. The private
// seed string is never written to disk.
type AccountEntry struct {
	Account uint32 `json:"account"`
	Name    string `json:"name,omitempty"`
	Address string `json:"address"`
}

// Keystore manages sealed binary seeds and derived-account metadata on disk.
type Keystore struct {
	path string
}

// NewKeystore creates a keystore that reads/writes to the given directory.
// The directory is created if it doesn't exist.
func NewKeystore(path string) (*Keystore, error) {
	if err := os.MkdirAll(path, 0700); err != nil {
		return nil, fmt.Errorf("create keystore dir: %w", err)
	}
	return &Keystore{path: path}, nil
}

// walletPath returns the file path for a wallet by name.
func (ks *Keystore) walletPath(name string) string {
	return filepath.Join(ks.path, name+".wallet")
}

// Create seals a 64-byte binary seed under a password and writes a new
// wallet file. The seed's type tag and fingerprint are stored alongside so
// the wallet can be described without decrypting it.
func (ks *Keystore) Create(name string, seed, password []byte, typ SeedPhraseType, params KDFParams) error {
	path := ks.walletPath(name)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("wallet %q already exists", name)
	}

	sealed, err := SealSeed(seed, password, params)
	if err != nil {
		return fmt.Errorf("seal seed: %w", err)
	}

	wf := walletFile{
		Version:         1,
		CreatedAt:       time.Now().UTC(),
		SeedPhraseType:  typ.String(),
		SeedFingerprint: crypto.SeedFingerprint(seed),
		SealedSeed:      sealed,
		Accounts:        []AccountEntry{},
	}
	return ks.writeFile(path, &wf)
}

// Load opens a wallet and returns the binary seed. The caller owns the seed
// and should zero it once consumed.
func (ks *Keystore) Load(name string, password []byte) ([]byte, error) {
	wf, err := ks.readFile(ks.walletPath(name))
	if err != nil {
		return nil, err
	}

	seed, err := OpenSeed(wf.SealedSeed, password)
	if err != nil {
		return nil, fmt.Errorf("open wallet %q: %w", name, err)
	}

	// Guards against files whose sealed seed was swapped or corrupted.
	if fp := crypto.SeedFingerprint(seed); fp != wf.SeedFingerprint {
		return nil, fmt.Errorf("wallet %q: seed fingerprint mismatch (%s != %s)", name, fp, wf.SeedFingerprint)
	}
	return seed, nil
}

// Describe returns the stored seed type, fingerprint and creation time
// without requiring the password.
func (ks *Keystore) Describe(name string) (seedType, fingerprint string, createdAt time.Time, err error) {
	wf, err := ks.readFile(ks.walletPath(name))
	if err != nil {
		return "", "", time.Time{}, err
	}
	return wf.SeedPhraseType, wf.SeedFingerprint, wf.CreatedAt, nil
}

// AddAccount records a derived account in the wallet metadata. Inserting the
// same (account, address) pair again is a no-op; the same account number
// with a different address is an error.
func (ks *Keystore) AddAccount(walletName string, acct AccountEntry) error {
	path := ks.walletPath(walletName)
	wf, err := ks.readFile(path)
	if err != nil {
		return err
	}

	for _, existing := range wf.Accounts {
		if existing.Account == acct.Account {
			if existing.Address == acct.Address {
				return nil
			}
			return fmt.Errorf("account %d already exists with address %s", acct.Account, existing.Address)
		}
	}

	wf.Accounts = append(wf.Accounts, acct)
	return ks.writeFile(path, wf)
}

// ListAccounts returns the recorded account entries for a wallet.
func (ks *Keystore) ListAccounts(walletName string) ([]AccountEntry, error) {
	wf, err := ks.readFile(ks.walletPath(walletName))
	if err != nil {
		return nil, err
	}
	return wf.Accounts, nil
}

// List returns the names of all wallet files in the keystore.
func (ks *Keystore) List() ([]string, error) {
	entries, err := os.ReadDir(ks.path)
	if err != nil {
		return nil, fmt.Errorf("read keystore dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if ext := filepath.Ext(name); ext == ".wallet" {
			names = append(names, name[:len(name)-len(ext)])
		}
	}
	return names, nil
}

// Delete removes a wallet file.
func (ks *Keystore) Delete(name string) error {
	path := ks.walletPath(name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("wallet %q not found", name)
	}
	return os.Remove(path)
}

func (ks *Keystore) writeFile(path string, wf *walletFile) error {
	data, err := json.MarshalIndent(wf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal wallet: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write wallet: %w", err)
	}
	return nil
}

func (ks *Keystore) readFile(path string) (*walletFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read wallet: %w", err)
	}
	var wf walletFile
	if err := json.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("parse wallet: %w", err)
	}
	if wf.Version != 1 {
		return nil, fmt.Errorf("unsupported wallet version: %d", wf.Version)
	}
	return &wf, nil
}
