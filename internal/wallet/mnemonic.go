package wallet

import (
	"fmt"
	"sync"

	"github.com/tyler-smith/go-bip39"
	"github.com/tyler-smith/go-bip39/wordlists"
)

// MnemonicEntropyBits is the entropy size for generated 24-word mnemonics.
const MnemonicEntropyBits = 256

// DefaultLanguage is the wordlist used when no language is configured.
const DefaultLanguage = "english"

// wordlistsByLanguage maps language identifiers to their BIP-0039 wordlists.
var wordlistsByLanguage = map[string][]string{
	"chinese_simplified":  wordlists.ChineseSimplified,
	"chinese_traditional": wordlists.ChineseTraditional,
	"czech":               wordlists.Czech,
	"english":             wordlists.English,
	"french":              wordlists.French,
	"italian":             wordlists.Italian,
	"japanese":            wordlists.Japanese,
	"korean":              wordlists.Korean,
	"spanish":             wordlists.Spanish,
}

// wordlistMu serializes swaps of the bip39 package's global wordlist.
var wordlistMu sync.Mutex

// BIP39Checker validates phrases against the BIP-0039 wordlists bundled with
// the bip39 package. It implements PhraseChecker. An unsupported language is
// a negative validity result, not an error.
type BIP39Checker struct{}

// IsValidPhrase reports whether phrase is a valid BIP-0039 mnemonic (word
// count, wordlist membership and checksum) for the given language.
func (BIP39Checker) IsValidPhrase(phrase, language string) bool {
	list, ok := wordlistsByLanguage[language]
	if !ok {
		return false
	}

	wordlistMu.Lock()
	defer wordlistMu.Unlock()

	prev := bip39.GetWordList()
	bip39.SetWordList(list)
	valid := bip39.IsMnemonicValid(phrase)
	bip39.SetWordList(prev)
	return valid
}

// GenerateMnemonic creates a new 24-word english BIP-0039 mnemonic.
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(MnemonicEntropyBits)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}

	// NewMnemonic reads the package-global wordlist.
	wordlistMu.Lock()
	defer wordlistMu.Unlock()
	prev := bip39.GetWordList()
	bip39.SetWordList(wordlistsByLanguage[DefaultLanguage])
	mnemonic, err := bip39.NewMnemonic(entropy)
	bip39.SetWordList(prev)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return mnemonic, nil
}
