package wallet

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"strings"
)

// SeedPhraseType identifies the seed standard a phrase conforms to.
type SeedPhraseType int

const (
	// Unknown means the phrase matched no recognized standard.
	Unknown SeedPhraseType = iota

	// BIP0039 is a plain BIP-0039 wordlist phrase.
	BIP0039

	// BIP0039ElectrumStandard is BIP-0039 valid and also carries the
	// Electrum standard-wallet seed version prefix.
	BIP0039ElectrumStandard

	// BIP0039ElectrumSegwit is BIP-0039 valid with the segwit prefix.
	BIP0039ElectrumSegwit

	// BIP0039ElectrumTwoFactor is BIP-0039 valid with the 2FA prefix.
	BIP0039ElectrumTwoFactor

	// ElectrumLegacy is an old (pre 2.0) Electrum phrase.
	ElectrumLegacy

	// ElectrumStandard is a new-style Electrum standard-wallet phrase.
	ElectrumStandard

	// ElectrumSegwit is a new-style Electrum segwit-wallet phrase.
	ElectrumSegwit

	// ElectrumTwoFactor is a new-style Electrum 2FA-wallet phrase.
	ElectrumTwoFactor
)

// Seed version prefixes: the hex digest of an Electrum phrase's signature
// must begin with one of these.
const (
	seedVersionKey  = "Seed version"
	prefixStandard  = "01"
	prefixSegwit    = "100"
	prefixTwoFactor = "101"
)

// String returns the human-readable name for the seed phrase type.
func (t SeedPhraseType) String() string {
	switch t {
	case BIP0039:
		return "BIP-0039"
	case BIP0039ElectrumStandard:
		return "BIP-0039 and Electrum standard"
	case BIP0039ElectrumSegwit:
		return "BIP-0039 and Electrum segwit"
	case BIP0039ElectrumTwoFactor:
		return "BIP-0039 and Electrum 2FA"
	case ElectrumLegacy:
		return "Old (pre 2.0) Electrum"
	case ElectrumStandard:
		return "Electrum standard"
	case ElectrumSegwit:
		return "Electrum segwit"
	case ElectrumTwoFactor:
		return "Electrum 2FA"
	default:
		return "UNKNOWN"
	}
}

// IsBIP0039 reports whether t covers a BIP-0039 valid phrase.
func (t SeedPhraseType) IsBIP0039() bool {
	switch t {
	case BIP0039, BIP0039ElectrumStandard, BIP0039ElectrumSegwit, BIP0039ElectrumTwoFactor:
		return true
	}
	return false
}

// IsElectrum reports whether t is an Electrum-only type (legacy included).
func (t SeedPhraseType) IsElectrum() bool {
	switch t {
	case ElectrumLegacy, ElectrumStandard, ElectrumSegwit, ElectrumTwoFactor:
		return true
	}
	return false
}

// PhraseChecker validates a phrase against a BIP-0039 wordlist for a
// language. The language identifier is opaque to this package.
type PhraseChecker interface {
	IsValidPhrase(phrase, language string) bool
}

// LegacyDecoder decodes an old (pre 2.0) Electrum word sequence to its raw
// entropy. A decode error means the words are not legacy Electrum words.
type LegacyDecoder interface {
	DecodeLegacyWords(words []string) ([]byte, error)
}

// Classifier decides which seed standard a normalized phrase conforms to.
// Collaborators are injected; there is no ambient state. Legacy may be nil,
// in which case the legacy word route is unavailable (the hex route still
// applies).
type Classifier struct {
	Checker  PhraseChecker
	Legacy   LegacyDecoder
	Language string
}

// NewClassifier builds a classifier for the given BIP-0039 language.
func NewClassifier(checker PhraseChecker, legacy LegacyDecoder, language string) *Classifier {
	return &Classifier{Checker: checker, Legacy: legacy, Language: language}
}

// Classify returns the seed phrase type of an already-normalized phrase.
// BIP-0039 wins over Electrum; within Electrum, legacy is checked first,
// then the standard, segwit and 2FA version prefixes in that order.
func (c *Classifier) Classify(phrase string) SeedPhraseType {
	if c.Checker != nil && c.Checker.IsValidPhrase(phrase, c.Language) {
		switch {
		case matchesSeedVersion(phrase, prefixStandard):
			return BIP0039ElectrumStandard
		case matchesSeedVersion(phrase, prefixSegwit):
			return BIP0039ElectrumSegwit
		case matchesSeedVersion(phrase, prefixTwoFactor):
			return BIP0039ElectrumTwoFactor
		}
		return BIP0039
	}

	switch {
	case c.isLegacy(phrase):
		return ElectrumLegacy
	case matchesSeedVersion(phrase, prefixStandard):
		return ElectrumStandard
	case matchesSeedVersion(phrase, prefixSegwit):
		return ElectrumSegwit
	case matchesSeedVersion(phrase, prefixTwoFactor):
		return ElectrumTwoFactor
	}
	return Unknown
}

// matchesSeedVersion reports whether the hex digest of
// HMAC-SHA512("Seed version", phrase) starts with the given prefix.
func matchesSeedVersion(phrase, prefix string) bool {
	mac := hmac.New(sha512.New, []byte(seedVersionKey))
	mac.Write([]byte(phrase))
	return strings.HasPrefix(hex.EncodeToString(mac.Sum(nil)), prefix)
}

// isLegacy applies the old-Electrum heuristic: either the phrase is 12 or 24
// words that the legacy decoder accepts, or the whole phrase is a hex string
// of exactly 16 or 32 bytes. The checks are deliberately weak to keep
// accepting seeds that historical Electrum versions accepted.
func (c *Classifier) isLegacy(phrase string) bool {
	words := strings.Fields(phrase)

	usesLegacyWords := false
	if c.Legacy != nil {
		if _, err := c.Legacy.DecodeLegacyWords(words); err == nil {
			usesLegacyWords = true
		}
	}

	isHex := false
	if raw, err := hex.DecodeString(phrase); err == nil {
		isHex = len(raw) == 16 || len(raw) == 32
	}

	return isHex || (usesLegacyWords && (len(words) == 12 || len(words) == 24))
}
