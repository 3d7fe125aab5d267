package wallet

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
)

// BinarySeedSize is the length of a derived binary seed in bytes (512 bits).
const BinarySeedSize = 64

// pbkdf2Rounds is the PBKDF2 iteration count shared by BIP-0039 and Electrum.
const pbkdf2Rounds = 2048

// SaltPrefix returns the PBKDF2 salt prefix for a seed phrase type:
// "mnemonic" for BIP-0039 phrases, "electrum" for any Electrum phrase, and
// "non-standard" for unrecognized phrases.
func SaltPrefix(t SeedPhraseType) string {
	switch {
	case t.IsBIP0039():
		return "mnemonic"
	case t.IsElectrum():
		return "electrum"
	default:
		return "non-standard"
	}
}

// DeriveBinarySeed stretches a phrase and passphrase into a 64-byte binary
// seed with PBKDF2-HMAC-SHA512 and the salt prefix for the given type.
// Both phrase and passphrase must already be normalized (see NormalizeText).
func DeriveBinarySeed(phrase, passphrase string, t SeedPhraseType) []byte {
	salt := SaltPrefix(t) + passphrase
	return pbkdf2.Key([]byte(phrase), []byte(salt), pbkdf2Rounds, BinarySeedSize, sha512.New)
}

// ToBinarySeed runs the whole phrase-to-seed pipeline: normalize the phrase
// and passphrase, classify the phrase, and stretch it into a binary seed.
// An Unknown classification is not an error; the seed is then derived with
// the "non-standard" salt and callers may choose to refuse it.
func (c *Classifier) ToBinarySeed(phrase, passphrase string) ([]byte, SeedPhraseType) {
	phrase = NormalizeText(phrase)
	passphrase = NormalizeText(passphrase)
	t := c.Classify(phrase)
	return DeriveBinarySeed(phrase, passphrase, t), t
}
