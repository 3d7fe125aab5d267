package wallet

import (
	"bytes"
	"testing"
)

// fastKDFParams keeps Argon2id cheap in tests.
func fastKDFParams() KDFParams {
	return KDFParams{Time: 1, Memory: 8, Threads: 1}
}

func TestSealOpenSeed_Roundtrip(t *testing.T) {
	seed := binarySeedForTest(t)
	password := []byte("correct horse battery staple")

	sealed, err := SealSeed(seed, password, fastKDFParams())
	if err != nil {
		t.Fatalf("SealSeed() error: %v", err)
	}

	opened, err := OpenSeed(sealed, password)
	if err != nil {
		t.Fatalf("OpenSeed() error: %v", err)
	}
	if !bytes.Equal(opened, seed) {
		t.Error("opened seed should equal the original")
	}
}

func TestSealSeed_WrongLength(t *testing.T) {
	for _, n := range []int{0, 32, 63, 65, 128} {
		if _, err := SealSeed(make([]byte, n), []byte("pw"), fastKDFParams()); err == nil {
			t.Errorf("SealSeed should reject a %d-byte seed", n)
		}
	}
}

func TestOpenSeed_WrongPassword(t *testing.T) {
	seed := binarySeedForTest(t)

	sealed, err := SealSeed(seed, []byte("right"), fastKDFParams())
	if err != nil {
		t.Fatalf("SealSeed() error: %v", err)
	}

	if _, err := OpenSeed(sealed, []byte("wrong")); err == nil {
		t.Error("wrong password should fail to open")
	}
}

func TestOpenSeed_Tampered(t *testing.T) {
	seed := binarySeedForTest(t)
	password := []byte("pw")

	sealed, err := SealSeed(seed, password, fastKDFParams())
	if err != nil {
		t.Fatalf("SealSeed() error: %v", err)
	}

	// Flip one ciphertext byte.
	sealed[len(sealed)-1] ^= 0xff
	if _, err := OpenSeed(sealed, password); err == nil {
		t.Error("tampered ciphertext should fail authentication")
	}
}

func TestOpenSeed_TooShort(t *testing.T) {
	if _, err := OpenSeed([]byte{1, 2, 3}, []byte("pw")); err == nil {
		t.Error("truncated input should be rejected")
	}
}

func TestSealSeed_BadKDFParams(t *testing.T) {
	seed := binarySeedForTest(t)
	bad := []KDFParams{
		{Time: 0, Memory: 8, Threads: 1},
		{Time: 1, Memory: 8, Threads: 0},
	}
	for _, params := range bad {
		if _, err := SealSeed(seed, []byte("pw"), params); err == nil {
			t.Errorf("SealSeed should reject params %+v", params)
		}
	}
}

func TestOpenSeed_CorruptedKDFParams(t *testing.T) {
	seed := binarySeedForTest(t)
	password := []byte("pw")

	sealed, err := SealSeed(seed, password, fastKDFParams())
	if err != nil {
		t.Fatalf("SealSeed() error: %v", err)
	}

	// Zero the time, memory and threads fields in the header. Open must
	// refuse the parameters as an error, not hand them to the KDF.
	for i := saltSize; i < saltSize+9; i++ {
		sealed[i] = 0
	}
	if _, err := OpenSeed(sealed, password); err == nil {
		t.Error("corrupted KDF parameters should be rejected")
	}
}

func TestSealSeed_FreshNonce(t *testing.T) {
	seed := binarySeedForTest(t)
	password := []byte("pw")

	s1, err := SealSeed(seed, password, fastKDFParams())
	if err != nil {
		t.Fatalf("SealSeed() error: %v", err)
	}
	s2, err := SealSeed(seed, password, fastKDFParams())
	if err != nil {
		t.Fatalf("SealSeed() error: %v", err)
	}

	if bytes.Equal(s1, s2) {
		t.Error("sealing twice should produce different ciphertexts")
	}
}
