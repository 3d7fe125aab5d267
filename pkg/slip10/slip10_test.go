package slip10

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// testSeed is a 64-byte binary seed with a known derivation result.
func testSeed(t *testing.T) []byte {
	t.Helper()
	seed, err := hex.DecodeString(
		"e4a5a632e70943ae7f07659df1332160937fad82587216a4c64315a0fb39497e" +
			"e4a01f76ddab4cba68147977f3a147b6ad584c41808e8238a07f6cc4b582f186")
	if err != nil {
		t.Fatalf("decode seed: %v", err)
	}
	return seed
}

func TestDeriveAlongPath_KnownVector(t *testing.T) {
	seed := testSeed(t)

	key, err := DeriveAlongPath("m/44'/148'", seed)
	if err != nil {
		t.Fatalf("DeriveAlongPath() error: %v", err)
	}

	want, _ := hex.DecodeString("e0eec84fe165cd427cb7bc9b6cfdef0555aa1cb6f9043ff1fe986c3c8ddd22e3")
	if !bytes.Equal(key, want) {
		t.Errorf("key = %x, want %x", key, want)
	}
}

func TestDeriveAlongPath_Deterministic(t *testing.T) {
	seed := testSeed(t)

	k1, err := DeriveAlongPath("m/44'/148'/0'", seed)
	if err != nil {
		t.Fatalf("DeriveAlongPath() error: %v", err)
	}
	k2, err := DeriveAlongPath("m/44'/148'/0'", seed)
	if err != nil {
		t.Fatalf("DeriveAlongPath() error: %v", err)
	}

	if !bytes.Equal(k1, k2) {
		t.Error("same path and seed should produce the same key")
	}
}

func TestDeriveAlongPath_SeedBitFlip(t *testing.T) {
	seed := testSeed(t)
	k1, err := DeriveAlongPath("m/44'/148'/0'", seed)
	if err != nil {
		t.Fatalf("DeriveAlongPath() error: %v", err)
	}

	flipped := make([]byte, len(seed))
	copy(flipped, seed)
	flipped[0] ^= 0x01
	k2, err := DeriveAlongPath("m/44'/148'/0'", flipped)
	if err != nil {
		t.Fatalf("DeriveAlongPath() error: %v", err)
	}

	if bytes.Equal(k1, k2) {
		t.Error("flipping a seed bit should change the derived key")
	}
}

func TestDeriveAlongPath_RootOnly(t *testing.T) {
	seed := testSeed(t)

	key, err := DeriveAlongPath("m", seed)
	if err != nil {
		t.Fatalf("DeriveAlongPath() error: %v", err)
	}

	master, err := NewMasterKey(seed)
	if err != nil {
		t.Fatalf("NewMasterKey() error: %v", err)
	}
	if !bytes.Equal(key, master.Key) {
		t.Error("path \"m\" should return the master private key")
	}
}

func TestNewMasterKey_InvalidSeedLength(t *testing.T) {
	tests := []struct {
		name string
		seed []byte
	}{
		{"empty", []byte{}},
		{"too short", make([]byte, 32)},
		{"too long", make([]byte, 128)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMasterKey(tt.seed)
			if err == nil {
				t.Error("expected error for invalid seed length")
			}
		})
	}
}

func TestChild_RejectsNonHardened(t *testing.T) {
	master, err := NewMasterKey(testSeed(t))
	if err != nil {
		t.Fatalf("NewMasterKey() error: %v", err)
	}

	for _, index := range []uint32{0, 1, 44, FirstHardened - 1} {
		if _, err := master.Child(index); err == nil {
			t.Errorf("Child(%d) should reject non-hardened index", index)
		}
	}
}

func TestChild_HardenedOK(t *testing.T) {
	master, err := NewMasterKey(testSeed(t))
	if err != nil {
		t.Fatalf("NewMasterKey() error: %v", err)
	}

	child, err := master.Child(FirstHardened)
	if err != nil {
		t.Fatalf("Child() error: %v", err)
	}
	if len(child.Key) != KeySize || len(child.ChainCode) != KeySize {
		t.Errorf("child key sizes = (%d, %d), want (%d, %d)",
			len(child.Key), len(child.ChainCode), KeySize, KeySize)
	}
	if bytes.Equal(child.Key, master.Key) {
		t.Error("child key should differ from parent key")
	}
}

func TestChild_InvalidParent(t *testing.T) {
	bad := ExtendedKey{Key: make([]byte, 16), ChainCode: make([]byte, 32)}
	if _, err := bad.Child(FirstHardened); err == nil {
		t.Error("expected error for short parent key")
	}

	bad = ExtendedKey{Key: make([]byte, 32), ChainCode: make([]byte, 16)}
	if _, err := bad.Child(FirstHardened); err == nil {
		t.Error("expected error for short chain code")
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    []uint32
		wantErr bool
	}{
		{"account path", "m/44'/148'/0'", []uint32{44, 148, 0}, false},
		{"two levels", "m/44'/148'", []uint32{44, 148}, false},
		{"root only", "m", []uint32{}, false},
		{"no apostrophes", "m/44/148/7", []uint32{44, 148, 7}, false},
		{"max 31-bit index", "m/2147483647'", []uint32{2147483647}, false},
		{"index needs 32 bits", "m/2147483648'", nil, true},
		{"missing root", "44'/148'", nil, true},
		{"empty segment", "m//148'", nil, true},
		{"non-numeric", "m/44'/abc'", nil, true},
		{"negative", "m/-44'", nil, true},
		{"empty string", "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParsePath(%q) should fail", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePath(%q) error: %v", tt.path, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParsePath(%q) = %v, want %v", tt.path, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParsePath(%q)[%d] = %d, want %d", tt.path, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtendedKey_Zero(t *testing.T) {
	master, err := NewMasterKey(testSeed(t))
	if err != nil {
		t.Fatalf("NewMasterKey() error: %v", err)
	}
	master.Zero()

	for _, b := range master.Key {
		if b != 0 {
			t.Fatal("Zero() should clear the private key")
		}
	}
	for _, b := range master.ChainCode {
		if b != 0 {
			t.Fatal("Zero() should clear the chain code")
		}
	}
}
