package kdf

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"testing"

	"github.com/xstream-go/xstream/pkg/keys"
)

func TestDeriveKeyAgreement(t *testing.T) {
	alice, err := keys.Generate(rand.Reader)
	if err != nil {
		t.Fatalf("keys.Generate() error = %v", err)
	}
	defer alice.Destroy()
	bob, err := keys.Generate(rand.Reader)
	if err != nil {
		t.Fatalf("keys.Generate() error = %v", err)
	}
	defer bob.Destroy()

	alicePub, err := alice.Public()
	if err != nil {
		t.Fatalf("Public() error = %v", err)
	}
	bobPub, err := bob.Public()
	if err != nil {
		t.Fatalf("Public() error = %v", err)
	}

	k1, err := DeriveKey(alice, bobPub, nil, 32, sha256.New)
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}
	k2, err := DeriveKey(bob, alicePub, nil, 32, sha256.New)
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}

	if !bytes.Equal(k1, k2) {
		t.Error("both sides must derive the same key from a shared secret")
	}
}

func TestDeriveKeyRequestedLength(t *testing.T) {
	priv, err := keys.Generate(rand.Reader)
	if err != nil {
		t.Fatalf("keys.Generate() error = %v", err)
	}
	defer priv.Destroy()
	pub, err := priv.Public()
	if err != nil {
		t.Fatalf("Public() error = %v", err)
	}

	for _, length := range []int{16, 32, 64} {
		out, err := DeriveKey(priv, pub, nil, length, sha256.New)
		if err != nil {
			t.Fatalf("DeriveKey(length=%d) error = %v", length, err)
		}
		if len(out) != length {
			t.Errorf("len(out) = %d, want %d", len(out), length)
		}
	}
}

func TestDeriveKeySaltChangesOutput(t *testing.T) {
	priv, err := keys.Generate(rand.Reader)
	if err != nil {
		t.Fatalf("keys.Generate() error = %v", err)
	}
	defer priv.Destroy()
	pub, err := priv.Public()
	if err != nil {
		t.Fatalf("Public() error = %v", err)
	}

	withoutSalt, err := DeriveKey(priv, pub, nil, 32, sha256.New)
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}
	withSalt, err := DeriveKey(priv, pub, []byte("a salt"), 32, sha256.New)
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}

	if bytes.Equal(withoutSalt, withSalt) {
		t.Error("a non-empty salt must change the derived key")
	}
}

func TestDeriveKeyEmptySaltMatchesNilSalt(t *testing.T) {
	priv, err := keys.Generate(rand.Reader)
	if err != nil {
		t.Fatalf("keys.Generate() error = %v", err)
	}
	defer priv.Destroy()
	pub, err := priv.Public()
	if err != nil {
		t.Fatalf("Public() error = %v", err)
	}

	nilSalt, err := DeriveKey(priv, pub, nil, 32, sha256.New)
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}
	emptySalt, err := DeriveKey(priv, pub, []byte{}, 32, sha256.New)
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}

	if !bytes.Equal(nilSalt, emptySalt) {
		t.Error("an absent salt and an empty salt must both substitute the zero block")
	}
}

func TestDeriveKeyDeterministic(t *testing.T) {
	priv, err := keys.Generate(rand.Reader)
	if err != nil {
		t.Fatalf("keys.Generate() error = %v", err)
	}
	defer priv.Destroy()
	pub, err := priv.Public()
	if err != nil {
		t.Fatalf("Public() error = %v", err)
	}

	out1, err := DeriveKey(priv, pub, []byte("fixed"), 32, sha256.New)
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}
	out2, err := DeriveKey(priv, pub, []byte("fixed"), 32, sha256.New)
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}

	if !bytes.Equal(out1, out2) {
		t.Error("DeriveKey must be a pure function of its inputs")
	}
}
