// Package kdf derives XSTREAM's symmetric AEAD key from an X25519
// shared secret.
//
// derive_key is the one operation this package exposes: it feeds the
// raw Diffie-Hellman output through HKDF (RFC 5869), with the hash the
// caller selects (SHA-256 in the default profile), under a fixed
// domain-separation label, so that keys produced here can never
// collide with keys any other protocol might derive from the same
// shared secret.
package kdf

import (
	"hash"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/xstream-go/xstream/internal/constants"
	qerrors "github.com/xstream-go/xstream/internal/errors"
	"github.com/xstream-go/xstream/pkg/keys"
)

// Info is the domain-separation label HKDF's expand step is bound to.
// It MUST be used byte-for-byte; changing it silently re-derives
// different keys from the same shared secret.
var Info = []byte(constants.HKDFInfo)

// DeriveKey computes shared = X25519(private, public), runs it
// through HKDF.extract(salt, shared) / HKDF.expand(info, length), and
// returns the length-byte output. When salt is nil or empty, a zero
// block of newHash's output size is substituted, per the construction's
// fixed-constants table.
//
// The raw shared secret is wiped before DeriveKey returns, win or
// lose; it never escapes this call.
func DeriveKey(private *keys.PrivateKey, public *keys.PublicKey, salt []byte, length int, newHash func() hash.Hash) ([]byte, error) {
	if newHash == nil {
		return nil, qerrors.NewCryptoError("kdf.DeriveKey", qerrors.ErrNilKey)
	}

	shared, err := keys.X25519(private, public)
	if err != nil {
		return nil, qerrors.NewCryptoError("kdf.DeriveKey", err)
	}
	defer wipe(shared)

	effectiveSalt := salt
	if len(effectiveSalt) == 0 {
		effectiveSalt = make([]byte, newHash().Size())
	}

	reader := hkdf.New(newHash, shared, effectiveSalt, Info)
	output := make([]byte, length)
	if _, err := io.ReadFull(reader, output); err != nil {
		return nil, qerrors.NewCryptoError("kdf.DeriveKey", err)
	}

	return output, nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
