// Package keys implements X25519 (RFC 7748) key material for XSTREAM.
//
// Mathematical Foundation:
//
// Curve25519 is a Montgomery curve defined by: y² = x³ + 486662x² + x
// over the prime field F_p where p = 2²⁵⁵ - 19. The group operation
// uses x-coordinate-only arithmetic (Montgomery ladder), which gives
// constant-time execution and resistance to timing attacks.
//
// Unlike crypto/ecdh.PrivateKey, the private scalar here is stored as
// a plain [32]byte the package owns outright, so it can be wiped with
// Destroy when the key is no longer needed. XSTREAM's ephemeral keys
// live only for the duration of Encryptor construction and are
// destroyed there as soon as their shared secret is computed; a
// long-term recipient key is destroyed by its owner once it is no
// longer needed.
package keys

import (
	"io"

	"golang.org/x/crypto/curve25519"

	"github.com/xstream-go/xstream/internal/constants"
	"github.com/xstream-go/xstream/internal/csprng"
	qerrors "github.com/xstream-go/xstream/internal/errors"
)

// PrivateKey is an X25519 private scalar. The zero value is not a
// valid key; construct one with Generate or PrivateKeyFromBytes.
type PrivateKey struct {
	scalar    [constants.X25519KeySize]byte
	destroyed bool
}

// PublicKey is an X25519 public point (a Curve25519 u-coordinate).
type PublicKey struct {
	point [constants.X25519KeySize]byte
}

// Generate draws a fresh private scalar from rand. The caller owns the
// returned key and must call Destroy on it once its shared secret has
// been computed.
func Generate(rand io.Reader) (*PrivateKey, error) {
	priv := &PrivateKey{}
	if _, err := io.ReadFull(rand, priv.scalar[:]); err != nil {
		return nil, qerrors.NewCryptoError("keys.Generate", err)
	}
	return priv, nil
}

// PrivateKeyFromBytes builds a private key from a raw 32-byte scalar.
// The same bytes always yield the same key pair.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != constants.X25519KeySize {
		return nil, qerrors.ErrInvalidKeyLength
	}
	priv := &PrivateKey{}
	copy(priv.scalar[:], b)
	return priv, nil
}

// PublicKeyFromBytes builds a public key from its raw 32-byte encoding.
// It accepts any 32 bytes: it does not check that the point is on the
// curve or of large order. A low-order point is rejected later, by
// X25519, because it yields an all-zero shared secret.
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != constants.X25519KeySize {
		return nil, qerrors.ErrInvalidKeyLength
	}
	pub := &PublicKey{}
	copy(pub.point[:], b)
	return pub, nil
}

// Public computes the public key corresponding to k.
func (k *PrivateKey) Public() (*PublicKey, error) {
	if k.destroyed {
		return nil, qerrors.ErrKeyDestroyed
	}
	point, err := curve25519.X25519(k.scalar[:], curve25519.Basepoint)
	if err != nil {
		return nil, qerrors.NewCryptoError("keys.PrivateKey.Public", err)
	}
	pub := &PublicKey{}
	copy(pub.point[:], point)
	return pub, nil
}

// Bytes returns a copy of the raw private scalar. The caller is
// responsible for wiping the returned slice when done with it.
func (k *PrivateKey) Bytes() ([]byte, error) {
	if k.destroyed {
		return nil, qerrors.ErrKeyDestroyed
	}
	out := make([]byte, constants.X25519KeySize)
	copy(out, k.scalar[:])
	return out, nil
}

// Destroy wipes the private scalar. It is safe to call more than once.
func (k *PrivateKey) Destroy() {
	csprng.Wipe(k.scalar[:])
	k.destroyed = true
}

// Destroyed reports whether Destroy has already been called.
func (k *PrivateKey) Destroyed() bool {
	return k.destroyed
}

// Bytes returns a copy of the raw public point.
func (p *PublicKey) Bytes() []byte {
	out := make([]byte, constants.X25519KeySize)
	copy(out, p.point[:])
	return out
}

// X25519 computes the Diffie-Hellman shared secret between priv and
// peerPublic. The result is raw DH output, not a key: callers must
// always run it through the KDF before using it for anything.
//
// The peer's point is not validated here. curve25519.X25519 returns an
// error when the shared secret is all zero, which is what a low-order
// peer point produces, so such a point fails with an error rather than
// yielding a predictable secret.
func X25519(priv *PrivateKey, peerPublic *PublicKey) ([]byte, error) {
	if priv == nil {
		return nil, qerrors.ErrNilKey
	}
	if priv.destroyed {
		return nil, qerrors.ErrKeyDestroyed
	}
	if peerPublic == nil {
		return nil, qerrors.ErrNilKey
	}

	shared, err := curve25519.X25519(priv.scalar[:], peerPublic.point[:])
	if err != nil {
		return nil, qerrors.NewCryptoError("keys.X25519", err)
	}
	return shared, nil
}
