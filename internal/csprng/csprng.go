// Package csprng provides cryptographically secure random byte
// generation and constant-time comparison, shared by every package
// that needs fresh entropy or needs to compare secrets safely.
//
// Security Note: All random number generation uses crypto/rand, which
// sources entropy from the operating system's CSPRNG.
package csprng

import (
	"crypto/rand"
	"crypto/subtle"
	"io"

	qerrors "github.com/xstream-go/xstream/internal/errors"
)

// Reader is an io.Reader that returns cryptographically secure random
// bytes. It is crypto/rand.Reader itself; Read wraps its errors in a
// CryptoError.
var Reader = rand.Reader

// Read fills b with cryptographically secure random bytes.
func Read(b []byte) error {
	if _, err := io.ReadFull(Reader, b); err != nil {
		return qerrors.NewCryptoError("csprng.Read", err)
	}
	return nil
}

// Bytes returns n cryptographically secure random bytes.
func Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if err := Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// MustRead fills b with cryptographically secure random bytes and
// panics if the system's CSPRNG fails, since that indicates a
// critical system failure with no safe recovery.
func MustRead(b []byte) {
	if err := Read(b); err != nil {
		panic("csprng: failed to read from CSPRNG: " + err.Error())
	}
}

// ConstantTimeCompare reports whether a and b are equal, in time that
// does not depend on where they first differ.
func ConstantTimeCompare(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Wipe overwrites b with zeros. Go has no destructors and the compiler
// may in principle elide a dead store to a slice that is never read
// again, so callers that need a hard erasure guarantee should keep
// using the zeroed slice (e.g. returning its length) after calling Wipe.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// WipeAll wipes every slice passed to it.
func WipeAll(slices ...[]byte) {
	for _, s := range slices {
		Wipe(s)
	}
}
