// Package errors defines the error types used across the XSTREAM
// construction. Construction-time errors are typed and specific, since
// they describe programmer mistakes (bad key length, calling a session
// after it finished) that carry no risk of being used as a decryption
// oracle. Segment-opening failures are different: every possible cause
// of an authentication failure during Open - wrong key, corrupted ciphertext, reordered or
// truncated segments, mismatched associated data - collapses into the
// single opaque XstreamError, so that a caller (and an attacker
// watching the caller) cannot distinguish them.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced during construction of keys, KDF inputs,
// and sessions. These are safe to branch on: none of them can leak
// information useful to a decryption oracle.
var (
	// ErrInvalidKeyLength indicates a key or shared-secret byte slice
	// was not exactly the expected length.
	ErrInvalidKeyLength = errors.New("xstream: invalid key length")

	// ErrNilKey indicates a required key argument was nil.
	ErrNilKey = errors.New("xstream: key is nil")

	// ErrKeyDestroyed indicates an operation was attempted on key
	// material that has already been wiped.
	ErrKeyDestroyed = errors.New("xstream: key material already destroyed")

	// ErrUnsupportedAlgorithm indicates an algorithm identifier does
	// not name one of the suites this module implements.
	ErrUnsupportedAlgorithm = errors.New("xstream: unsupported algorithm")

	// ErrAlreadyFinished indicates seal/open was called on a session
	// after its terminal segment was already produced or consumed.
	ErrAlreadyFinished = errors.New("xstream: session already finished")

	// ErrSegmentLimitExceeded indicates a session tried to seal or open
	// more non-terminal segments than the counter width allows.
	ErrSegmentLimitExceeded = errors.New("xstream: segment counter exhausted")

	// ErrBufferTooSmall indicates a caller-supplied in-place buffer did
	// not have enough capacity for the operation's output.
	ErrBufferTooSmall = errors.New("xstream: destination buffer too small")

	// ErrRandomSourceFailed indicates the CSPRNG failed to produce the
	// requested bytes. Treat this as a critical system failure.
	ErrRandomSourceFailed = errors.New("xstream: random source failed")

	// ErrSuiteNotFIPSApproved indicates an algorithm identifier was
	// resolved in a FIPS-mode build but names a suite that is not
	// FIPS-approved.
	ErrSuiteNotFIPSApproved = errors.New("xstream: suite is not FIPS approved")
)

// XstreamError is the single error value returned for every
// authentication failure while opening a sealed segment. It
// intentionally carries no information about which of the many
// possible causes applied. Opening on a finished or exhausted session,
// or into a too-small in-place buffer, returns the corresponding
// sentinel above instead.
//
// Callers must not attempt to distinguish causes of a decryption
// failure by inspecting or wrapping this error; doing so reintroduces
// exactly the oracle this type exists to prevent.
var XstreamError = errors.New("xstream: open failed")

// CryptoError wraps a lower-level construction error with the
// operation name that produced it, without revealing anything about
// segment contents.
type CryptoError struct {
	Op  string
	Err error
}

func (e *CryptoError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CryptoError) Unwrap() error {
	return e.Err
}

// NewCryptoError creates a new CryptoError.
func NewCryptoError(op string, err error) *CryptoError {
	return &CryptoError{Op: op, Err: err}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
