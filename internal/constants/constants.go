// Package constants defines fixed, bit-exact parameters for the XSTREAM
// hybrid public-key streaming encryption construction.
//
// These values must match byte-for-byte across independent XSTREAM
// implementations; changing any of them breaks interoperability and
// silently re-derives different keys from the same inputs.
package constants

// X25519 parameters (RFC 7748).
const (
	// X25519KeySize is the size in bytes of an X25519 private scalar or
	// compressed Montgomery-u public key.
	X25519KeySize = 32

	// X25519SharedSecretSize is the size in bytes of a raw X25519
	// Diffie-Hellman output, before it is fed into the KDF.
	X25519SharedSecretSize = 32
)

// HKDF parameters (RFC 5869).
const (
	// HKDFInfo is the domain-separation label passed as HKDF's "info"
	// parameter. It MUST be used byte-for-byte so that keys derived by
	// this construction cannot be confused with keys derived by any
	// other HKDF use of the same shared secret.
	HKDFInfo = "XSTREAM_X25519_HKDF"

	// SHA256OutputSize is the output size in bytes of SHA-256. Under the
	// default SHA-256 profile this is the length of the zero block
	// substituted for an absent salt; pkg/kdf takes that length from the
	// selected hash itself.
	SHA256OutputSize = 32
)

// STREAM parameters (Hoang-Reyhanitabar-Rogaway-Vizar, 2015).
const (
	// StreamNoncePrefixSize is the length in bytes of the STREAM nonce
	// prefix. XSTREAM fixes this prefix to all zero bytes because every
	// session derives a fresh, unique symmetric key; the per-segment
	// counter and terminal bit are what make each segment's internal
	// nonce unique.
	StreamNoncePrefixSize = 8

	// StreamCounterSize is the width in bytes of the monotonically
	// increasing segment counter folded into the per-segment nonce.
	StreamCounterSize = 4

	// StreamTerminalSize is the width in bytes of the terminal flag
	// folded into the per-segment nonce (0x00 for next, 0x01 for last).
	StreamTerminalSize = 1

	// StreamNonceSize is the total size of the internal per-segment
	// nonce: prefix || counter || terminal.
	StreamNonceSize = StreamNoncePrefixSize + StreamCounterSize + StreamTerminalSize

	// MaxSegmentCounter is the largest segment counter value the 32-bit
	// counter field can represent. Counters 0 through MaxSegmentCounter
	// allow MaxSegmentCounter+1 non-terminal segments per session; a
	// session needing more must start a fresh session with a new key
	// instead.
	MaxSegmentCounter = 1<<32 - 1
)

// Algorithm identifies one of the supported XSTREAM algorithm profiles.
// It binds an HKDF hash, a STREAM nonce discipline (fixed across
// profiles), and an AEAD collaborator with a declared key size.
type Algorithm string

const (
	// AlgorithmAES128SIV is the recommended XSTREAM profile: X25519 +
	// HKDF-SHA-256 + STREAM over AES-SIV (RFC 5297). pkg/suite binds it to
	// Tink's AES-SIV, which takes a 64-byte key (two AES-256 keys), so the
	// derived key and the ciphertexts are those of AES-256-SIV, not
	// AES-128-SIV.
	AlgorithmAES128SIV Algorithm = "XSTREAM_X25519_HKDF_SHA256_AES128_SIV"

	// AlgorithmAES128PMACSIV is the identifier of the PMAC-SIV variant of
	// the same construction. pkg/suite binds it to the same AES-SIV
	// collaborator as AlgorithmAES128SIV; no PMAC-based SIV is
	// implemented, so both identifiers produce identical ciphertexts for
	// identical inputs.
	AlgorithmAES128PMACSIV Algorithm = "XSTREAM_X25519_HKDF_SHA256_AES128_PMAC_SIV"
)

// String returns the algorithm's wire identifier.
func (a Algorithm) String() string { return string(a) }

// IsSupported reports whether a is one of the two XSTREAM profiles this
// module implements.
func (a Algorithm) IsSupported() bool {
	return a == AlgorithmAES128SIV || a == AlgorithmAES128PMACSIV
}
