// Package xstream implements the XSTREAM hybrid public-key streaming
// encryption construction: X25519 key agreement, HKDF-SHA-256 key
// derivation, and the STREAM construction layered over a
// misuse-resistant AEAD.
//
// # Quick Start
//
// Sealing a two-segment stream under a recipient's long-term public
// key, and opening it again with the matching private key:
//
//	import (
//		"crypto/rand"
//
//		"github.com/xstream-go/xstream/internal/constants"
//		"github.com/xstream-go/xstream/pkg/keys"
//		"github.com/xstream-go/xstream/pkg/xstream"
//	)
//
//	recipient, _ := keys.Generate(rand.Reader)
//	defer recipient.Destroy()
//	recipientPub, _ := recipient.Public()
//
//	enc, ephemeralPub, _ := xstream.NewEncryptor(rand.Reader, constants.AlgorithmAES128SIV, recipientPub, nil)
//	seg0, _ := enc.SealNext([]byte("ad-0"), []byte("hello, "))
//	seg1, _ := enc.SealLast([]byte("ad-1"), []byte("world!"))
//
//	dec, _ := xstream.NewDecryptor(constants.AlgorithmAES128SIV, recipient, ephemeralPub, nil)
//	pt0, _ := dec.OpenNext([]byte("ad-0"), seg0)
//	pt1, _ := dec.OpenLast([]byte("ad-1"), seg1)
//
// # Package Structure
//
//   - pkg/keys: X25519 key material with wipe-on-destroy private scalars
//   - pkg/kdf: HKDF-SHA-256 key derivation under a fixed domain label
//   - pkg/suite: binds algorithm identifiers to their AEAD collaborator
//   - pkg/xstream: the Encryptor/Decryptor state machines
//   - pkg/selftest: power-on and conditional self-tests
//   - internal/constants: bit-exact protocol parameters
//   - internal/errors: construction errors and the opaque decrypt error
//   - internal/csprng: CSPRNG access and constant-time comparison
//   - internal/fipsmode: build-tag switch between standard and FIPS mode
//
// # Security Properties
//
//   - Forward secrecy: a fresh ephemeral key pair is generated per session
//   - Misuse resistance: the AEAD is synthetic-IV based and deterministic
//   - Positional and terminal binding: reordering or retyping a segment
//     fails authentication
//   - Single opaque decrypt error: no failure-reason oracle is exposed
//
// # Testing
//
//	go test ./...
//
// # References
//
//   - RFC 7748: Elliptic Curves for Security (X25519)
//   - RFC 5869: HMAC-based Extract-and-Expand Key Derivation Function
//   - RFC 5297: Synthetic Initialization Vector (SIV) Authenticated Encryption
//   - Hoang, Reyhanitabar, Rogaway, Vizár (2015): Online Authenticated-Encryption
//     and its Nonce-Reuse Misuse-Resistance (the STREAM construction)
package xstreamgo
