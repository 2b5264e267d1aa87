package xstream

import (
	"crypto/sha256"
	"hash"

	"golang.org/x/crypto/sha3"
)

// HashSHA256 selects HKDF-SHA-256 for derive_key, the construction's
// default profile.
func HashSHA256() hash.Hash { return sha256.New() }

// HashSHA3_256 selects HKDF-SHA3-256 for derive_key, the non-default
// profile, for deployments that prefer a sponge-based hash over
// Merkle-Damgard. No algorithm identifier in internal/constants names
// it; both peers must select it explicitly.
func HashSHA3_256() hash.Hash { return sha3.New256() }
