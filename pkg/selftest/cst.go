package selftest

import (
	"bytes"
	"crypto/rand"

	"github.com/xstream-go/xstream/internal/csprng"
	"github.com/xstream-go/xstream/internal/fipsmode"
	"github.com/xstream-go/xstream/pkg/keys"
)

// CSTResult reports the outcome of a pairwise consistency test.
type CSTResult struct {
	Passed bool
	Err    error
}

// PairwiseConsistencyTestX25519 verifies that priv is internally
// consistent by running Diffie-Hellman against a freshly generated
// throwaway key pair in both directions and checking the two sides
// agree on a non-zero shared secret.
func PairwiseConsistencyTestX25519(priv *keys.PrivateKey) *CSTResult {
	if priv == nil || priv.Destroyed() {
		return &CSTResult{Err: errString("invalid key pair")}
	}

	pub, err := priv.Public()
	if err != nil {
		return &CSTResult{Err: err}
	}

	probe, err := keys.Generate(rand.Reader)
	if err != nil {
		return &CSTResult{Err: err}
	}
	defer probe.Destroy()
	probePub, err := probe.Public()
	if err != nil {
		return &CSTResult{Err: err}
	}

	secret1, err := keys.X25519(priv, probePub)
	if err != nil {
		return &CSTResult{Err: err}
	}
	secret2, err := keys.X25519(probe, pub)
	if err != nil {
		return &CSTResult{Err: err}
	}

	if !csprng.ConstantTimeCompare(secret1, secret2) {
		return &CSTResult{Err: errString("shared secrets do not match")}
	}
	var zero [32]byte
	if bytes.Equal(secret1, zero[:]) {
		return &CSTResult{Err: errString("shared secret is all zero")}
	}

	return &CSTResult{Passed: true}
}

// CheckGeneratedKey runs the pairwise consistency test against a
// freshly generated private key and, in FIPS mode, panics on failure
// rather than returning key material that did not pass the check.
func CheckGeneratedKey(priv *keys.PrivateKey) error {
	result := PairwiseConsistencyTestX25519(priv)
	if result.Passed {
		return nil
	}
	if fipsmode.Enabled() {
		panic("xstream: FIPS pairwise consistency test failed: " + result.Err.Error())
	}
	return result.Err
}

// GenerateKeyWithCST generates a private key and runs the pairwise
// consistency test on it before returning.
func GenerateKeyWithCST() (*keys.PrivateKey, error) {
	priv, err := keys.Generate(rand.Reader)
	if err != nil {
		return nil, err
	}
	if err := CheckGeneratedKey(priv); err != nil {
		priv.Destroy()
		return nil, err
	}
	return priv, nil
}
