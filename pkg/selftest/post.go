// Package selftest implements FIPS 140-3 style self-tests for XSTREAM:
// a Power-On Self-Test (POST) that runs once, on the first call to
// RunPOST, and a Conditional Self-Test (CST) that runs per newly
// generated key pair.
//
// Unlike a textbook FIPS module, XSTREAM has no fixed, externally
// published known-answer vector to embed here - the construction's own
// test vectors are keyed to a specific ephemeral scalar and recipient
// key pair, and this module embeds none of them. POST therefore verifies
// self-consistency of the KDF and AEAD collaborators instead of
// checking output against a hardcoded answer: it derives a key twice
// from the same fixed (non-secret) test scalar and confirms the two
// runs agree and are non-trivial, then seals and reopens a test
// segment through the AEAD collaborator directly.
package selftest

import (
	"bytes"
	"crypto/sha256"
	"sync"

	"github.com/xstream-go/xstream/internal/constants"
	"github.com/xstream-go/xstream/internal/fipsmode"
	"github.com/xstream-go/xstream/pkg/kdf"
	"github.com/xstream-go/xstream/pkg/keys"
	"github.com/xstream-go/xstream/pkg/suite"
)

// POSTResult reports the outcome of RunPOST.
type POSTResult struct {
	Passed    bool
	KDFPassed bool
	AEADPassed bool
	Errors    []string
}

var (
	postResult *POSTResult
	postOnce   sync.Once
)

// postSeed is a fixed, non-secret 32-byte scalar used only to exercise
// the KDF/AEAD collaborators at self-test time; it never touches real
// key material.
var postSeed = [constants.X25519KeySize]byte{
	0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10,
	0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18,
	0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f, 0x20,
}

// RunPOST runs the Power-On Self-Test once and returns its cached
// result on every call thereafter. In FIPS mode, a failure panics
// rather than letting the process continue with an unverified
// cryptographic stack.
func RunPOST() *POSTResult {
	postOnce.Do(func() {
		result := &POSTResult{Passed: true}

		if err := runKDFSelfCheck(); err != nil {
			result.Passed = false
			result.Errors = append(result.Errors, "KDF self-check: "+err.Error())
		} else {
			result.KDFPassed = true
		}

		if err := runAEADSelfCheck(); err != nil {
			result.Passed = false
			result.Errors = append(result.Errors, "AEAD self-check: "+err.Error())
		} else {
			result.AEADPassed = true
		}

		postResult = result

		if fipsmode.Enabled() && !result.Passed {
			panic("xstream: FIPS power-on self-test failed: " + joinErrors(result.Errors))
		}
	})
	return postResult
}

func runKDFSelfCheck() error {
	priv, err := keys.PrivateKeyFromBytes(postSeed[:])
	if err != nil {
		return err
	}
	pub, err := priv.Public()
	if err != nil {
		return err
	}

	out1, err := kdf.DeriveKey(priv, pub, nil, 32, sha256.New)
	if err != nil {
		return err
	}
	out2, err := kdf.DeriveKey(priv, pub, nil, 32, sha256.New)
	if err != nil {
		return err
	}

	if !bytes.Equal(out1, out2) {
		return errString("KDF output not reproducible")
	}
	var zero [32]byte
	if bytes.Equal(out1, zero[:]) {
		return errString("KDF output is all zero")
	}
	return nil
}

func runAEADSelfCheck() error {
	s, err := suite.Lookup(constants.AlgorithmAES128SIV)
	if err != nil {
		return err
	}
	key := make([]byte, s.KeySize())
	aead, err := s.New(key)
	if err != nil {
		return err
	}

	plaintext := []byte("xstream-post-check")
	ad := []byte("post")
	ciphertext, err := aead.Seal(plaintext, ad)
	if err != nil {
		return err
	}
	recovered, err := aead.Open(ciphertext, ad)
	if err != nil {
		return err
	}
	if !bytes.Equal(recovered, plaintext) {
		return errString("AEAD round trip mismatch")
	}
	return nil
}

type selfCheckError string

func (e selfCheckError) Error() string { return string(e) }

func errString(s string) error { return selfCheckError(s) }

func joinErrors(errs []string) string {
	out := ""
	for i, e := range errs {
		if i > 0 {
			out += "; "
		}
		out += e
	}
	return out
}
