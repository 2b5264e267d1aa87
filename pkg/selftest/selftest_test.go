package selftest

import (
	"crypto/rand"
	"testing"

	"github.com/xstream-go/xstream/pkg/keys"
)

func TestRunPOSTPasses(t *testing.T) {
	result := RunPOST()
	if !result.Passed {
		t.Fatalf("RunPOST() did not pass: %v", result.Errors)
	}
	if !result.KDFPassed {
		t.Error("KDFPassed should be true")
	}
	if !result.AEADPassed {
		t.Error("AEADPassed should be true")
	}
}

func TestRunPOSTCached(t *testing.T) {
	first := RunPOST()
	second := RunPOST()
	if first != second {
		t.Error("RunPOST() should return the same cached result on repeated calls")
	}
}

func TestPairwiseConsistencyTestX25519(t *testing.T) {
	priv, err := keys.Generate(rand.Reader)
	if err != nil {
		t.Fatalf("keys.Generate() error = %v", err)
	}
	defer priv.Destroy()

	result := PairwiseConsistencyTestX25519(priv)
	if !result.Passed {
		t.Fatalf("pairwise consistency test failed: %v", result.Err)
	}
}

func TestPairwiseConsistencyTestRejectsDestroyedKey(t *testing.T) {
	priv, err := keys.Generate(rand.Reader)
	if err != nil {
		t.Fatalf("keys.Generate() error = %v", err)
	}
	priv.Destroy()

	result := PairwiseConsistencyTestX25519(priv)
	if result.Passed {
		t.Error("pairwise consistency test must fail on destroyed key material")
	}
}

func TestGenerateKeyWithCST(t *testing.T) {
	priv, err := GenerateKeyWithCST()
	if err != nil {
		t.Fatalf("GenerateKeyWithCST() error = %v", err)
	}
	defer priv.Destroy()
}
