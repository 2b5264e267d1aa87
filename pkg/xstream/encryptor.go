// Package xstream implements the XSTREAM hybrid public-key streaming
// encryption construction: X25519 key agreement, HKDF-SHA-256 key
// derivation, and the STREAM construction (Hoang-Reyhanitabar-
// Rogaway-Vizar, 2015) layered over a misuse-resistant AEAD to turn one
// derived key into an authenticated, positionally and terminally bound
// sequence of ciphertext segments.
//
// Encryptor and Decryptor are linearly-owned, single-threaded state
// machines: exactly one terminal call (SealLast / OpenLast) is
// permitted per instance, after which every further call fails with
// ErrAlreadyFinished. Neither type is safe for concurrent use; distinct
// sessions are fully independent and share no state.
package xstream

import (
	"hash"
	"io"

	"github.com/xstream-go/xstream/internal/constants"
	qerrors "github.com/xstream-go/xstream/internal/errors"
	"github.com/xstream-go/xstream/pkg/kdf"
	"github.com/xstream-go/xstream/pkg/keys"
	"github.com/xstream-go/xstream/pkg/suite"
)

type sessionState int

const (
	stateReady sessionState = iota
	stateFinished
)

// Encryptor seals an ordered sequence of plaintext segments under a
// symmetric key derived once at construction time.
type Encryptor struct {
	aead      suite.AEAD
	counter   uint32
	state     sessionState
	exhausted bool
}

// NewEncryptor generates a fresh ephemeral X25519 key pair, performs
// Diffie-Hellman against recipientPublic, derives the session's
// symmetric key, and returns both the ready-to-use Encryptor and the
// ephemeral public key the caller must transmit alongside the
// ciphertext stream. salt may be nil.
//
// The ephemeral scalar and the derived symmetric key are wiped before
// this function returns; neither survives past this call frame.
//
// NewEncryptor uses HashSHA256, the construction's default derive_key
// profile. Use NewEncryptorWithHash to select the non-default profile.
func NewEncryptor(rand io.Reader, algorithm constants.Algorithm, recipientPublic *keys.PublicKey, salt []byte) (*Encryptor, *keys.PublicKey, error) {
	return NewEncryptorWithHash(rand, algorithm, recipientPublic, salt, HashSHA256)
}

// NewEncryptorWithHash is NewEncryptor with an explicit derive_key hash
// profile. newHash must match whatever NewDecryptorWithHash the peer
// uses, or key derivation silently disagrees and every Open call fails.
func NewEncryptorWithHash(rand io.Reader, algorithm constants.Algorithm, recipientPublic *keys.PublicKey, salt []byte, newHash func() hash.Hash) (*Encryptor, *keys.PublicKey, error) {
	s, err := suite.Lookup(algorithm)
	if err != nil {
		return nil, nil, err
	}

	ephemeral, err := keys.Generate(rand)
	if err != nil {
		return nil, nil, err
	}
	defer ephemeral.Destroy()

	ephemeralPublic, err := ephemeral.Public()
	if err != nil {
		return nil, nil, err
	}

	symmetricKey, err := kdf.DeriveKey(ephemeral, recipientPublic, salt, s.KeySize(), newHash)
	if err != nil {
		return nil, nil, err
	}
	defer wipe(symmetricKey)

	aead, err := s.New(symmetricKey)
	if err != nil {
		return nil, nil, err
	}

	return &Encryptor{aead: aead, state: stateReady}, ephemeralPublic, nil
}

// SealNext authenticates ad and encrypts plaintext as a non-terminal
// segment, advancing the session's counter.
func (e *Encryptor) SealNext(ad, plaintext []byte) ([]byte, error) {
	nonce, err := e.advance(false)
	if err != nil {
		return nil, err
	}
	ciphertext, err := e.aead.Seal(plaintext, combineAssociatedData(nonce, ad))
	if err != nil {
		return nil, err
	}
	e.advanceCounter()
	return ciphertext, nil
}

// SealLast authenticates ad and encrypts plaintext as the terminal
// segment, consuming the Encryptor. No further calls on this instance
// are valid after SealLast, whether or not it succeeds.
func (e *Encryptor) SealLast(ad, plaintext []byte) ([]byte, error) {
	nonce, err := e.advance(true)
	if err != nil {
		return nil, err
	}
	e.state = stateFinished
	ciphertext, err := e.aead.Seal(plaintext, combineAssociatedData(nonce, ad))
	if err != nil {
		return nil, err
	}
	return ciphertext, nil
}

// SealNextInPlace writes the non-terminal segment's ciphertext into
// dst, which must have length at least len(plaintext)+e.Overhead(),
// and returns the number of bytes written.
func (e *Encryptor) SealNextInPlace(dst, ad, plaintext []byte) (int, error) {
	return e.sealInPlace(dst, ad, plaintext, false)
}

// SealLastInPlace writes the terminal segment's ciphertext into dst
// and consumes the Encryptor.
func (e *Encryptor) SealLastInPlace(dst, ad, plaintext []byte) (int, error) {
	return e.sealInPlace(dst, ad, plaintext, true)
}

func (e *Encryptor) sealInPlace(dst, ad, plaintext []byte, terminal bool) (int, error) {
	if len(dst) < len(plaintext)+e.Overhead() {
		return 0, qerrors.ErrBufferTooSmall
	}
	nonce, err := e.advance(terminal)
	if err != nil {
		return 0, err
	}
	if terminal {
		e.state = stateFinished
	}
	ciphertext, err := e.aead.Seal(plaintext, combineAssociatedData(nonce, ad))
	if err != nil {
		return 0, err
	}
	if !terminal {
		e.advanceCounter()
	}
	return copy(dst, ciphertext), nil
}

// advance validates the session is still open and the counter has
// room, then builds the nonce for the segment about to be sealed. It
// does not mutate e.counter or e.state. Callers advance the counter
// only after a non-terminal seal has succeeded; a terminal seal marks
// the session finished before sealing, so the Encryptor is consumed
// whether or not that seal succeeds.
func (e *Encryptor) advance(terminal bool) ([]byte, error) {
	if e.state == stateFinished {
		return nil, qerrors.ErrAlreadyFinished
	}
	if e.exhausted {
		return nil, qerrors.ErrSegmentLimitExceeded
	}
	return buildNonce(e.counter, terminal), nil
}

// advanceCounter moves the counter past the segment just sealed. The
// counter is a 32-bit field (constants.StreamCounterSize): once it has
// been used at its maximum value, incrementing it would wrap to 0 and
// reuse a nonce under the same key, so the session is marked exhausted
// instead, rejecting every subsequent non-terminal seal.
func (e *Encryptor) advanceCounter() {
	if e.counter == constants.MaxSegmentCounter {
		e.exhausted = true
		return
	}
	e.counter++
}

// Overhead returns the number of bytes a sealed segment adds beyond
// its plaintext length.
func (e *Encryptor) Overhead() int { return e.aead.Overhead() }

// Finished reports whether SealLast has already been called.
func (e *Encryptor) Finished() bool { return e.state == stateFinished }

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
