package xstream

import (
	"hash"

	"github.com/xstream-go/xstream/internal/constants"
	qerrors "github.com/xstream-go/xstream/internal/errors"
	"github.com/xstream-go/xstream/pkg/kdf"
	"github.com/xstream-go/xstream/pkg/keys"
	"github.com/xstream-go/xstream/pkg/suite"
)

// Decryptor opens an ordered sequence of ciphertext segments sealed by
// the corresponding Encryptor.
type Decryptor struct {
	aead      suite.AEAD
	counter   uint32
	state     sessionState
	exhausted bool
}

// NewDecryptor derives the session's symmetric key from recipientPrivate
// and the ephemeral public key received out-of-band alongside the
// ciphertext stream, then returns a ready-to-use Decryptor. salt must
// match whatever the Encryptor used, or every Open call will fail.
//
// recipientPrivate is borrowed, not retained: NewDecryptor never calls
// Destroy on it, since the caller may still need the same long-term
// key for other sessions.
//
// NewDecryptor uses HashSHA256, the construction's default derive_key
// profile. Use NewDecryptorWithHash to match an Encryptor built with
// NewEncryptorWithHash.
func NewDecryptor(algorithm constants.Algorithm, recipientPrivate *keys.PrivateKey, ephemeralPublic *keys.PublicKey, salt []byte) (*Decryptor, error) {
	return NewDecryptorWithHash(algorithm, recipientPrivate, ephemeralPublic, salt, HashSHA256)
}

// NewDecryptorWithHash is NewDecryptor with an explicit derive_key hash
// profile.
func NewDecryptorWithHash(algorithm constants.Algorithm, recipientPrivate *keys.PrivateKey, ephemeralPublic *keys.PublicKey, salt []byte, newHash func() hash.Hash) (*Decryptor, error) {
	s, err := suite.Lookup(algorithm)
	if err != nil {
		return nil, err
	}

	symmetricKey, err := kdf.DeriveKey(recipientPrivate, ephemeralPublic, salt, s.KeySize(), newHash)
	if err != nil {
		return nil, err
	}
	defer wipe(symmetricKey)

	aead, err := s.New(symmetricKey)
	if err != nil {
		return nil, err
	}

	return &Decryptor{aead: aead, state: stateReady}, nil
}

// OpenNext authenticates and decrypts a non-terminal segment. Any
// authentication failure - wrong key, corrupted ciphertext, a segment
// presented out of order, or one sealed with SealLast - returns
// errors.XstreamError and leaves the Decryptor unusable: the caller
// MUST NOT retry with a different buffer, since the internal counter's
// true value is now unknown.
func (d *Decryptor) OpenNext(ad, ciphertext []byte) ([]byte, error) {
	return d.open(ad, ciphertext, false)
}

// OpenLast authenticates and decrypts the terminal segment, consuming
// the Decryptor. Calling it on a non-terminal segment fails because
// the terminal bit in the expected nonce disagrees with the one used
// to seal the segment.
func (d *Decryptor) OpenLast(ad, ciphertext []byte) ([]byte, error) {
	return d.open(ad, ciphertext, true)
}

func (d *Decryptor) open(ad, ciphertext []byte, terminal bool) ([]byte, error) {
	if d.state == stateFinished {
		return nil, qerrors.ErrAlreadyFinished
	}
	if d.exhausted {
		return nil, qerrors.ErrSegmentLimitExceeded
	}

	nonce := buildNonce(d.counter, terminal)
	plaintext, err := d.aead.Open(ciphertext, combineAssociatedData(nonce, ad))
	if err != nil {
		d.state = stateFinished
		return nil, qerrors.XstreamError
	}

	if terminal {
		d.state = stateFinished
	} else {
		d.advanceCounter()
	}
	return plaintext, nil
}

// advanceCounter moves the counter past the segment just opened. See
// Encryptor.advanceCounter: once the counter has been used at its
// maximum value, incrementing it would wrap to 0 and accept a reused
// nonce under the same key, so the session is marked exhausted instead.
func (d *Decryptor) advanceCounter() {
	if d.counter == constants.MaxSegmentCounter {
		d.exhausted = true
		return
	}
	d.counter++
}

// OpenNextInPlace authenticates and decrypts a non-terminal segment
// into dst, which must be at least len(ciphertext)-d.Overhead() bytes
// long, and returns the number of plaintext bytes written. On failure
// dst is left untouched.
func (d *Decryptor) OpenNextInPlace(dst, ad, ciphertext []byte) (int, error) {
	return d.openInPlace(dst, ad, ciphertext, false)
}

// OpenLastInPlace authenticates and decrypts the terminal segment into
// dst, consuming the Decryptor.
func (d *Decryptor) OpenLastInPlace(dst, ad, ciphertext []byte) (int, error) {
	return d.openInPlace(dst, ad, ciphertext, true)
}

func (d *Decryptor) openInPlace(dst, ad, ciphertext []byte, terminal bool) (int, error) {
	needed := len(ciphertext) - d.Overhead()
	if needed < 0 {
		needed = 0
	}
	if len(dst) < needed {
		return 0, qerrors.ErrBufferTooSmall
	}

	plaintext, err := d.open(ad, ciphertext, terminal)
	if err != nil {
		return 0, err
	}
	return copy(dst, plaintext), nil
}

// Overhead returns the number of bytes a sealed segment adds beyond
// its plaintext length.
func (d *Decryptor) Overhead() int { return d.aead.Overhead() }

// Finished reports whether the terminal segment has already been
// opened, or whether any prior Open call failed authentication.
func (d *Decryptor) Finished() bool { return d.state == stateFinished }
