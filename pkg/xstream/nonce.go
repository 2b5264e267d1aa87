package xstream

import (
	"encoding/binary"

	"github.com/xstream-go/xstream/internal/constants"
)

// noncePrefix is the fixed 8-byte zero prefix every XSTREAM session
// uses. A fresh symmetric key is derived per session, so reusing a
// constant prefix across sessions is safe; the per-segment counter and
// terminal flag are what make each segment's nonce unique within one
// session. This is a required interoperability invariant, not a
// tunable.
var noncePrefix [constants.StreamNoncePrefixSize]byte

// buildNonce lays out prefix || counter (big-endian) || terminal flag.
func buildNonce(counter uint32, terminal bool) []byte {
	n := make([]byte, constants.StreamNonceSize)
	copy(n[:constants.StreamNoncePrefixSize], noncePrefix[:])
	binary.BigEndian.PutUint32(n[constants.StreamNoncePrefixSize:constants.StreamNoncePrefixSize+constants.StreamCounterSize], counter)
	if terminal {
		n[constants.StreamNonceSize-1] = 1
	}
	return n
}

// combineAssociatedData folds the STREAM nonce into the single
// associated-data string the underlying deterministic AEAD accepts,
// using the same length-prefixed multi-field encoding pattern used
// elsewhere in this codebase to bind several logical fields into one
// byte string. Binding the nonce this way is what gives each segment
// positional and terminal authentication even though the collaborator
// AEAD has no independent nonce input of its own.
func combineAssociatedData(nonce, callerAD []byte) []byte {
	buf := make([]byte, 4+len(nonce)+4+len(callerAD))
	off := 0
	binary.BigEndian.PutUint32(buf[off:off+4], uint32(len(nonce)))
	off += 4
	off += copy(buf[off:], nonce)
	binary.BigEndian.PutUint32(buf[off:off+4], uint32(len(callerAD)))
	off += 4
	copy(buf[off:], callerAD)
	return buf
}
