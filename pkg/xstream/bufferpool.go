package xstream

import "sync"

// bufferPool supplies reusable ciphertext/plaintext buffers for the
// pooled Seal/Open variants, reducing allocation pressure in
// high-throughput streaming scenarios. Size classes mirror the shape
// of typical segment sizes rather than any fixed protocol limit.
type bufferPool struct {
	small  sync.Pool
	medium sync.Pool
	large  sync.Pool
}

const (
	smallBufferSize  = 1024
	mediumBufferSize = 16 * 1024
	largeBufferSize  = 64 * 1024
)

var globalBufferPool = newBufferPool()

func newBufferPool() *bufferPool {
	return &bufferPool{
		small: sync.Pool{New: func() any {
			buf := make([]byte, smallBufferSize)
			return &buf
		}},
		medium: sync.Pool{New: func() any {
			buf := make([]byte, mediumBufferSize)
			return &buf
		}},
		large: sync.Pool{New: func() any {
			buf := make([]byte, largeBufferSize)
			return &buf
		}},
	}
}

// get returns a buffer with length size, zeroed, drawn from the
// smallest size class that fits.
func (p *bufferPool) get(size int) []byte {
	if size <= 0 {
		return nil
	}

	var bufPtr *[]byte
	switch {
	case size <= smallBufferSize:
		bufPtr = p.small.Get().(*[]byte)
	case size <= mediumBufferSize:
		bufPtr = p.medium.Get().(*[]byte)
	case size <= largeBufferSize:
		bufPtr = p.large.Get().(*[]byte)
	default:
		return make([]byte, size)
	}

	buf := (*bufPtr)[:cap(*bufPtr)]
	for i := range buf {
		buf[i] = 0
	}
	return buf[:size]
}

// put wipes buf and, if its capacity matches a known size class,
// returns it to the pool. Buffers that may have held plaintext or
// ciphertext are always wiped before release, regardless of whether
// they end up pooled.
func (p *bufferPool) put(buf []byte) {
	if buf == nil {
		return
	}
	full := buf[:cap(buf)]
	for i := range full {
		full[i] = 0
	}

	switch cap(buf) {
	case smallBufferSize:
		p.small.Put(&full)
	case mediumBufferSize:
		p.medium.Put(&full)
	case largeBufferSize:
		p.large.Put(&full)
	}
}

// SealNextPooled behaves like SealNext but draws its output buffer
// from an internal pool. The caller must pass the returned buffer to
// ReleaseBuffer once done with it.
func (e *Encryptor) SealNextPooled(ad, plaintext []byte) ([]byte, error) {
	dst := globalBufferPool.get(len(plaintext) + e.Overhead())
	n, err := e.SealNextInPlace(dst, ad, plaintext)
	if err != nil {
		globalBufferPool.put(dst)
		return nil, err
	}
	return dst[:n], nil
}

// OpenNextPooled behaves like OpenNext but draws its output buffer
// from an internal pool. The caller must pass the returned buffer to
// ReleaseBuffer once done with it.
func (d *Decryptor) OpenNextPooled(ad, ciphertext []byte) ([]byte, error) {
	size := len(ciphertext) - d.Overhead()
	if size < 0 {
		size = 0
	}
	dst := globalBufferPool.get(size)
	n, err := d.OpenNextInPlace(dst, ad, ciphertext)
	if err != nil {
		globalBufferPool.put(dst)
		return nil, err
	}
	return dst[:n], nil
}

// ReleaseBuffer wipes buf and returns it to the shared pool.
func ReleaseBuffer(buf []byte) {
	globalBufferPool.put(buf)
}
