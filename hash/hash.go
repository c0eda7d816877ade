// Package hash digests written image content, so repeated runs can be compared.
package hash

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/spaolacci/murmur3"
)

// Writer digests everything written to it
type Writer struct {
	mm3 murmur3.Hash128
	n   int
}

// NewWriter ...
func NewWriter() *Writer {
	return &Writer{mm3: murmur3.New128()}
}

func (w *Writer) Write(b []byte) (n int, err error) {
	n, err = w.mm3.Write(b)
	w.n += n
	return
}

// Len is the number of bytes written so far
func (w *Writer) Len() int {
	return w.n
}

// Sum returns the digest of the bytes written so far
func (w *Writer) Sum() string {
	h1, h2 := w.mm3.Sum128()
	return digest(h1, h2, w.n)
}

// Sum digests data in one call, equal to a Writer fed with data
func Sum(data []byte) string {
	h1, h2 := murmur3.Sum128(data)
	return digest(h1, h2, len(data))
}

// digest is the 128 bit hash followed by the 32 bit content length, in hex
func digest(h1, h2 uint64, n int) string {
	var b [20]byte
	binary.BigEndian.PutUint64(b[0:], h1)
	binary.BigEndian.PutUint64(b[8:], h2)
	binary.BigEndian.PutUint32(b[16:], uint32(n))
	return hex.EncodeToString(b[:])
}
