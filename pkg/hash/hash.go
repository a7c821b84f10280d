package hash

import (
	"fmt"
	"io"
	"math/big"

	"github.com/zeebo/blake3"
)

const DigestLengthBytes = 32

// Hash is a domain-separated extendable-output hash built on blake3.
// Digest exposes the output as a stream; tests use such streams as seeded
// stand-ins for the secure random source.
type Hash struct {
	h *blake3.Hasher
}

// New creates a Hash whose state is initialized with the domain string.
func New(domain string) *Hash {
	hash := &Hash{h: blake3.New()}
	_, _ = hash.h.WriteString(domain)
	return hash
}

// WriteAny writes byte slices, strings and big integers into the hash state.
func (hash *Hash) WriteAny(data ...interface{}) error {
	for _, d := range data {
		switch v := d.(type) {
		case []byte:
			_, _ = hash.h.Write(v)
		case string:
			_, _ = hash.h.WriteString(v)
		case *big.Int:
			if v == nil {
				return fmt.Errorf("hash: nil big.Int")
			}
			_, _ = hash.h.Write(v.Bytes())
		default:
			return fmt.Errorf("hash: unsupported type %T", d)
		}
	}
	return nil
}

// Digest returns a reader for the current output of the function. This
// finalizes the current state; the stream has no length limit.
func (hash *Hash) Digest() io.Reader {
	return hash.h.Digest()
}

// Sum returns a slice of length DigestLengthBytes resulting from the current
// hash state.
func (hash *Hash) Sum() []byte {
	out := make([]byte, DigestLengthBytes)
	if _, err := io.ReadFull(hash.Digest(), out); err != nil {
		panic(fmt.Sprintf("hash: internal hash failure: %v", err))
	}
	return out
}
