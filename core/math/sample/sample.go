package sample

import (
	cryptorand "crypto/rand"
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/pkg/errors"
)

// maxIterations bounds rejection loops whose acceptance probability is close
// to one. Reaching the bound means the random source is broken, which is not
// a recoverable condition.
const maxIterations = 255

var ErrMaxIterations = errors.Errorf("sample: failed to draw after %d attempts", maxIterations)

func mustReadBits(rand io.Reader, buf []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return
		}
	}
	panic(ErrMaxIterations)
}

// Below returns a uniformly distributed integer in [0, bound).
// bound must be positive.
func Below(rand io.Reader, bound *big.Int) *big.Int {
	n, err := cryptorand.Int(rand, bound)
	if err != nil {
		panic(errors.WithMessage(err, "sample: failed to read from random source"))
	}
	return n
}

// Odd returns an odd integer occupying exactly bits bits, i.e. with both the
// most significant and the least significant bit set. bits must be at least 2.
func Odd(rand io.Reader, bits int) *big.Int {
	buf := make([]byte, (bits+7)/8)
	mustReadBits(rand, buf)
	n := new(big.Int).SetBytes(buf)
	excess := len(buf)*8 - bits
	n.Rsh(n, uint(excess))
	n.SetBit(n, bits-1, 1)
	n.SetBit(n, 0, 1)
	return n
}

// UnitModN returns a uniform unit u ∈ ℤₙˣ, i.e. u ∈ [1, n) with gcd(u, n) = 1.
func UnitModN(rand io.Reader, n *saferith.Modulus) *saferith.Nat {
	u := new(saferith.Nat)
	// sample 64 extra bits so the reduction mod n is statistically uniform
	buf := make([]byte, (n.BitLen()+7)/8+8)
	for i := 0; i < maxIterations; i++ {
		mustReadBits(rand, buf)
		u.SetBytes(buf)
		u.Mod(u, n)
		if u.IsUnit(n) == 1 {
			return u
		}
	}
	panic(ErrMaxIterations)
}
