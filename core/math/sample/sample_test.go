package sample

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/assert"
)

func TestBelow(t *testing.T) {
	bound := big.NewInt(1000)
	for i := 0; i < 100; i++ {
		n := Below(rand.Reader, bound)
		assert.True(t, n.Sign() >= 0)
		assert.True(t, n.Cmp(bound) < 0)
	}
}

func TestOdd(t *testing.T) {
	for _, bits := range []int{2, 8, 16, 64, 256} {
		for i := 0; i < 10; i++ {
			n := Odd(rand.Reader, bits)
			assert.Equal(t, bits, n.BitLen(), "bits=%d", bits)
			assert.Equal(t, uint(1), n.Bit(0), "bits=%d", bits)
		}
	}
}

func TestUnitModN(t *testing.T) {
	nBig := big.NewInt(15) // 3 ⋅ 5, so 7 of 15 residues are units
	n := saferith.ModulusFromNat(new(saferith.Nat).SetBig(nBig, nBig.BitLen()))
	for i := 0; i < 50; i++ {
		u := UnitModN(rand.Reader, n)
		uBig := u.Big()
		assert.True(t, uBig.Sign() > 0)
		assert.True(t, uBig.Cmp(nBig) < 0)
		assert.Equal(t, int64(1), new(big.Int).GCD(nil, nil, uBig, nBig).Int64())
	}
}
