// Package prime implements the probabilistic primality test and the prime
// pair search used by Paillier key generation.
package prime

import (
	"errors"
	"io"
	"math/big"

	"github.com/mr-shifu/paillier-lib/core/math/sample"
)

// MillerRabinRounds is the number of independent Miller–Rabin rounds. The
// false-negative probability of IsProbablyPrime is bounded by 4⁻⁸; callers
// rely on this exact bound, so the constant is never scaled with bit length.
const MillerRabinRounds = 8

var (
	ErrNonNegativeRequired = errors.New("prime: input must be a nonnegative integer")
	ErrBitLength           = errors.New("prime: bit length must be at least 2")
)

// smallPrimes is the trial-division set applied before Miller–Rabin.
var smallPrimes = [...]int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31}

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// IsProbablyPrime reports whether number is prime, with a false-negative
// probability of at most 4⁻⁸. Witnesses are drawn from rand; 0 and 1 are
// composite by definition, and a negative or nil input is rejected with
// ErrNonNegativeRequired.
func IsProbablyPrime(rand io.Reader, number *big.Int) (bool, error) {
	if number == nil || number.Sign() < 0 {
		return false, ErrNonNegativeRequired
	}
	if number.Cmp(two) < 0 {
		return false, nil
	}

	rem := new(big.Int)
	for _, p := range smallPrimes {
		sp := big.NewInt(p)
		if number.Cmp(sp) == 0 {
			return true, nil
		}
		if rem.Mod(number, sp).Sign() == 0 {
			return false, nil
		}
	}

	// number − 1 = 2^exponent ⋅ odd with odd odd
	odd := new(big.Int).Sub(number, one)
	exponent := 0
	for odd.Bit(0) == 0 {
		odd.Rsh(odd, 1)
		exponent++
	}

	nMinusOne := new(big.Int).Sub(number, one)
	// witnesses are drawn uniformly from [2, number−2]
	witnessRange := new(big.Int).Sub(number, three)
	x := new(big.Int)
	for round := 0; round < MillerRabinRounds; round++ {
		a := sample.Below(rand, witnessRange)
		a.Add(a, two)
		x.Exp(a, odd, number)
		if x.Cmp(one) == 0 {
			continue
		}
		composite := true
		for i := 0; i < exponent; i++ {
			if x.Cmp(nMinusOne) == 0 {
				composite = false
				break
			}
			x.Mul(x, x)
			x.Mod(x, number)
		}
		if composite {
			return false, nil
		}
	}

	return true, nil
}

// Find searches rejection-sampled odd candidates of exactly bits bits until
// one passes the primality test. It does not return until a prime is found;
// callers needing bounded latency must abandon the call externally.
func Find(rand io.Reader, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, ErrBitLength
	}
	for {
		candidate := sample.Odd(rand, bits)
		ok, err := IsProbablyPrime(rand, candidate)
		if err != nil {
			return nil, err
		}
		if ok {
			return candidate, nil
		}
	}
}

// Pair returns two distinct probable primes, each occupying exactly bits bits.
func Pair(rand io.Reader, bits int) (p, q *big.Int, err error) {
	p, err = Find(rand, bits)
	if err != nil {
		return nil, nil, err
	}
	for {
		q, err = Find(rand, bits)
		if err != nil {
			return nil, nil, err
		}
		if p.Cmp(q) != 0 {
			return p, q, nil
		}
	}
}
