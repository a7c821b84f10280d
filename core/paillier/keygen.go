package paillier

import (
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/mr-shifu/paillier-lib/core/math/arith"
	"github.com/mr-shifu/paillier-lib/core/math/prime"
	"github.com/mr-shifu/paillier-lib/core/math/sample"
	"github.com/mr-shifu/paillier-lib/core/pool"
)

var one = big.NewInt(1)

// KeyGen derives a fresh key pair from two distinct primes of exactly bits
// bits each, drawn from rand. When pl is non-nil the prime search runs on
// the pool's workers, in which case rand must be safe for concurrent use.
//
// Neither the prime search nor the generator search has a retry cap; both
// terminate with overwhelming probability. Callers needing bounded latency
// must abandon the call externally — no partial state is retained.
func KeyGen(rand io.Reader, bits int, pl *pool.Pool) (*SecretKey, *PublicKey, error) {
	p, q, err := generatePrimes(rand, bits, pl)
	if err != nil {
		return nil, nil, err
	}

	n := new(big.Int).Mul(p, q)
	pMinusOne := new(big.Int).Sub(p, one)
	qMinusOne := new(big.Int).Sub(q, one)

	// λ = (p−1)(q−1) / gcd(p−1, q−1) = lcm(p−1, q−1)
	lambda := new(big.Int).Mul(pMinusOne, qMinusOne)
	gcd := new(big.Int).GCD(nil, nil, pMinusOne, qMinusOne)
	lambda.Div(lambda, gcd)

	nMod := saferith.ModulusFromNat(new(saferith.Nat).SetBig(n, n.BitLen()))
	pNat := new(saferith.Nat).SetBig(p, p.BitLen())
	qNat := new(saferith.Nat).SetBig(q, q.BitLen())
	nSquared := arith.SquaredFromFactors(pNat, qNat)
	lambdaNat := new(saferith.Nat).SetBig(lambda, lambda.BitLen())

	// Search for a generator g ∈ ℤ²ₙˣ such that u = L(g^λ mod n²) is
	// invertible mod n. An unusable candidate is discarded silently; for
	// valid parameters this happens with near-zero probability.
	var g *saferith.Nat
	mu := new(big.Int)
	for {
		g = sample.UnitModN(rand, nSquared.Modulus)
		gLambda := nSquared.Exp(g, lambdaNat)
		u := new(big.Int).Sub(gLambda.Big(), one)
		u.Div(u, n)
		d, x, _ := arith.EGCD(u, n)
		if d.Cmp(one) == 0 {
			mu.Mod(x, n)
			break
		}
	}

	sk := &SecretKey{
		lambda:   lambdaNat,
		mu:       new(saferith.Nat).SetBig(mu, mu.BitLen()),
		n:        nMod,
		nSquared: nSquared,
	}
	pk := &PublicKey{
		n:        nMod,
		nNat:     nMod.Nat(),
		g:        g,
		nSquared: arith.ModulusFromN(nSquared.Modulus),
	}
	return sk, pk, nil
}

func generatePrimes(rand io.Reader, bits int, pl *pool.Pool) (p, q *big.Int, err error) {
	if bits < 2 {
		return nil, nil, prime.ErrBitLength
	}
	if pl == nil {
		return prime.Pair(rand, bits)
	}

	for {
		results := pl.Search(2, func() interface{} {
			candidate := sample.Odd(rand, bits)
			// candidates are positive, so the error path cannot trigger
			if ok, _ := prime.IsProbablyPrime(rand, candidate); ok {
				return candidate
			}
			return nil
		})
		p = results[0].(*big.Int)
		q = results[1].(*big.Int)
		if p.Cmp(q) != 0 {
			return p, q, nil
		}
	}
}
