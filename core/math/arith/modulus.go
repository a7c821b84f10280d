package arith

import (
	"github.com/cronokirby/saferith"
)

// Modulus wraps a saferith.Modulus and enables faster modular exponentiation when
// a coprime factorization is known.
// When n = a⋅b with gcd(a, b) = 1, xᵉ (mod n) can be computed with only two
// exponentiations with a and b respectively.
type Modulus struct {
	// represents modulus n
	*saferith.Modulus
	// n = a⋅b
	a, b *saferith.Modulus
	// aInv = a⁻¹ (mod b)
	aNat, aInv *saferith.Nat
}

// ModulusFromN creates a simple wrapper around a given modulus n.
// The modulus is not copied.
func ModulusFromN(n *saferith.Modulus) *Modulus {
	return &Modulus{
		Modulus: n,
	}
}

// ModulusFromFactors creates the necessary cached values to accelerate
// exponentiation mod a⋅b. The factors must be coprime.
func ModulusFromFactors(a, b *saferith.Nat) *Modulus {
	nNat := new(saferith.Nat).Mul(a, b, -1)
	nMod := saferith.ModulusFromNat(nNat)
	aMod := saferith.ModulusFromNat(a)
	bMod := saferith.ModulusFromNat(b)
	aInvB := new(saferith.Nat).ModInverse(a, bMod)
	aNat := new(saferith.Nat).SetNat(a)
	return &Modulus{
		Modulus: nMod,
		a:       aMod,
		b:       bMod,
		aNat:    aNat,
		aInv:    aInvB,
	}
}

// SquaredFromFactors returns the modulus n² for n = p⋅q, caching p² and q²
// so that exponentiation mod n² runs on the two squares separately.
func SquaredFromFactors(p, q *saferith.Nat) *Modulus {
	pSquared := new(saferith.Nat).Mul(p, p, -1)
	qSquared := new(saferith.Nat).Mul(q, q, -1)
	return ModulusFromFactors(pSquared, qSquared)
}

// Exp is equivalent to (saferith.Nat).Exp(x, e, n.Modulus).
// It returns xᵉ (mod n).
func (n *Modulus) Exp(x, e *saferith.Nat) *saferith.Nat {
	if n.hasFactorization() {
		var xa, xb saferith.Nat
		xa.Exp(x, e, n.a) // x₁ = xᵉ (mod a)
		xb.Exp(x, e, n.b) // x₂ = xᵉ (mod b)
		// r = x₁ + a ⋅ [a⁻¹ (mod b)] ⋅ [x₂ - x₁] (mod n)
		r := xb.ModSub(&xb, &xa, n.Modulus)
		r.ModMul(r, n.aInv, n.Modulus)
		r.ModMul(r, n.aNat, n.Modulus)
		r.ModAdd(r, &xa, n.Modulus)
		return r
	}
	return new(saferith.Nat).Exp(x, e, n.Modulus)
}

// ExpI is equivalent to (saferith.Nat).ExpI(x, e, n.Modulus).
// It returns xᵉ (mod n), where a negative exponent is taken over the inverse of x.
func (n *Modulus) ExpI(x *saferith.Nat, e *saferith.Int) *saferith.Nat {
	if n.hasFactorization() {
		y := n.Exp(x, e.Abs())
		inverted := new(saferith.Nat).ModInverse(y, n.Modulus)
		y.CondAssign(e.IsNegative(), inverted)
		return y
	}
	return new(saferith.Nat).ExpI(x, e, n.Modulus)
}

func (n Modulus) hasFactorization() bool {
	return n.a != nil && n.b != nil && n.aNat != nil && n.aInv != nil
}
