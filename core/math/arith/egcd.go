package arith

import "math/big"

// EGCD computes the extended Euclidean algorithm for a and b, returning
// d = gcd(a, b) together with Bézout coefficients x, y such that
// a*x + b*y = d. When d == 1, x is the inverse of a modulo b (possibly
// negative; reduce it modulo b before use).
func EGCD(a, b *big.Int) (d, x, y *big.Int) {
	d = new(big.Int)
	x = new(big.Int)
	y = new(big.Int)
	d.GCD(x, y, a, b)
	return d, x, y
}
