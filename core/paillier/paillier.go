// Package paillier implements the Paillier probabilistic public-key
// cryptosystem: key generation, encryption, decryption, and the homomorphic
// operations on ciphertexts (addition of plaintexts, multiplication of a
// plaintext by a scalar).
//
// All operations are pure and safe for concurrent use, provided the random
// source handed to Encrypt and KeyGen is itself safe for concurrent use.
package paillier

import (
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/mr-shifu/paillier-lib/core/math/sample"
)

// Encrypt encrypts m under pk with a fresh blinding factor drawn from rand,
// computing c = g^(m mod n) ⋅ rⁿ (mod n²). Encryption is probabilistic:
// repeated calls with the same plaintext return different ciphertexts.
func Encrypt(rand io.Reader, pk *PublicKey, m *big.Int) (*Ciphertext, error) {
	if err := pk.validate(); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotPlaintext
	}
	nonce := sample.UnitModN(rand, pk.n)
	return encryptWithNonce(pk, m, nonce), nil
}

// EncryptWithNonce encrypts m under pk with a caller-supplied blinding
// factor, which must be a unit modulo n. The result is deterministic in
// (pk, m, nonce).
func EncryptWithNonce(pk *PublicKey, m *big.Int, nonce *saferith.Nat) (*Ciphertext, error) {
	if err := pk.validate(); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotPlaintext
	}
	if nonce == nil || nonce.IsUnit(pk.n) != 1 {
		return nil, ErrInvalidNonce
	}
	return encryptWithNonce(pk, m, nonce), nil
}

func encryptWithNonce(pk *PublicKey, m *big.Int, nonce *saferith.Nat) *Ciphertext {
	mReduced := new(big.Int).Mod(m, pk.n.Big())
	mNat := new(saferith.Nat).SetBig(mReduced, mReduced.BitLen())

	gm := pk.nSquared.Exp(pk.g, mNat)
	rn := pk.nSquared.Exp(nonce, pk.nNat)
	c := gm.ModMul(gm, rn, pk.nSquared.Modulus)
	return &Ciphertext{c: c}
}

// Decrypt recovers the plaintext of ct as L(c^λ mod n²) ⋅ μ (mod n), with
// L(x) = (x − 1) / n. The secret key must be the one generated together
// with pk; the pairing is a precondition, not checked here.
func Decrypt(sk *SecretKey, pk *PublicKey, ct *Ciphertext) (*Plaintext, error) {
	if err := sk.validate(); err != nil {
		return nil, err
	}
	if err := pk.validate(); err != nil {
		return nil, err
	}
	if err := ct.validate(); err != nil {
		return nil, err
	}

	n := pk.n.Big()
	cLambda := sk.nSquared.Exp(ct.c, sk.lambda)
	m := new(big.Int).Sub(cLambda.Big(), one)
	m.Div(m, n)
	m.Mul(m, sk.mu.Big())
	m.Mod(m, n)
	return &Plaintext{m: m}, nil
}

// Add returns the ciphertext (c ⋅ d) mod n², which decrypts to the sum
// mod n of the two plaintexts.
func Add(pk *PublicKey, c, d *Ciphertext) (*Ciphertext, error) {
	if err := pk.validate(); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	if err := d.validate(); err != nil {
		return nil, err
	}

	sum := new(saferith.Nat).ModMul(c.c, d.c, pk.nSquared.Modulus)
	return &Ciphertext{c: sum}, nil
}

// Mul returns the ciphertext c^s mod n², which decrypts to the product
// mod n of the plaintext and the scalar s. A negative scalar is applied
// through the modular inverse of c.
func Mul(pk *PublicKey, c *Ciphertext, s *big.Int) (*Ciphertext, error) {
	if err := pk.validate(); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, ErrNotScalar
	}

	e := new(saferith.Int).SetBig(s, s.BitLen())
	scaled := pk.nSquared.ExpI(c.c, e)
	return &Ciphertext{c: scaled}, nil
}
