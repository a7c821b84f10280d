package paillier

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/mr-shifu/paillier-lib/core/math/arith"
)

// Every value handled by the cryptosystem carries a nominal role. The types
// below enforce the roles at compile time; in addition every operation
// validates its arguments before computing anything and reports a violation
// with an error wrapping ErrTypeMismatch.
var (
	ErrTypeMismatch  = errors.New("paillier: type mismatch")
	ErrNotPublicKey  = fmt.Errorf("%w: operation requires a public key", ErrTypeMismatch)
	ErrNotSecretKey  = fmt.Errorf("%w: decryption requires a secret key", ErrTypeMismatch)
	ErrNotCiphertext = fmt.Errorf("%w: operand is not a ciphertext", ErrTypeMismatch)
	ErrNotPlaintext  = fmt.Errorf("%w: plaintext must be an integer", ErrTypeMismatch)
	ErrNotScalar     = fmt.Errorf("%w: scalar must be an integer", ErrTypeMismatch)

	ErrInvalidNonce = errors.New("paillier: nonce must be a unit modulo n")
)

// PublicKey is the Paillier encryption key (n, g), with the modulus n² cached.
type PublicKey struct {
	n        *saferith.Modulus
	nNat     *saferith.Nat
	g        *saferith.Nat
	nSquared *arith.Modulus
}

// NewPublicKey builds a public key from the modulus n and the generator g.
func NewPublicKey(n *saferith.Modulus, g *saferith.Nat) *PublicKey {
	nNat := n.Nat()
	nSquared := new(saferith.Nat).Mul(nNat, nNat, -1)
	return &PublicKey{
		n:        n,
		nNat:     nNat,
		g:        g,
		nSquared: arith.ModulusFromN(saferith.ModulusFromNat(nSquared)),
	}
}

// N returns the public modulus n.
func (pk *PublicKey) N() *saferith.Modulus { return pk.n }

// G returns the generator g.
func (pk *PublicKey) G() *saferith.Nat { return pk.g }

func (pk *PublicKey) validate() error {
	if pk == nil || pk.n == nil || pk.nNat == nil || pk.g == nil || pk.nSquared == nil {
		return ErrNotPublicKey
	}
	return nil
}

// SecretKey is the Paillier decryption key (λ, μ). A key produced by KeyGen
// additionally caches the factored modulus n² so decryption exponentiates
// mod p² and q² separately; the factors never leave the key.
//
// A secret key is only valid together with the public key generated with it.
// The pairing is not bound cryptographically: decrypting with a mismatched
// pair silently yields a wrong result.
type SecretKey struct {
	lambda   *saferith.Nat
	mu       *saferith.Nat
	n        *saferith.Modulus
	nSquared *arith.Modulus
}

// NewSecretKey rebuilds a secret key from λ, μ and the public modulus n.
// Keys restored this way exponentiate mod n² directly, without the CRT
// acceleration available to freshly generated keys.
func NewSecretKey(lambda, mu *saferith.Nat, n *saferith.Modulus) *SecretKey {
	nNat := n.Nat()
	nSquared := new(saferith.Nat).Mul(nNat, nNat, -1)
	return &SecretKey{
		lambda:   lambda,
		mu:       mu,
		n:        n,
		nSquared: arith.ModulusFromN(saferith.ModulusFromNat(nSquared)),
	}
}

// Lambda returns the private exponent λ = lcm(p−1, q−1).
func (sk *SecretKey) Lambda() *saferith.Nat { return sk.lambda }

// Mu returns μ, the inverse of L(g^λ mod n²) modulo n.
func (sk *SecretKey) Mu() *saferith.Nat { return sk.mu }

// N returns the public modulus the key decrypts under.
func (sk *SecretKey) N() *saferith.Modulus { return sk.n }

func (sk *SecretKey) validate() error {
	if sk == nil || sk.lambda == nil || sk.mu == nil || sk.n == nil || sk.nSquared == nil {
		return ErrNotSecretKey
	}
	return nil
}

// Ciphertext is an integer in [0, n²). It is only meaningful together with
// the public key it was produced under; combining ciphertexts from different
// keys silently yields wrong results.
type Ciphertext struct {
	c *saferith.Nat
}

// Nat returns the ciphertext value.
func (ct *Ciphertext) Nat() *saferith.Nat { return ct.c }

func (ct *Ciphertext) validate() error {
	if ct == nil || ct.c == nil {
		return ErrNotCiphertext
	}
	return nil
}

// Plaintext is an integer conceptually in [0, n); the modulus is supplied by
// whichever public key the caller pairs it with.
type Plaintext struct {
	m *big.Int
}

// Big returns the plaintext value.
func (pt *Plaintext) Big() *big.Int { return pt.m }
