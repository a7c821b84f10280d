package paillier

import (
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/mr-shifu/paillier-lib/core/paillier"
	"github.com/mr-shifu/paillier-lib/pkg/common/keyopts"
)

type PaillierKey interface {
	// Bytes returns the serialized key, including the secret part if present.
	Bytes() ([]byte, error)

	// SKI returns the Subject Key Identifier derived from the public modulus.
	SKI() []byte

	// Private returns true if the key contains the secret part.
	Private() bool

	// PublicKey returns the public part of the key.
	PublicKey() PaillierKey

	// ParamN returns the public modulus n.
	ParamN() *saferith.Modulus

	Encrypt(rand io.Reader, m *big.Int) (*paillier.Ciphertext, error)
	EncryptWithNonce(m *big.Int, nonce *saferith.Nat) (*paillier.Ciphertext, error)
	Decrypt(ct *paillier.Ciphertext) (*paillier.Plaintext, error)
	Add(c, d *paillier.Ciphertext) (*paillier.Ciphertext, error)
	Mul(c *paillier.Ciphertext, s *big.Int) (*paillier.Ciphertext, error)
}

type PaillierKeyManager interface {
	GenerateKey(opts keyopts.Options) (PaillierKey, error)
	ImportKey(data []byte, opts keyopts.Options) (PaillierKey, error)
	GetKey(opts keyopts.Options) (PaillierKey, error)

	Encrypt(m *big.Int, opts keyopts.Options) (*paillier.Ciphertext, error)
	Decrypt(ct *paillier.Ciphertext, opts keyopts.Options) (*paillier.Plaintext, error)
	Add(c, d *paillier.Ciphertext, opts keyopts.Options) (*paillier.Ciphertext, error)
	Mul(c *paillier.Ciphertext, s *big.Int, opts keyopts.Options) (*paillier.Ciphertext, error)
}
