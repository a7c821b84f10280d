package paillier

import (
	"crypto/sha256"
	"errors"
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/fxamacker/cbor/v2"
	pailliercore "github.com/mr-shifu/paillier-lib/core/paillier"
	cs_paillier "github.com/mr-shifu/paillier-lib/pkg/common/cryptosuite/paillier"
)

var (
	ErrNotPrivate = errors.New("paillier: key has no secret part")
)

type PaillierKey struct {
	secretKey *pailliercore.SecretKey
	publicKey *pailliercore.PublicKey
}

var _ cs_paillier.PaillierKey = (*PaillierKey)(nil)

type rawPaillierKey struct {
	N      []byte
	G      []byte
	Lambda []byte
	Mu     []byte
}

// Bytes returns the cbor encoding of the key. Lambda and Mu are present only
// when the key contains the secret part.
func (k *PaillierKey) Bytes() ([]byte, error) {
	raw := &rawPaillierKey{}

	nb, err := k.publicKey.N().MarshalBinary()
	if err != nil {
		return nil, err
	}
	raw.N = nb
	raw.G = k.publicKey.G().Bytes()

	if k.Private() {
		raw.Lambda = k.secretKey.Lambda().Bytes()
		raw.Mu = k.secretKey.Mu().Bytes()
	}

	return cbor.Marshal(raw)
}

// SKI returns the Subject Key Identifier of the key derived from the public
// modulus n.
func (k *PaillierKey) SKI() []byte {
	nb := k.publicKey.N().Bytes()
	hash := sha256.New()
	hash.Write(nb)
	return hash.Sum(nil)
}

// Private returns true if the key contains the secret part.
func (k *PaillierKey) Private() bool {
	return k.secretKey != nil
}

// PublicKey returns the public part of the key.
func (k *PaillierKey) PublicKey() cs_paillier.PaillierKey {
	return &PaillierKey{nil, k.publicKey}
}

// ParamN returns the public modulus n.
func (k *PaillierKey) ParamN() *saferith.Modulus {
	return k.publicKey.N()
}

func (k *PaillierKey) Encrypt(rand io.Reader, m *big.Int) (*pailliercore.Ciphertext, error) {
	return pailliercore.Encrypt(rand, k.publicKey, m)
}

func (k *PaillierKey) EncryptWithNonce(m *big.Int, nonce *saferith.Nat) (*pailliercore.Ciphertext, error) {
	return pailliercore.EncryptWithNonce(k.publicKey, m, nonce)
}

func (k *PaillierKey) Decrypt(ct *pailliercore.Ciphertext) (*pailliercore.Plaintext, error) {
	if !k.Private() {
		return nil, ErrNotPrivate
	}
	return pailliercore.Decrypt(k.secretKey, k.publicKey, ct)
}

func (k *PaillierKey) Add(c, d *pailliercore.Ciphertext) (*pailliercore.Ciphertext, error) {
	return pailliercore.Add(k.publicKey, c, d)
}

func (k *PaillierKey) Mul(c *pailliercore.Ciphertext, s *big.Int) (*pailliercore.Ciphertext, error) {
	return pailliercore.Mul(k.publicKey, c, s)
}

// fromBytes returns a Paillier key from its cbor encoding.
func fromBytes(data []byte) (*PaillierKey, error) {
	raw := &rawPaillierKey{}
	if err := cbor.Unmarshal(data, raw); err != nil {
		return nil, err
	}

	n := new(saferith.Modulus)
	if err := n.UnmarshalBinary(raw.N); err != nil {
		return nil, err
	}
	g := new(saferith.Nat).SetBytes(raw.G)
	pk := pailliercore.NewPublicKey(n, g)

	if len(raw.Lambda) == 0 {
		return &PaillierKey{publicKey: pk}, nil
	}

	lambda := new(saferith.Nat).SetBytes(raw.Lambda)
	mu := new(saferith.Nat).SetBytes(raw.Mu)
	sk := pailliercore.NewSecretKey(lambda, mu, n)

	return &PaillierKey{sk, pk}, nil
}
