package paillier

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"

	"github.com/pkg/errors"

	pailliercore "github.com/mr-shifu/paillier-lib/core/paillier"
	"github.com/mr-shifu/paillier-lib/core/pool"
	cs_paillier "github.com/mr-shifu/paillier-lib/pkg/common/cryptosuite/paillier"
	"github.com/mr-shifu/paillier-lib/pkg/common/keyopts"
	"github.com/mr-shifu/paillier-lib/pkg/common/keystore"
)

// DefaultBitLength is the prime bit length used when no Config is supplied.
const DefaultBitLength = 1024

type Config struct {
	// BitLength is the exact bit length of each of the two primes.
	BitLength int
}

type PaillierKeyManager struct {
	keystore keystore.Keystore
	pl       *pool.Pool
	bits     int
}

var _ cs_paillier.PaillierKeyManager = (*PaillierKeyManager)(nil)

func NewPaillierKeyManager(store keystore.Keystore, pl *pool.Pool, cfg *Config) *PaillierKeyManager {
	bits := DefaultBitLength
	if cfg != nil && cfg.BitLength != 0 {
		bits = cfg.BitLength
	}
	return &PaillierKeyManager{
		keystore: store,
		pl:       pl,
		bits:     bits,
	}
}

// GenerateKey generates a new Paillier key pair and stores it under the ID
// carried by opts.
func (mgr *PaillierKeyManager) GenerateKey(opts keyopts.Options) (cs_paillier.PaillierKey, error) {
	sk, pk, err := pailliercore.KeyGen(rand.Reader, mgr.bits, mgr.pl)
	if err != nil {
		return nil, errors.WithMessage(err, "paillier: failed to generate key")
	}
	return mgr.importKey(&PaillierKey{sk, pk}, opts)
}

// ImportKey decodes a serialized key and stores it under the ID carried by opts.
func (mgr *PaillierKeyManager) ImportKey(data []byte, opts keyopts.Options) (cs_paillier.PaillierKey, error) {
	key, err := fromBytes(data)
	if err != nil {
		return nil, errors.WithMessage(err, "paillier: failed to decode key")
	}
	return mgr.importKey(key, opts)
}

// GetKey retrieves the key stored under the ID carried by opts.
func (mgr *PaillierKeyManager) GetKey(opts keyopts.Options) (cs_paillier.PaillierKey, error) {
	decoded, err := mgr.keystore.Get(opts)
	if err != nil {
		return nil, err
	}
	return fromBytes(decoded)
}

func (mgr *PaillierKeyManager) Encrypt(m *big.Int, opts keyopts.Options) (*pailliercore.Ciphertext, error) {
	key, err := mgr.GetKey(opts)
	if err != nil {
		return nil, err
	}
	return key.Encrypt(rand.Reader, m)
}

func (mgr *PaillierKeyManager) Decrypt(ct *pailliercore.Ciphertext, opts keyopts.Options) (*pailliercore.Plaintext, error) {
	key, err := mgr.GetKey(opts)
	if err != nil {
		return nil, err
	}
	return key.Decrypt(ct)
}

func (mgr *PaillierKeyManager) Add(c, d *pailliercore.Ciphertext, opts keyopts.Options) (*pailliercore.Ciphertext, error) {
	key, err := mgr.GetKey(opts)
	if err != nil {
		return nil, err
	}
	return key.Add(c, d)
}

func (mgr *PaillierKeyManager) Mul(c *pailliercore.Ciphertext, s *big.Int, opts keyopts.Options) (*pailliercore.Ciphertext, error) {
	key, err := mgr.GetKey(opts)
	if err != nil {
		return nil, err
	}
	return key.Mul(c, s)
}

func (mgr *PaillierKeyManager) importKey(key *PaillierKey, opts keyopts.Options) (cs_paillier.PaillierKey, error) {
	decoded, err := key.Bytes()
	if err != nil {
		return nil, errors.WithMessage(err, "paillier: failed to encode key")
	}

	// get key SKI and encode it to hex string as keyID
	ski := hex.EncodeToString(key.SKI())

	if err := mgr.keystore.Import(ski, decoded, opts); err != nil {
		return nil, errors.WithMessage(err, "paillier: failed to store key")
	}

	return key, nil
}
