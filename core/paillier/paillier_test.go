package paillier

import (
	"crypto/rand"
	"math/big"
	"sync"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/mr-shifu/paillier-lib/core/math/prime"
	"github.com/mr-shifu/paillier-lib/core/math/sample"
	"github.com/mr-shifu/paillier-lib/core/pool"
	"github.com/mr-shifu/paillier-lib/pkg/hash"
)

var (
	keyOnce sync.Once
	keySK   *SecretKey
	keyPK   *PublicKey
	keyErr  error
)

// testKeys returns a 256-bit key pair shared across the tests.
func testKeys(t *testing.T) (*SecretKey, *PublicKey) {
	t.Helper()
	keyOnce.Do(func() {
		keySK, keyPK, keyErr = KeyGen(rand.Reader, 256, nil)
	})
	require.NoError(t, keyErr)
	return keySK, keyPK
}

func TestKeyGenRejectsShortBitLength(t *testing.T) {
	_, _, err := KeyGen(rand.Reader, 1, nil)
	assert.ErrorIs(t, err, prime.ErrBitLength)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	sk, pk := testKeys(t)

	nMinusOne := new(big.Int).Sub(pk.N().Big(), big.NewInt(1))
	for _, m := range []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(123),
		nMinusOne,
	} {
		ct, err := Encrypt(rand.Reader, pk, m)
		require.NoError(t, err)

		pt, err := Decrypt(sk, pk, ct)
		require.NoError(t, err)
		assert.Zero(t, pt.Big().Cmp(m), "m=%s", m)
	}
}

func TestHomomorphicAdd(t *testing.T) {
	sk, pk := testKeys(t)

	c, err := Encrypt(rand.Reader, pk, big.NewInt(22))
	require.NoError(t, err)
	d, err := Encrypt(rand.Reader, pk, big.NewInt(33))
	require.NoError(t, err)

	sum, err := Add(pk, c, d)
	require.NoError(t, err)
	pt, err := Decrypt(sk, pk, sum)
	require.NoError(t, err)
	assert.Equal(t, "55", pt.Big().String())

	// sums wrap around mod n
	n := pk.N().Big()
	a := sample.Below(rand.Reader, n)
	b := sample.Below(rand.Reader, n)
	ca, err := Encrypt(rand.Reader, pk, a)
	require.NoError(t, err)
	cb, err := Encrypt(rand.Reader, pk, b)
	require.NoError(t, err)
	cs, err := Add(pk, ca, cb)
	require.NoError(t, err)
	pt, err = Decrypt(sk, pk, cs)
	require.NoError(t, err)

	want := new(big.Int).Add(a, b)
	want.Mod(want, n)
	assert.Zero(t, pt.Big().Cmp(want))
}

func TestHomomorphicMul(t *testing.T) {
	sk, pk := testKeys(t)

	c, err := Encrypt(rand.Reader, pk, big.NewInt(22))
	require.NoError(t, err)

	scaled, err := Mul(pk, c, big.NewInt(3))
	require.NoError(t, err)
	pt, err := Decrypt(sk, pk, scaled)
	require.NoError(t, err)
	assert.Equal(t, "66", pt.Big().String())
}

func TestHomomorphicMulNegativeScalar(t *testing.T) {
	sk, pk := testKeys(t)

	c, err := Encrypt(rand.Reader, pk, big.NewInt(10))
	require.NoError(t, err)

	scaled, err := Mul(pk, c, big.NewInt(-3))
	require.NoError(t, err)
	pt, err := Decrypt(sk, pk, scaled)
	require.NoError(t, err)

	want := new(big.Int).Mod(big.NewInt(-30), pk.N().Big())
	assert.Zero(t, pt.Big().Cmp(want))
}

func TestProbabilisticCiphertexts(t *testing.T) {
	_, pk := testKeys(t)

	m := big.NewInt(42)
	c1, err := Encrypt(rand.Reader, pk, m)
	require.NoError(t, err)
	c2, err := Encrypt(rand.Reader, pk, m)
	require.NoError(t, err)

	assert.Equal(t, saferith.Choice(0), c1.Nat().Eq(c2.Nat()))
}

func TestEncryptWithNonce(t *testing.T) {
	sk, pk := testKeys(t)

	m := big.NewInt(777)
	nonce := sample.UnitModN(rand.Reader, pk.N())

	c1, err := EncryptWithNonce(pk, m, nonce)
	require.NoError(t, err)
	c2, err := EncryptWithNonce(pk, m, nonce)
	require.NoError(t, err)
	assert.Equal(t, saferith.Choice(1), c1.Nat().Eq(c2.Nat()))

	pt, err := Decrypt(sk, pk, c1)
	require.NoError(t, err)
	assert.Equal(t, "777", pt.Big().String())

	_, err = EncryptWithNonce(pk, m, nil)
	assert.ErrorIs(t, err, ErrInvalidNonce)

	zero := new(saferith.Nat).SetUint64(0)
	_, err = EncryptWithNonce(pk, m, zero)
	assert.ErrorIs(t, err, ErrInvalidNonce)
}

func TestTypeGuards(t *testing.T) {
	sk, pk := testKeys(t)
	ct, err := Encrypt(rand.Reader, pk, big.NewInt(5))
	require.NoError(t, err)

	// encrypt requires a well-formed public key and an integer plaintext
	_, err = Encrypt(rand.Reader, nil, big.NewInt(1))
	assert.ErrorIs(t, err, ErrNotPublicKey)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = Encrypt(rand.Reader, &PublicKey{}, big.NewInt(1))
	assert.ErrorIs(t, err, ErrNotPublicKey)
	_, err = Encrypt(rand.Reader, pk, nil)
	assert.ErrorIs(t, err, ErrNotPlaintext)

	// decrypt requires a secret key, a public key and a ciphertext
	_, err = Decrypt(nil, pk, ct)
	assert.ErrorIs(t, err, ErrNotSecretKey)
	_, err = Decrypt(&SecretKey{}, pk, ct)
	assert.ErrorIs(t, err, ErrNotSecretKey)
	_, err = Decrypt(sk, nil, ct)
	assert.ErrorIs(t, err, ErrNotPublicKey)
	_, err = Decrypt(sk, pk, nil)
	assert.ErrorIs(t, err, ErrNotCiphertext)
	_, err = Decrypt(sk, pk, &Ciphertext{})
	assert.ErrorIs(t, err, ErrNotCiphertext)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	// add requires two ciphertexts
	_, err = Add(pk, ct, nil)
	assert.ErrorIs(t, err, ErrNotCiphertext)
	_, err = Add(pk, nil, ct)
	assert.ErrorIs(t, err, ErrNotCiphertext)
	_, err = Add(nil, ct, ct)
	assert.ErrorIs(t, err, ErrNotPublicKey)

	// mul requires a ciphertext and an integer scalar
	_, err = Mul(pk, nil, big.NewInt(3))
	assert.ErrorIs(t, err, ErrNotCiphertext)
	_, err = Mul(pk, ct, nil)
	assert.ErrorIs(t, err, ErrNotScalar)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestKeyGenWithPool(t *testing.T) {
	pl := pool.NewPool(2)
	defer pl.TearDown()

	sk, pk, err := KeyGen(rand.Reader, 128, pl)
	require.NoError(t, err)

	ct, err := Encrypt(rand.Reader, pk, big.NewInt(4242))
	require.NoError(t, err)
	pt, err := Decrypt(sk, pk, ct)
	require.NoError(t, err)
	assert.Equal(t, "4242", pt.Big().String())
}

func TestKeyGenDeterministic(t *testing.T) {
	// a seeded stream stands in for the secure random source
	_, pk1, err := KeyGen(hash.New("paillier-keygen-seed").Digest(), 64, nil)
	require.NoError(t, err)
	_, pk2, err := KeyGen(hash.New("paillier-keygen-seed").Digest(), 64, nil)
	require.NoError(t, err)

	assert.Zero(t, pk1.N().Big().Cmp(pk2.N().Big()))
	assert.Equal(t, saferith.Choice(1), pk1.G().Eq(pk2.G()))
}

func TestConcurrentOperations(t *testing.T) {
	sk, pk := testKeys(t)

	var errGroup errgroup.Group
	for i := 0; i < 8; i++ {
		m := big.NewInt(int64(1000 + i))
		errGroup.Go(func() error {
			ct, err := Encrypt(rand.Reader, pk, m)
			if err != nil {
				return err
			}
			doubled, err := Add(pk, ct, ct)
			if err != nil {
				return err
			}
			pt, err := Decrypt(sk, pk, doubled)
			if err != nil {
				return err
			}
			want := new(big.Int).Lsh(m, 1)
			if pt.Big().Cmp(want) != 0 {
				return assert.AnError
			}
			return nil
		})
	}
	require.NoError(t, errGroup.Wait())
}
