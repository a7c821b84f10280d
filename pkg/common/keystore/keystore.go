package keystore

import (
	"github.com/mr-shifu/paillier-lib/pkg/common/keyopts"
)

// Keystore persists key material together with its metadata: the bytes go to
// a vault under the key's SKI, the SKI is indexed by the options' ID.
type Keystore interface {
	Import(ski string, key []byte, opts keyopts.Options) error
	Update(key []byte, opts keyopts.Options) error
	Get(opts keyopts.Options) ([]byte, error)
	Delete(opts keyopts.Options) error
}
