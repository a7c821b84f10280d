package keyopts

// KeyData is the metadata stored for a key: the caller-chosen ID and the
// Subject Key Identifier it resolves to.
type KeyData struct {
	ID  string
	SKI string
}

type Options interface {
	Set(kVs ...interface{}) (Options, error)
	Get(key string) (interface{}, bool)
}

// KeyOpts manages key metadata referred to by a caller-chosen "id" option.
type KeyOpts interface {
	// Import records the SKI of a key under the ID carried by opts.
	Import(ski string, opts Options) error

	// Get returns the metadata of the key identified by opts.
	Get(opts Options) (*KeyData, error)

	// Delete removes the metadata of the key identified by opts.
	Delete(opts Options) error
}
