package vault

// Vault stores encoded key material addressed by the key's subject key
// identifier (SKI), the hex SHA-256 of the public modulus. Implementations
// reject an empty SKI on Import.
type Vault interface {
	Import(ski string, key []byte) error
	Get(ski string) ([]byte, error)
	Delete(ski string) error
}
