// Package vault provides an in-memory store for encoded key material,
// addressed by the key's subject key identifier (SKI).
package vault

import (
	"errors"
	"sync"
)

var (
	ErrInvalidSKI  = errors.New("vault: ski cannot be empty")
	ErrKeyNotFound = errors.New("vault: key not found")
)

type InMemoryVault struct {
	lock sync.RWMutex
	keys map[string][]byte
}

func NewInMemoryVault() *InMemoryVault {
	return &InMemoryVault{
		keys: make(map[string][]byte),
	}
}

// Import stores encoded key material under its SKI, overwriting any
// previous material stored there.
func (v *InMemoryVault) Import(ski string, key []byte) error {
	if ski == "" {
		return ErrInvalidSKI
	}

	v.lock.Lock()
	defer v.lock.Unlock()

	v.keys[ski] = key
	return nil
}

func (v *InMemoryVault) Get(ski string) ([]byte, error) {
	v.lock.RLock()
	defer v.lock.RUnlock()

	key, ok := v.keys[ski]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return key, nil
}

func (v *InMemoryVault) Delete(ski string) error {
	v.lock.Lock()
	defer v.lock.Unlock()

	delete(v.keys, ski)
	return nil
}
