package keyopts

import (
	"errors"
	"sync"

	com_keyopts "github.com/mr-shifu/paillier-lib/pkg/common/keyopts"
)

var (
	ErrInvalidParamsID = errors.New("keyopts: invalid id")
	ErrKeyNotFound     = errors.New("keyopts: key not found")
)

type InMemoryKeyOpts struct {
	lock sync.RWMutex

	// keys maps a caller-chosen key ID to the key metadata {SKI}.
	keys map[string]*com_keyopts.KeyData
}

func NewInMemoryKeyOpts() *InMemoryKeyOpts {
	return &InMemoryKeyOpts{
		keys: make(map[string]*com_keyopts.KeyData),
	}
}

func (kr *InMemoryKeyOpts) Import(ski string, opts com_keyopts.Options) error {
	kr.lock.Lock()
	defer kr.lock.Unlock()

	id, err := idFromOptions(opts)
	if err != nil {
		return err
	}

	kr.keys[id] = &com_keyopts.KeyData{
		ID:  id,
		SKI: ski,
	}
	return nil
}

func (kr *InMemoryKeyOpts) Get(opts com_keyopts.Options) (*com_keyopts.KeyData, error) {
	kr.lock.RLock()
	defer kr.lock.RUnlock()

	id, err := idFromOptions(opts)
	if err != nil {
		return nil, err
	}

	kd, ok := kr.keys[id]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return kd, nil
}

func (kr *InMemoryKeyOpts) Delete(opts com_keyopts.Options) error {
	kr.lock.Lock()
	defer kr.lock.Unlock()

	id, err := idFromOptions(opts)
	if err != nil {
		return err
	}

	delete(kr.keys, id)
	return nil
}

func idFromOptions(opts com_keyopts.Options) (string, error) {
	ID, ok := opts.Get("id")
	if !ok {
		return "", ErrInvalidParamsID
	}
	id, ok := ID.(string)
	if !ok || id == "" {
		return "", ErrInvalidParamsID
	}
	return id, nil
}
