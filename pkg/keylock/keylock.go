// Package keylock provides per-key mutual exclusion so that independent
// keys (tile keys, user sessions) never contend with each other.
package keylock

import "sync"

type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New() *KeyLock {
	return &KeyLock{
		locks: make(map[string]*sync.Mutex),
	}
}

func (k *KeyLock) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	return l
}

func (k *KeyLock) Lock(key string) {
	k.get(key).Lock()
}

func (k *KeyLock) Unlock(key string) {
	k.get(key).Unlock()
}
