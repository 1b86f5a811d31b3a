package jq300

import (
	"sort"
	"sync"
)

// Registry owns every configured account of a process, keyed by username.
// Accounts are fully independent of each other; the registry only tracks
// them for lookup and teardown.
type Registry struct {
	mu       sync.RWMutex
	accounts map[string]*Account
}

func NewRegistry() *Registry {
	return &Registry{accounts: make(map[string]*Account)}
}

func (r *Registry) Add(account *Account) {
	r.mu.Lock()
	r.accounts[account.UniqueID()] = account
	r.mu.Unlock()
}

func (r *Registry) Get(username string) (*Account, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	account, ok := r.accounts[username]
	return account, ok
}

// All returns the accounts ordered by username.
func (r *Registry) All() []*Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.accounts))
	for name := range r.accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	res := make([]*Account, 0, len(names))
	for _, name := range names {
		res = append(res, r.accounts[name])
	}
	return res
}

// Close tears down every account, disconnecting their MQTT channels.
func (r *Registry) Close() {
	for _, account := range r.All() {
		account.Close()
	}
}
