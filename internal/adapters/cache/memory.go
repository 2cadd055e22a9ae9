package cache

import (
	"sync"

	"github.com/blockns-org/bns-cli/internal/domain"
	"github.com/blockns-org/bns-cli/internal/usecase"
)

// MintCache is an in-memory snapshot of the registry's mints. Refreshes
// replace the snapshot wholesale; readers get copies and never observe a
// partially applied refresh.
type MintCache struct {
	mu    sync.RWMutex
	mints []domain.Mint
}

func NewMintCache() *MintCache {
	return &MintCache{}
}

// Replace swaps in a freshly fetched snapshot.
func (c *MintCache) Replace(mints []domain.Mint) {
	snapshot := make([]domain.Mint, len(mints))
	copy(snapshot, mints)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.mints = snapshot
}

// List returns all cached mints in registration order.
func (c *MintCache) List() []domain.Mint {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Mint, len(c.mints))
	copy(out, c.mints)
	return out
}

// Recent returns the n most recently registered mints, oldest first.
func (c *MintCache) Recent(n int) []domain.Mint {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if n <= 0 {
		return nil
	}
	if n > len(c.mints) {
		n = len(c.mints)
	}
	out := make([]domain.Mint, n)
	copy(out, c.mints[len(c.mints)-n:])
	return out
}

var _ usecase.MintRepository = (*MintCache)(nil)
