package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/blockns-org/bns-cli/internal/domain"
)

// fetchConcurrency bounds the per-name record/owner reads issued in
// parallel during a refresh.
const fetchConcurrency = 8

// RefreshMints rebuilds the mint cache from the registry: enumerate all
// names, fetch each name's record and owner, and atomically replace the
// cached list. Entry order always follows enumeration order and each
// entry's ID is its enumeration position.
type RefreshMints struct {
	registry Registry
	mints    MintRepository
	log      *slog.Logger
}

// NewRefreshMints creates a new RefreshMints use case
func NewRefreshMints(registry Registry, mints MintRepository, log *slog.Logger) *RefreshMints {
	return &RefreshMints{
		registry: registry,
		mints:    mints,
		log:      log.With("component", "cache"),
	}
}

// RefreshMintsResult contains the rebuilt mint list.
type RefreshMintsResult struct {
	Mints []domain.Mint
}

// Run executes the cache refresh. Concurrent refreshes are idempotent:
// whichever finishes last wins, and the cached list is always replaced
// whole.
func (uc *RefreshMints) Run(ctx context.Context) (*RefreshMintsResult, error) {
	names, err := uc.registry.AllNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate registered names: %w", err)
	}

	mints := make([]domain.Mint, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, name := range names {
		g.Go(func() error {
			record, err := uc.registry.Record(gctx, name)
			if err != nil {
				return fmt.Errorf("failed to fetch record for %s: %w", name, err)
			}
			owner, err := uc.registry.DomainOwner(gctx, name)
			if err != nil {
				return fmt.Errorf("failed to fetch owner for %s: %w", name, err)
			}
			mints[i] = domain.Mint{
				ID:     i,
				Name:   name,
				Record: record,
				Owner:  owner,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	uc.mints.Replace(mints)
	uc.log.Debug("mint cache refreshed", "count", len(mints))

	return &RefreshMintsResult{Mints: mints}, nil
}
