package usecase

import (
	"context"

	"github.com/blockns-org/bns-cli/internal/domain"
)

// ListMints refreshes the mint cache and returns the registered domains.
type ListMints struct {
	refresh *RefreshMints
	mints   MintRepository
}

// NewListMints creates a new ListMints use case
func NewListMints(refresh *RefreshMints, mints MintRepository) *ListMints {
	return &ListMints{
		refresh: refresh,
		mints:   mints,
	}
}

// ListMintsParams contains parameters for listing minted domains
type ListMintsParams struct {
	// Recent limits output to the last N entries in enumeration order
	Recent int
}

// ListMintsResult contains the listed domains.
type ListMintsResult struct {
	Mints []domain.Mint
	Total int
}

// Run executes the list.
func (uc *ListMints) Run(ctx context.Context, params ListMintsParams) (*ListMintsResult, error) {
	if _, err := uc.refresh.Run(ctx); err != nil {
		return nil, err
	}

	all := uc.mints.List()
	shown := all
	if params.Recent > 0 {
		shown = uc.mints.Recent(params.Recent)
	}

	return &ListMintsResult{Mints: shown, Total: len(all)}, nil
}
