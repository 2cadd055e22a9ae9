package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blockns-org/bns-cli/internal/usecase"
)

func TestRefreshMints(t *testing.T) {
	ctx := context.Background()

	t.Run("preserves enumeration order and positions", func(t *testing.T) {
		registry := &MockRegistry{}
		repo := &memoryRepo{}

		names := make([]string, 20)
		for i := range names {
			names[i] = fmt.Sprintf("name%02d", i)
		}
		registry.On("AllNames", mock.Anything).Return(names, nil).Once()
		for _, name := range names {
			registry.On("Record", mock.Anything, name).Return("r-"+name, nil).Once()
			registry.On("DomainOwner", mock.Anything, name).Return(testAccount, nil).Once()
		}

		uc := usecase.NewRefreshMints(registry, repo, testLogger())
		result, err := uc.Run(ctx)
		require.NoError(t, err)

		require.Len(t, result.Mints, len(names))
		for i, mint := range result.Mints {
			assert.Equal(t, i, mint.ID)
			assert.Equal(t, names[i], mint.Name)
			assert.Equal(t, "r-"+names[i], mint.Record)
		}
		assert.Equal(t, result.Mints, repo.List())
	})

	t.Run("a failed name fetch leaves the cache untouched", func(t *testing.T) {
		registry := &MockRegistry{}
		repo := &memoryRepo{}
		repo.Replace(nil)

		registry.On("AllNames", mock.Anything).Return([]string{"abc"}, nil).Once()
		registry.On("Record", mock.Anything, "abc").Return("", errors.New("node unavailable")).Once()
		registry.On("DomainOwner", mock.Anything, "abc").Return(testAccount, nil).Maybe()

		uc := usecase.NewRefreshMints(registry, repo, testLogger())
		_, err := uc.Run(ctx)
		require.Error(t, err)
		assert.Empty(t, repo.List())
	})

	t.Run("an empty registry yields an empty cache", func(t *testing.T) {
		registry := &MockRegistry{}
		repo := &memoryRepo{}
		registry.On("AllNames", mock.Anything).Return([]string{}, nil).Once()

		uc := usecase.NewRefreshMints(registry, repo, testLogger())
		result, err := uc.Run(ctx)
		require.NoError(t, err)
		assert.Empty(t, result.Mints)
	})
}
