package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blockns-org/bns-cli/internal/config"
	"github.com/blockns-org/bns-cli/internal/domain"
	"github.com/blockns-org/bns-cli/internal/usecase"
)

func TestWalletSessionConnect(t *testing.T) {
	ctx := context.Background()

	t.Run("first authorized account becomes active", func(t *testing.T) {
		provider := &MockWalletProvider{}
		provider.On("RequestAccounts", mock.Anything).Return([]common.Address{testAccount, otherOwner}, nil).Once()
		provider.On("ChainID", mock.Anything).Return("0x13881", nil).Once()

		session := usecase.NewWalletSession(testConfig(), provider, testLogger())
		state, err := session.Connect(ctx)
		require.NoError(t, err)

		assert.Equal(t, testAccount, state.Account)
		assert.Equal(t, "0x13881", state.ChainID)
		assert.True(t, session.OnTargetChain())
	})

	t.Run("empty account list means not connected", func(t *testing.T) {
		provider := &MockWalletProvider{}
		provider.On("RequestAccounts", mock.Anything).Return([]common.Address{}, nil).Once()

		session := usecase.NewWalletSession(testConfig(), provider, testLogger())
		_, err := session.Connect(ctx)
		assert.ErrorIs(t, err, domain.ErrNotConnected)
	})

	t.Run("missing provider is surfaced unchanged", func(t *testing.T) {
		provider := &MockWalletProvider{}
		provider.On("RequestAccounts", mock.Anything).Return(nil, domain.ErrNoProvider).Once()

		session := usecase.NewWalletSession(testConfig(), provider, testLogger())
		_, err := session.Connect(ctx)
		assert.ErrorIs(t, err, domain.ErrNoProvider)
	})
}

func TestWalletSessionEvents(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*MockWalletProvider, *usecase.WalletSession, *int) {
		t.Helper()
		provider := &MockWalletProvider{}
		provider.On("RequestAccounts", mock.Anything).Return([]common.Address{testAccount}, nil).Once()
		provider.On("ChainID", mock.Anything).Return("0x13881", nil).Once()

		session := usecase.NewWalletSession(testConfig(), provider, testLogger())
		reloads := 0
		session.OnReload(func(context.Context) { reloads++ })
		session.Init(ctx)

		_, err := session.Connect(ctx)
		require.NoError(t, err)
		return provider, session, &reloads
	}

	t.Run("account change swaps the active account and reloads", func(t *testing.T) {
		provider, session, reloads := setup(t)

		provider.fireAccountsChanged([]common.Address{otherOwner})

		assert.Equal(t, otherOwner, session.State().Account)
		assert.Equal(t, 1, *reloads)
	})

	t.Run("an empty account event disconnects", func(t *testing.T) {
		provider, session, reloads := setup(t)

		provider.fireAccountsChanged(nil)

		assert.False(t, session.State().Connected())
		_, err := session.ActiveAccount()
		assert.ErrorIs(t, err, domain.ErrNotConnected)
		assert.Equal(t, 1, *reloads)
	})

	t.Run("chain change updates the chain and reloads", func(t *testing.T) {
		provider, session, reloads := setup(t)

		provider.fireChainChanged("0x1")

		assert.Equal(t, "0x1", session.State().ChainID)
		assert.False(t, session.OnTargetChain())
		assert.Equal(t, 1, *reloads)
	})
}

func TestWalletSessionSwitchNetwork(t *testing.T) {
	ctx := context.Background()

	mumbai := &config.Network{
		ChainID:  "0x13881",
		Name:     "mumbai",
		RPCURL:   "https://rpc-mumbai.example",
		Explorer: "https://mumbai.polygonscan.com",
	}

	cfgWithNetworks := func() *config.RuntimeConfig {
		cfg := testConfig()
		cfg.Networks = config.NetworkTable{"0x13881": mumbai}
		return cfg
	}

	t.Run("plain switch succeeds", func(t *testing.T) {
		provider := &MockWalletProvider{}
		provider.On("SwitchChain", mock.Anything, "0x13881").Return(nil).Once()

		session := usecase.NewWalletSession(cfgWithNetworks(), provider, testLogger())
		require.NoError(t, session.SwitchNetwork(ctx, "0x13881"))
		provider.AssertExpectations(t)
	})

	t.Run("unknown chain is registered then retried once", func(t *testing.T) {
		provider := &MockWalletProvider{}
		provider.On("SwitchChain", mock.Anything, "0x13881").
			Return(fmt.Errorf("wrapped: %w", domain.ErrChainUnsupported)).Once()
		provider.On("AddChain", mock.Anything, mumbai.Descriptor()).Return(nil).Once()
		provider.On("SwitchChain", mock.Anything, "0x13881").Return(nil).Once()

		session := usecase.NewWalletSession(cfgWithNetworks(), provider, testLogger())
		require.NoError(t, session.SwitchNetwork(ctx, "0x13881"))
		provider.AssertExpectations(t)
	})

	t.Run("a chain missing from the table cannot be added", func(t *testing.T) {
		provider := &MockWalletProvider{}
		provider.On("SwitchChain", mock.Anything, "0x539").
			Return(fmt.Errorf("wrapped: %w", domain.ErrChainUnsupported)).Once()

		session := usecase.NewWalletSession(cfgWithNetworks(), provider, testLogger())
		err := session.SwitchNetwork(ctx, "0x539")
		assert.ErrorIs(t, err, domain.ErrChainUnsupported)
		provider.AssertNotCalled(t, "AddChain", mock.Anything, mock.Anything)
	})

	t.Run("other switch errors are not retried", func(t *testing.T) {
		provider := &MockWalletProvider{}
		userRejected := errors.New("user rejected the request")
		provider.On("SwitchChain", mock.Anything, "0x13881").Return(userRejected).Once()

		session := usecase.NewWalletSession(cfgWithNetworks(), provider, testLogger())
		err := session.SwitchNetwork(ctx, "0x13881")
		assert.ErrorIs(t, err, userRejected)
		provider.AssertNotCalled(t, "AddChain", mock.Anything, mock.Anything)
	})
}
