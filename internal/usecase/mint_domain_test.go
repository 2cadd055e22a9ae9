package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blockns-org/bns-cli/internal/config"
	"github.com/blockns-org/bns-cli/internal/domain"
	"github.com/blockns-org/bns-cli/internal/usecase"
)

var (
	testAccount = common.HexToAddress("0x1111111111111111111111111111111111111111")
	otherOwner  = common.HexToAddress("0x2222222222222222222222222222222222222222")
	txHashA     = common.HexToHash("0xaaaa")
	txHashB     = common.HexToHash("0xbbbb")
)

func testConfig() *config.RuntimeConfig {
	return &config.RuntimeConfig{
		TargetChainID: "0x13881",
		TLD:           ".block",
	}
}

// connectedSession builds a session with an authorized account.
func connectedSession(t *testing.T, cfg *config.RuntimeConfig, chainID string) *usecase.WalletSession {
	t.Helper()
	provider := &MockWalletProvider{}
	provider.On("RequestAccounts", mock.Anything).Return([]common.Address{testAccount}, nil).Once()
	provider.On("ChainID", mock.Anything).Return(chainID, nil).Once()

	session := usecase.NewWalletSession(cfg, provider, testLogger())
	_, err := session.Connect(context.Background())
	require.NoError(t, err)
	return session
}

func TestMintDomain(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects a short name before any network call", func(t *testing.T) {
		cfg := testConfig()
		session := connectedSession(t, cfg, "0x13881")
		registry := &MockRegistry{}
		reader := &MockChainReader{}
		repo := &memoryRepo{}
		sink := &recordingSink{}

		uc := usecase.NewMintDomain(cfg, session, registry, reader,
			usecase.NewRefreshMints(registry, repo, testLogger()), sink, testLogger())

		_, err := uc.Run(ctx, usecase.MintDomainParams{Name: "ab"})

		var tooShort *domain.NameTooShortError
		require.ErrorAs(t, err, &tooShort)
		assert.Equal(t, "ab", tooShort.Name)
		registry.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		reader.AssertNotCalled(t, "GasPrice", mock.Anything)
		assert.Contains(t, sink.stages(), string(usecase.MintAborted))
	})

	t.Run("rejects insufficient funds before submission", func(t *testing.T) {
		cfg := testConfig()
		session := connectedSession(t, cfg, "0x13881")
		registry := &MockRegistry{}
		reader := &MockChainReader{}
		repo := &memoryRepo{}

		price := domain.PriceFor("ninja")
		gasPrice := big.NewInt(params.GWei)
		// one wei short of price plus the gas allowance
		required := domain.EstimateTotalCost(price, gasPrice)
		balance := new(big.Int).Sub(required, big.NewInt(1))

		reader.On("GasPrice", mock.Anything).Return(gasPrice, nil).Once()
		reader.On("BalanceAt", mock.Anything, testAccount).Return(balance, nil).Once()

		uc := usecase.NewMintDomain(cfg, session, registry, reader,
			usecase.NewRefreshMints(registry, repo, testLogger()), &recordingSink{}, testLogger())

		_, err := uc.Run(ctx, usecase.MintDomainParams{Name: "ninja"})

		var insufficient *domain.InsufficientFundsError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, 0, insufficient.Required.Cmp(required))
		registry.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		reader.AssertExpectations(t)
	})

	t.Run("mints and sets the record in order", func(t *testing.T) {
		cfg := testConfig()
		session := connectedSession(t, cfg, "0x13881")
		registry := &MockRegistry{}
		reader := &MockChainReader{}
		repo := &memoryRepo{}
		sink := &recordingSink{}

		price := domain.PriceFor("abc")
		reader.On("GasPrice", mock.Anything).Return(big.NewInt(params.GWei), nil).Once()
		reader.On("BalanceAt", mock.Anything, testAccount).Return(new(big.Int).SetUint64(params.Ether), nil).Once()

		registry.On("Register", mock.Anything, testAccount, "abc", price).Return(confirmedHandle(txHashA), nil).Once()
		registry.On("SetRecord", mock.Anything, testAccount, "abc", "vault").Return(confirmedHandle(txHashB), nil).Once()
		registry.On("AllNames", mock.Anything).Return([]string{"abc"}, nil).Once()
		registry.On("Record", mock.Anything, "abc").Return("vault", nil).Once()
		registry.On("DomainOwner", mock.Anything, "abc").Return(testAccount, nil).Once()

		uc := usecase.NewMintDomain(cfg, session, registry, reader,
			usecase.NewRefreshMints(registry, repo, testLogger()), sink, testLogger())

		result, err := uc.Run(ctx, usecase.MintDomainParams{Name: "abc", Record: "vault"})
		require.NoError(t, err)

		assert.Equal(t, "abc", result.Name)
		assert.Equal(t, 0, result.Price.Cmp(price))
		assert.Equal(t, domain.TxConfirmed, result.Register.Status)
		assert.Equal(t, domain.TxConfirmed, result.SetRecord.Status)
		assert.False(t, result.CacheStale)

		// the cache now holds the fresh mint
		mints := repo.List()
		require.Len(t, mints, 1)
		assert.Equal(t, "abc", mints[0].Name)
		assert.Equal(t, testAccount, mints[0].Owner)

		assert.Equal(t, []string{
			string(usecase.MintValidating),
			string(usecase.MintPriceCheck),
			string(usecase.MintBalanceCheck),
			string(usecase.MintRegistering),
			string(usecase.MintAwaitRegisterReceipt),
			string(usecase.MintSettingRecord),
			string(usecase.MintAwaitRecordReceipt),
			string(usecase.MintRefreshingCache),
			string(usecase.MintIdle),
		}, sink.stages())
		registry.AssertExpectations(t)
	})

	t.Run("a reverted registration skips the record step", func(t *testing.T) {
		cfg := testConfig()
		session := connectedSession(t, cfg, "0x13881")
		registry := &MockRegistry{}
		reader := &MockChainReader{}
		repo := &memoryRepo{}

		reader.On("GasPrice", mock.Anything).Return(big.NewInt(params.GWei), nil).Once()
		reader.On("BalanceAt", mock.Anything, testAccount).Return(new(big.Int).SetUint64(params.Ether), nil).Once()
		registry.On("Register", mock.Anything, testAccount, "abc", mock.Anything).Return(revertedHandle(txHashA), nil).Once()

		uc := usecase.NewMintDomain(cfg, session, registry, reader,
			usecase.NewRefreshMints(registry, repo, testLogger()), &recordingSink{}, testLogger())

		_, err := uc.Run(ctx, usecase.MintDomainParams{Name: "abc", Record: "vault"})

		var rejected *domain.TransactionRejectedError
		require.ErrorAs(t, err, &rejected)
		assert.Equal(t, domain.TxRegister, rejected.Kind)
		registry.AssertNotCalled(t, "SetRecord", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		registry.AssertNotCalled(t, "AllNames", mock.Anything)
		assert.Empty(t, repo.List())
	})

	t.Run("a failed refresh leaves the mint confirmed but stale", func(t *testing.T) {
		cfg := testConfig()
		session := connectedSession(t, cfg, "0x13881")
		registry := &MockRegistry{}
		reader := &MockChainReader{}
		repo := &memoryRepo{}

		reader.On("GasPrice", mock.Anything).Return(big.NewInt(params.GWei), nil).Once()
		reader.On("BalanceAt", mock.Anything, testAccount).Return(new(big.Int).SetUint64(params.Ether), nil).Once()
		registry.On("Register", mock.Anything, testAccount, "abc", mock.Anything).Return(confirmedHandle(txHashA), nil).Once()
		registry.On("SetRecord", mock.Anything, testAccount, "abc", "").Return(confirmedHandle(txHashB), nil).Once()
		registry.On("AllNames", mock.Anything).Return(nil, errors.New("node unavailable")).Once()

		uc := usecase.NewMintDomain(cfg, session, registry, reader,
			usecase.NewRefreshMints(registry, repo, testLogger()), &recordingSink{}, testLogger())

		result, err := uc.Run(ctx, usecase.MintDomainParams{Name: "abc"})
		require.NoError(t, err)
		assert.True(t, result.CacheStale)
		assert.Equal(t, domain.TxConfirmed, result.Register.Status)
	})

	t.Run("requires a connected account", func(t *testing.T) {
		cfg := testConfig()
		provider := &MockWalletProvider{}
		session := usecase.NewWalletSession(cfg, provider, testLogger())
		registry := &MockRegistry{}
		repo := &memoryRepo{}

		uc := usecase.NewMintDomain(cfg, session, registry, &MockChainReader{},
			usecase.NewRefreshMints(registry, repo, testLogger()), &recordingSink{}, testLogger())

		_, err := uc.Run(ctx, usecase.MintDomainParams{Name: "abc"})
		assert.ErrorIs(t, err, domain.ErrNotConnected)
	})
}
