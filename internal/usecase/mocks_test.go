package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"

	"github.com/blockns-org/bns-cli/internal/domain"
	"github.com/blockns-org/bns-cli/internal/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockWalletProvider is a mock implementation of WalletProvider
type MockWalletProvider struct {
	mock.Mock

	accountsHandler func(accounts []common.Address)
	chainHandler    func(chainID string)
}

func (m *MockWalletProvider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]common.Address), args.Error(1)
}

func (m *MockWalletProvider) Accounts(ctx context.Context) ([]common.Address, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]common.Address), args.Error(1)
}

func (m *MockWalletProvider) ChainID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockWalletProvider) SwitchChain(ctx context.Context, chainID string) error {
	args := m.Called(ctx, chainID)
	return args.Error(0)
}

func (m *MockWalletProvider) AddChain(ctx context.Context, descriptor domain.ChainDescriptor) error {
	args := m.Called(ctx, descriptor)
	return args.Error(0)
}

func (m *MockWalletProvider) OnAccountsChanged(handler func(accounts []common.Address)) {
	m.accountsHandler = handler
}

func (m *MockWalletProvider) OnChainChanged(handler func(chainID string)) {
	m.chainHandler = handler
}

func (m *MockWalletProvider) Close() error {
	args := m.Called()
	return args.Error(0)
}

// fireAccountsChanged simulates a provider account event.
func (m *MockWalletProvider) fireAccountsChanged(accounts []common.Address) {
	if m.accountsHandler != nil {
		m.accountsHandler(accounts)
	}
}

// fireChainChanged simulates a provider chain event.
func (m *MockWalletProvider) fireChainChanged(chainID string) {
	if m.chainHandler != nil {
		m.chainHandler(chainID)
	}
}

// MockRegistry is a mock implementation of Registry
type MockRegistry struct {
	mock.Mock
}

func (m *MockRegistry) AllNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRegistry) Record(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockRegistry) DomainOwner(ctx context.Context, name string) (common.Address, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(common.Address), args.Error(1)
}

func (m *MockRegistry) ContractOwner(ctx context.Context) (common.Address, error) {
	args := m.Called(ctx)
	return args.Get(0).(common.Address), args.Error(1)
}

func (m *MockRegistry) ContractBalance(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockRegistry) Register(ctx context.Context, from common.Address, name string, value *big.Int) (usecase.TxHandle, error) {
	args := m.Called(ctx, from, name, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(usecase.TxHandle), args.Error(1)
}

func (m *MockRegistry) SetRecord(ctx context.Context, from common.Address, name, record string) (usecase.TxHandle, error) {
	args := m.Called(ctx, from, name, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(usecase.TxHandle), args.Error(1)
}

func (m *MockRegistry) Withdraw(ctx context.Context, from common.Address) (usecase.TxHandle, error) {
	args := m.Called(ctx, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(usecase.TxHandle), args.Error(1)
}

// MockChainReader is a mock implementation of ChainReader
type MockChainReader struct {
	mock.Mock
}

func (m *MockChainReader) GasPrice(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockChainReader) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

// MockTxHandle is a mock implementation of TxHandle
type MockTxHandle struct {
	mock.Mock
}

func (m *MockTxHandle) Hash() common.Hash {
	args := m.Called()
	return args.Get(0).(common.Hash)
}

func (m *MockTxHandle) Wait(ctx context.Context) (*domain.Receipt, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

// confirmedHandle builds a handle whose receipt reports success.
func confirmedHandle(hash common.Hash) *MockTxHandle {
	handle := &MockTxHandle{}
	handle.On("Hash").Return(hash)
	handle.On("Wait", mock.Anything).Return(&domain.Receipt{TxHash: hash, Status: 1, BlockNumber: 1, GasUsed: 21000}, nil)
	return handle
}

// revertedHandle builds a handle whose receipt reports a revert.
func revertedHandle(hash common.Hash) *MockTxHandle {
	handle := &MockTxHandle{}
	handle.On("Hash").Return(hash)
	handle.On("Wait", mock.Anything).Return(&domain.Receipt{TxHash: hash, Status: 0}, nil)
	return handle
}

// memoryRepo is a plain in-memory MintRepository for tests
type memoryRepo struct {
	mints []domain.Mint
}

func (r *memoryRepo) Replace(mints []domain.Mint) {
	r.mints = append([]domain.Mint(nil), mints...)
}

func (r *memoryRepo) List() []domain.Mint {
	return append([]domain.Mint(nil), r.mints...)
}

func (r *memoryRepo) Recent(n int) []domain.Mint {
	if n > len(r.mints) {
		n = len(r.mints)
	}
	if n <= 0 {
		return nil
	}
	return append([]domain.Mint(nil), r.mints[len(r.mints)-n:]...)
}

// MockSelector is a mock implementation of MintSelector
type MockSelector struct {
	mock.Mock
}

func (m *MockSelector) SelectMint(ctx context.Context, mints []domain.Mint, prompt string) (*domain.Mint, error) {
	args := m.Called(ctx, mints, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mint), args.Error(1)
}

// MockPrompter is a mock implementation of RecordPrompter
type MockPrompter struct {
	mock.Mock
}

func (m *MockPrompter) PromptRecord(ctx context.Context, name, current string) (string, error) {
	args := m.Called(ctx, name, current)
	return args.String(0), args.Error(1)
}

// recordingSink captures progress events
type recordingSink struct {
	events []usecase.ProgressEvent
}

func (s *recordingSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	s.events = append(s.events, event)
}

func (s *recordingSink) Info(string)  {}
func (s *recordingSink) Error(string) {}

func (s *recordingSink) stages() []string {
	out := make([]string, len(s.events))
	for i, e := range s.events {
		out[i] = e.Stage
	}
	return out
}
