package registry_test

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blockns-org/bns-cli/internal/adapters/registry"
	"github.com/blockns-org/bns-cli/internal/config"
	"github.com/blockns-org/bns-cli/internal/domain"
	"github.com/blockns-org/bns-cli/internal/usecase"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendTransaction(ctx context.Context, req domain.TxRequest) (common.Hash, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(common.Hash), args.Error(1)
}

// newAdapter builds a client against an endpoint that is never contacted;
// ethclient dials HTTP lazily, so construction succeeds without a node.
func newAdapter(t *testing.T, sender usecase.TransactionSender) *registry.ClientAdapter {
	t.Helper()
	cfg := &config.RuntimeConfig{
		NodeRPC:         "http://127.0.0.1:8545",
		ContractAddress: common.HexToAddress("0x1fd4a8f9bbbbbf3d27ffb0f293e9e1cf2b7a28b6"),
		PollInterval:    time.Second,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	adapter, err := registry.NewClientAdapter(cfg, sender, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = adapter.Close() })
	return adapter
}

func TestClientAdapter_Register(t *testing.T) {
	from := common.HexToAddress("0x1111111111111111111111111111111111111111")

	t.Run("rejects too-short name before submission", func(t *testing.T) {
		sender := &mockSender{}
		adapter := newAdapter(t, sender)

		handle, err := adapter.Register(context.Background(), from, "ab", big.NewInt(1))

		assert.Nil(t, handle)
		var tooShort *domain.NameTooShortError
		require.ErrorAs(t, err, &tooShort)
		assert.Equal(t, "ab", tooShort.Name)
		sender.AssertNotCalled(t, "SendTransaction", mock.Anything, mock.Anything)
	})

	t.Run("submits packed call with price for a valid name", func(t *testing.T) {
		sender := &mockSender{}
		adapter := newAdapter(t, sender)

		price := domain.PriceFor("abc")
		hash := common.HexToHash("0xaaaa000000000000000000000000000000000000000000000000000000000001")
		sender.On("SendTransaction", mock.Anything, mock.MatchedBy(func(req domain.TxRequest) bool {
			return req.From == from &&
				req.Value.Cmp(price) == 0 &&
				len(req.Data) >= 4 &&
				common.Bytes2Hex(req.Data[:4]) == "f2c298be"
		})).Return(hash, nil)

		handle, err := adapter.Register(context.Background(), from, "abc", price)

		require.NoError(t, err)
		assert.Equal(t, hash, handle.Hash())
		sender.AssertExpectations(t)
	})
}
