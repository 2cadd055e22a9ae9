package registry

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/blockns-org/bns-cli/internal/domain"
)

// txHandle tracks a submitted transaction until it is mined. The wallet
// broadcast the transaction, so confirmation comes from polling the node
// for a receipt rather than from a subscription.
type txHandle struct {
	hash     common.Hash
	node     *ethclient.Client
	interval time.Duration
}

func (h *txHandle) Hash() common.Hash {
	return h.hash
}

// Wait blocks until the transaction is mined or ctx expires.
func (h *txHandle) Wait(ctx context.Context) (*domain.Receipt, error) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		receipt, err := h.node.TransactionReceipt(ctx, h.hash)
		if err == nil {
			var blockNumber uint64
			if receipt.BlockNumber != nil {
				blockNumber = receipt.BlockNumber.Uint64()
			}
			return &domain.Receipt{
				TxHash:      h.hash,
				Status:      receipt.Status,
				BlockNumber: blockNumber,
				GasUsed:     receipt.GasUsed,
			}, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, &domain.RemoteError{Op: "eth_getTransactionReceipt", Err: err}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
