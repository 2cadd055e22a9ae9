package domain_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockns-org/bns-cli/internal/domain"
)

func TestEstimateTotalCost(t *testing.T) {
	price := ether(1)
	gasPrice := big.NewInt(params.GWei)

	got := domain.EstimateTotalCost(price, gasPrice)

	gas := new(big.Int).Mul(gasPrice, big.NewInt(domain.RegisterGasLimit))
	want := new(big.Int).Add(price, gas)
	assert.Zero(t, got.Cmp(want))
}

func TestCheckFunds(t *testing.T) {
	price := ether(1)
	gasPrice := big.NewInt(params.GWei)
	required := domain.EstimateTotalCost(price, gasPrice)

	t.Run("passes with exactly enough", func(t *testing.T) {
		assert.NoError(t, domain.CheckFunds(required, price, gasPrice))
	})

	t.Run("fails one wei short", func(t *testing.T) {
		balance := new(big.Int).Sub(required, big.NewInt(1))
		err := domain.CheckFunds(balance, price, gasPrice)

		var insufficient *domain.InsufficientFundsError
		require.ErrorAs(t, err, &insufficient)
		assert.Zero(t, insufficient.Balance.Cmp(balance))
		assert.Zero(t, insufficient.Required.Cmp(required))
	})

	t.Run("does not mutate its inputs", func(t *testing.T) {
		balance := new(big.Int).Set(required)
		priceBefore := new(big.Int).Set(price)
		gasBefore := new(big.Int).Set(gasPrice)

		_ = domain.CheckFunds(balance, price, gasPrice)

		assert.Zero(t, price.Cmp(priceBefore))
		assert.Zero(t, gasPrice.Cmp(gasBefore))
	})
}
