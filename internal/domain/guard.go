package domain

import "math/big"

// RegisterGasLimit is the fixed gas-unit assumption used by the balance
// guard's cost estimate.
const RegisterGasLimit = 21000

// EstimateTotalCost returns price plus a gasPrice*RegisterGasLimit gas
// estimate, in wei.
func EstimateTotalCost(price, gasPrice *big.Int) *big.Int {
	gasCost := new(big.Int).Mul(gasPrice, big.NewInt(RegisterGasLimit))
	return gasCost.Add(gasCost, price)
}

// CheckFunds is the advisory pre-flight balance guard. It fails with
// InsufficientFundsError iff balance < price + gas estimate. The remote
// contract still re-checks at execution time; a passing guard is no
// guarantee against a price race or a balance change after the check.
func CheckFunds(balance, price, gasPrice *big.Int) error {
	required := EstimateTotalCost(price, gasPrice)
	if balance.Cmp(required) < 0 {
		return &InsufficientFundsError{
			Balance:  new(big.Int).Set(balance),
			Required: required,
		}
	}
	return nil
}
