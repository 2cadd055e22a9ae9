package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/params"
)

// MinNameLength is the registry's minimum domain name length. Shorter
// names are rejected client-side before pricing is consulted.
const MinNameLength = 3

// Registration price tiers in tenths of the native token. The values must
// match the deployed contract's own pricing exactly or registration
// transactions underpay and revert.
const (
	tierShortTenths = 5 // length 3
	tierMidTenths   = 3 // length 4
	tierBaseTenths  = 1 // length >= 5
)

var weiPerTenth = new(big.Int).SetUint64(params.Ether / 10)

// ValidateName checks a candidate domain name against local registration
// rules. It never touches the network.
func ValidateName(name string) error {
	if len(name) < MinNameLength {
		return &NameTooShortError{Name: name}
	}
	return nil
}

// PriceFor returns the registration price in wei for a valid domain name.
// Callers must run ValidateName first; pricing is undefined for shorter
// names.
func PriceFor(name string) *big.Int {
	var tenths int64
	switch len(name) {
	case MinNameLength:
		tenths = tierShortTenths
	case MinNameLength + 1:
		tenths = tierMidTenths
	default:
		tenths = tierBaseTenths
	}
	return new(big.Int).Mul(big.NewInt(tenths), weiPerTenth)
}
