package render

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatWei renders a wei amount as a native-currency string, e.g.
// "0.5000 MATIC". Nil means the amount could not be fetched.
func FormatWei(wei *big.Int, symbol string) string {
	if wei == nil {
		return "unknown"
	}
	ether := new(big.Float).Quo(new(big.Float).SetInt(wei), big.NewFloat(params.Ether))
	value, _ := ether.Float64()
	return printer.Sprintf("%.4f %s", value, symbol)
}

// ShortAddress renders an address in abbreviated 0x1234…abcd form.
func ShortAddress(addr common.Address) string {
	hex := addr.Hex()
	return hex[:6] + "…" + hex[len(hex)-4:]
}
