package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/blockns-org/bns-cli/internal/config"
	"github.com/blockns-org/bns-cli/internal/usecase"
)

var (
	successStyle = color.New(color.FgGreen, color.Bold)
	hashStyle    = color.New(color.Faint)
)

// MintRenderer renders a completed mint.
type MintRenderer struct {
	out io.Writer
	cfg *config.RuntimeConfig
}

// NewMintRenderer creates a new mint renderer
func NewMintRenderer(out io.Writer, cfg *config.RuntimeConfig) *MintRenderer {
	return &MintRenderer{out: out, cfg: cfg}
}

// Render renders the outcome of a mint.
func (r *MintRenderer) Render(result *usecase.MintDomainResult) error {
	symbol := currencySymbol(r.cfg)
	successStyle.Fprintf(r.out, "Minted %s%s for %s\n", result.Name, r.cfg.TLD, FormatWei(result.Price, symbol))
	renderTx(r.out, "register", result.Register.Hash.Hex(), result.RegisterTxURL)
	renderTx(r.out, "record", result.SetRecord.Hash.Hex(), result.RecordTxURL)
	if result.CacheStale {
		color.New(color.FgYellow).Fprintln(r.out, "Note: the local mint list could not be refreshed; run 'bns list' to retry")
	}
	return nil
}

// UpdateRenderer renders a completed record update.
type UpdateRenderer struct {
	out io.Writer
	cfg *config.RuntimeConfig
}

// NewUpdateRenderer creates a new update renderer
func NewUpdateRenderer(out io.Writer, cfg *config.RuntimeConfig) *UpdateRenderer {
	return &UpdateRenderer{out: out, cfg: cfg}
}

// Render renders the outcome of a record update.
func (r *UpdateRenderer) Render(result *usecase.UpdateRecordResult) error {
	successStyle.Fprintf(r.out, "Updated record for %s%s\n", result.Name, r.cfg.TLD)
	fmt.Fprintf(r.out, "  record: %s\n", result.Record)
	renderTx(r.out, "setRecord", result.Tx.Hash.Hex(), result.TxURL)
	if result.CacheStale {
		color.New(color.FgYellow).Fprintln(r.out, "Note: the local mint list could not be refreshed; run 'bns list' to retry")
	}
	return nil
}

// WithdrawRenderer renders a completed withdrawal.
type WithdrawRenderer struct {
	out io.Writer
	cfg *config.RuntimeConfig
}

// NewWithdrawRenderer creates a new withdraw renderer
func NewWithdrawRenderer(out io.Writer, cfg *config.RuntimeConfig) *WithdrawRenderer {
	return &WithdrawRenderer{out: out, cfg: cfg}
}

// Render renders the outcome of a withdrawal.
func (r *WithdrawRenderer) Render(result *usecase.WithdrawFundsResult) error {
	successStyle.Fprintln(r.out, "Withdrawal confirmed")
	renderTx(r.out, "withdraw", result.Tx.Hash.Hex(), result.TxURL)
	if result.RemainingBalance != nil {
		symbol := currencySymbol(r.cfg)
		fmt.Fprintf(r.out, "  registry balance: %s\n", FormatWei(result.RemainingBalance, symbol))
	}
	return nil
}

func renderTx(out io.Writer, label, hash, url string) {
	fmt.Fprintf(out, "  %s tx: %s\n", label, hashStyle.Sprint(hash))
	if url != "" {
		fmt.Fprintf(out, "    %s\n", url)
	}
}

func currencySymbol(cfg *config.RuntimeConfig) string {
	if target := cfg.TargetNetwork(); target != nil && target.Currency.Symbol != "" {
		return target.Currency.Symbol
	}
	return "ETH"
}

var _ Renderer[*usecase.MintDomainResult] = (*MintRenderer)(nil)
var _ Renderer[*usecase.UpdateRecordResult] = (*UpdateRenderer)(nil)
var _ Renderer[*usecase.WithdrawFundsResult] = (*WithdrawRenderer)(nil)
