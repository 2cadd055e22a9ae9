package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/blockns-org/bns-cli/internal/config"
	"github.com/blockns-org/bns-cli/internal/usecase"
)

var (
	nameStyle  = color.New(color.FgGreen, color.Bold)
	ownerStyle = color.New(color.Faint)
)

// MintsRenderer renders the cached mint list as a table.
type MintsRenderer struct {
	out io.Writer
	cfg *config.RuntimeConfig
}

// NewMintsRenderer creates a new mints renderer
func NewMintsRenderer(out io.Writer, cfg *config.RuntimeConfig) *MintsRenderer {
	return &MintsRenderer{out: out, cfg: cfg}
}

// Render renders the mint list.
func (r *MintsRenderer) Render(result *usecase.ListMintsResult) error {
	if len(result.Mints) == 0 {
		fmt.Fprintln(r.out, "No domains minted yet")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.AppendHeader(table.Row{"#", "DOMAIN", "RECORD", "OWNER"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})

	for _, mint := range result.Mints {
		name := nameStyle.Sprintf("%s%s", mint.Name, r.cfg.TLD)
		t.AppendRow(table.Row{mint.ID, name, mint.Record, ownerStyle.Sprint(ShortAddress(mint.Owner))})
	}
	t.Render()

	if len(result.Mints) < result.Total {
		fmt.Fprintf(r.out, "\nShowing %d of %d domains\n", len(result.Mints), result.Total)
	}
	return nil
}

var _ Renderer[*usecase.ListMintsResult] = (*MintsRenderer)(nil)
