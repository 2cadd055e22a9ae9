package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"

	"github.com/blockns-org/bns-cli/internal/config"
	"github.com/blockns-org/bns-cli/internal/domain"
	"github.com/blockns-org/bns-cli/internal/usecase"
)

// SelectorAdapter handles interactive selection of a domain.
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter.
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectMint picks one domain out of a list of cached mints.
func (s *SelectorAdapter) SelectMint(ctx context.Context, mints []domain.Mint, prompt string) (*domain.Mint, error) {
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(mints) == 0 {
		return nil, fmt.Errorf("no domains provided for selection")
	}

	// Single match needs no prompt
	if len(mints) == 1 {
		return &mints[0], nil
	}

	options := formatMintOptions(mints, s.config.TLD)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return &mints[index], nil
}

// formatMintOptions creates display strings for domain selection.
func formatMintOptions(mints []domain.Mint, tld string) []string {
	options := make([]string, len(mints))
	for i, mint := range mints {
		name := color.New(color.FgWhite, color.Bold).Sprintf("%s%s", mint.Name, tld)
		if mint.Record != "" {
			record := color.New(color.FgBlue).Sprint(mint.Record)
			options[i] = fmt.Sprintf("%s (%s)", name, record)
		} else {
			options[i] = name
		}
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui.
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		pattern := fuzzy.Find(input, []string{item})
		return len(pattern) > 0
	}
}

var _ usecase.MintSelector = (*SelectorAdapter)(nil)
