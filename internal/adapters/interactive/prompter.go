package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/blockns-org/bns-cli/internal/config"
	"github.com/blockns-org/bns-cli/internal/usecase"
)

// PrompterAdapter asks for record values on the terminal.
type PrompterAdapter struct {
	config *config.RuntimeConfig
}

// NewPrompterAdapter creates a new prompter adapter.
func NewPrompterAdapter(cfg *config.RuntimeConfig) *PrompterAdapter {
	return &PrompterAdapter{config: cfg}
}

// PromptRecord asks for a new record value for a domain, pre-filling the
// current one.
func (p *PrompterAdapter) PromptRecord(ctx context.Context, name, current string) (string, error) {
	if p.config.NonInteractive {
		return "", fmt.Errorf("record prompt not available in non-interactive mode")
	}

	prompt := promptui.Prompt{
		Label:   fmt.Sprintf("New record for %s%s", name, p.config.TLD),
		Default: current,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return fmt.Errorf("record cannot be empty")
			}
			return nil
		},
	}

	value, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}
	return strings.TrimSpace(value), nil
}

var _ usecase.RecordPrompter = (*PrompterAdapter)(nil)
