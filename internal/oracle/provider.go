// Package oracle wraps the external language-model services behind a
// narrow interface. Callers never trust structured oracle output: the
// scheduler validates free text by substring match and the summary
// generator stores it verbatim. Every call is a single attempt with a
// bounded timeout; callers absorb failures into their documented
// fallbacks.
package oracle

import (
	"context"
	"errors"
	"fmt"

	"intakeflow/internal/config"
)

// ErrNotConfigured is returned by every call when no API key is set.
var ErrNotConfigured = errors.New("oracle not configured")

// Provider is the contract the core depends on. Classify answers a
// selection prompt deterministically, Suggest produces short completions,
// Generate produces long-form text.
type Provider interface {
	Classify(ctx context.Context, system, user string) (string, error)
	Suggest(ctx context.Context, system, user string) (string, error)
	Generate(ctx context.Context, system, user string) (string, error)
}

// NewProvider builds a Provider from configuration. With no API key set
// the returned provider fails every call with ErrNotConfigured, which
// downstream services treat as "no prediction".
func NewProvider(cfg *config.OracleConfig) (Provider, error) {
	if !cfg.IsEnabled() {
		return disabled{}, nil
	}
	switch cfg.Provider {
	case "openai":
		return newOpenAIProvider(cfg), nil
	case "gemini":
		return newGeminiProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unknown oracle provider %q", cfg.Provider)
	}
}

type disabled struct{}

func (disabled) Classify(context.Context, string, string) (string, error) {
	return "", ErrNotConfigured
}

func (disabled) Suggest(context.Context, string, string) (string, error) {
	return "", ErrNotConfigured
}

func (disabled) Generate(context.Context, string, string) (string, error) {
	return "", ErrNotConfigured
}
