package llm

import (
	"context"
	"errors"
	"fmt"
)

// Options tunes a single completion request.
type Options struct {
	Temperature float32
	MaxTokens   int
}

// Client abstracts the text-completion provider.
type Client interface {
	Complete(ctx context.Context, prompt string, opts Options) (string, error)
}

// ErrUnavailable signals that no completion could be attempted: the client
// was never configured (missing credential) or the provider call failed.
// Orchestrators check for it to degrade to empty-shaped results.
var ErrUnavailable = errors.New("llm provider unavailable")

// Unconfigured is the client installed when no credential is present.
// Every call fails with ErrUnavailable; no partially-valid client is built.
type Unconfigured struct{}

// Complete always reports the provider as unavailable.
func (Unconfigured) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	_ = ctx
	_ = prompt
	_ = opts
	return "", fmt.Errorf("client not configured: %w", ErrUnavailable)
}

var _ Client = Unconfigured{}
