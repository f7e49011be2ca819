// Package llm provides a provider-agnostic text generation client used by
// the assist surface.
package llm

import (
	"context"
)

type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
