package adapter

import (
	"context"

	"github.com/darrylwongqz/ai-text-editor/internal/transform"
)

// Transformer defines the contract for text transformation backends.
type Transformer interface {
	Name() string
	Transform(ctx context.Context, text string, action transform.Action, targetLanguage string) (string, error)
}
