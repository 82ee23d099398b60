package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/darrylwongqz/ai-text-editor/internal/transform"
)

// MockAdapter returns simulated responses with a configurable delay.
// Used for frontend development and testing without an upstream API key.
type MockAdapter struct {
	Delay time.Duration
}

func (m *MockAdapter) Name() string { return "Mock" }

// Transform echoes the trimmed text prefixed with the resolved instruction,
// e.g. "[translate into spanish] Hola".
func (m *MockAdapter) Transform(ctx context.Context, text string, action transform.Action, targetLanguage string) (string, error) {
	prompt, err := transform.Resolve(action, targetLanguage)
	if err != nil {
		return "", err
	}

	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return "", fmt.Errorf("mock: %w", ctx.Err())
		}
	}

	return strings.TrimSpace(fmt.Sprintf("[%s] %s", prompt.Instruction, strings.TrimSpace(text))), nil
}
