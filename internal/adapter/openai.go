package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/darrylwongqz/ai-text-editor/internal/transform"
)

const (
	openAIDefaultBaseURL = "https://api.openai.com"
	openAIChatPath       = "/v1/chat/completions"

	EnvAPIKey  = "OPENAI_API_KEY"
	EnvBaseURL = "OPENAI_API_BASE_URL"

	openAIModel       = "gpt-3.5-turbo"
	openAITemperature = 0.7
	openAIMaxTokens   = 300

	// Upstream bodies past this size are truncated on read.
	maxUpstreamBodyBytes = 1 << 20
)

// OpenAIAdapter calls an OpenAI-compatible /v1/chat/completions endpoint.
// Credentials and base URL are read from the environment on every call.
type OpenAIAdapter struct {
	Client *http.Client
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIChatRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens"`
}

type openAIChoice struct {
	Message struct {
		Content *string `json:"content"`
	} `json:"message"`
}

type openAIChatResponse struct {
	Choices []openAIChoice `json:"choices"`
}

func (o *OpenAIAdapter) Name() string {
	return "OpenAI (" + openAIModel + ")"
}

func (o *OpenAIAdapter) Transform(ctx context.Context, text string, action transform.Action, targetLanguage string) (string, error) {
	apiKey, ok := o.lookup(EnvAPIKey)
	if !ok || apiKey == "" {
		return "", transform.MissingEnvVar(EnvAPIKey)
	}

	baseURL, ok := o.lookup(EnvBaseURL)
	if !ok || baseURL == "" {
		baseURL = openAIDefaultBaseURL
	}
	url := strings.TrimRight(baseURL, "/") + openAIChatPath

	prompt, err := transform.Resolve(action, targetLanguage)
	if err != nil {
		return "", err
	}

	reqBody := openAIChatRequest{
		Model: openAIModel,
		Messages: []openAIMessage{
			{Role: "system", Content: prompt.SystemMessage},
			{Role: "user", Content: transform.UserMessage(prompt.Instruction, text)},
		},
		Temperature: openAITemperature,
		MaxTokens:   openAIMaxTokens,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", transform.RequestFailed("marshal request: " + err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", transform.RequestFailed(err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	start := time.Now()
	resp, err := o.client().Do(req)
	if err != nil {
		slog.Warn("openai request failed", "action", action, "url", url, "error", err)
		return "", transform.RequestFailed(err.Error())
	}
	defer resp.Body.Close()

	slog.Debug("openai response",
		"action", action,
		"url", url,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBodyBytes))
		return "", transform.RequestFailed(resp.Status + " - " + string(errBody))
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBodyBytes))
	if err != nil {
		return "", transform.UnexpectedResponse()
	}

	var chatResp openAIChatResponse
	if err := json.Unmarshal(raw, &chatResp); err != nil {
		return "", transform.UnexpectedResponse()
	}
	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == nil {
		return "", transform.UnexpectedResponse()
	}

	return strings.TrimSpace(*chatResp.Choices[0].Message.Content), nil
}

func (o *OpenAIAdapter) lookup(key string) (string, bool) {
	if o.LookupEnv != nil {
		return o.LookupEnv(key)
	}
	return os.LookupEnv(key)
}

func (o *OpenAIAdapter) client() *http.Client {
	if o.Client != nil {
		return o.Client
	}
	return http.DefaultClient
}
