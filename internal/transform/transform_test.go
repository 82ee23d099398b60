package transform

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name            string
		action          Action
		lang            string
		wantInstruction string
		wantSystem      string
	}{
		{"paraphrase", Paraphrase, "", "paraphrase", "You are a helpful assistant that paraphrases text."},
		{"expand", Expand, "", "expand on", "You are a helpful assistant that expands on text."},
		{"summarize", Summarize, "", "summarize", "You are a helpful assistant that summarizes text."},
		{"translate", Translate, "spanish", "translate into spanish", "You are a helpful assistant that translates text."},
		{"language ignored for non-translate", Summarize, "french", "summarize", "You are a helpful assistant that summarizes text."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.action, tt.lang)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Instruction != tt.wantInstruction {
				t.Errorf("instruction: got %q, want %q", got.Instruction, tt.wantInstruction)
			}
			if got.SystemMessage != tt.wantSystem {
				t.Errorf("system message: got %q, want %q", got.SystemMessage, tt.wantSystem)
			}
		})
	}
}

func TestResolveTranslateMissingLanguage(t *testing.T) {
	for _, lang := range []string{"", "   "} {
		_, err := Resolve(Translate, lang)
		if err == nil {
			t.Fatalf("lang %q: expected error, got nil", lang)
		}
		if KindOf(err) != KindMissingParameter {
			t.Errorf("lang %q: kind: got %v, want %v", lang, KindOf(err), KindMissingParameter)
		}
		want := "Missing parameter: target_language is required for translation"
		if err.Error() != want {
			t.Errorf("lang %q: message: got %q, want %q", lang, err.Error(), want)
		}
	}
}

func TestResolveUnknownAction(t *testing.T) {
	_, err := Resolve(Action("shout"), "")
	if KindOf(err) != KindMissingParameter {
		t.Errorf("kind: got %v, want %v", KindOf(err), KindMissingParameter)
	}
}

func TestUserMessage(t *testing.T) {
	got := UserMessage("translate into spanish", "Hello, how are you?")
	want := "Please translate into spanish the following text:\n\nHello, how are you?"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestActionUnmarshalJSON(t *testing.T) {
	var req struct {
		Action Action `json:"action"`
	}

	if err := json.Unmarshal([]byte(`{"action":"expand"}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.Action != Expand {
		t.Errorf("action: got %q, want %q", req.Action, Expand)
	}

	err := json.Unmarshal([]byte(`{"action":"Expand"}`), &req)
	if err == nil || !strings.Contains(err.Error(), "unknown action") {
		t.Errorf("expected unknown action error, got %v", err)
	}

	if err := json.Unmarshal([]byte(`{"action":""}`), &req); err != nil || req.Action != "" {
		t.Errorf("empty action: got %q, %v; want empty, nil", req.Action, err)
	}

	if err := json.Unmarshal([]byte(`{"action":3}`), &req); err == nil {
		t.Error("expected error for non-string action, got nil")
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err        *Error
		wantMsg    string
		wantStatus int
	}{
		{MissingEnvVar("OPENAI_API_KEY"), "Missing environment variable: OPENAI_API_KEY", http.StatusBadRequest},
		{MissingParameter("target_language is required for translation"), "Missing parameter: target_language is required for translation", http.StatusBadRequest},
		{RequestFailed("500 Internal Server Error - boom"), "OpenAI request failed: 500 Internal Server Error - boom", http.StatusBadRequest},
		{UnexpectedResponse(), "Unexpected response from OpenAI API", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Kind.String(), func(t *testing.T) {
			if tt.err.Error() != tt.wantMsg {
				t.Errorf("message: got %q, want %q", tt.err.Error(), tt.wantMsg)
			}
			if got := StatusCode(tt.err); got != tt.wantStatus {
				t.Errorf("status: got %d, want %d", got, tt.wantStatus)
			}
		})
	}
}

func TestStatusCodeWrapped(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", MissingEnvVar("OPENAI_API_KEY"))
	if got := StatusCode(wrapped); got != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", got, http.StatusBadRequest)
	}
	if got := StatusCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("status: got %d, want %d", got, http.StatusInternalServerError)
	}
}
