package transform

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownAction = errors.New("unknown action")

// Action is the transformation a caller asks for.
type Action string

const (
	Paraphrase Action = "paraphrase"
	Expand     Action = "expand"
	Summarize  Action = "summarize"
	Translate  Action = "translate"
)

// Actions lists every supported action in a stable order.
var Actions = []Action{Paraphrase, Expand, Summarize, Translate}

// ParseAction maps the lowercase wire name to an Action.
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case Paraphrase, Expand, Summarize, Translate:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
}

func (a *Action) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("action must be a string")
	}
	if s == "" {
		*a = ""
		return nil
	}
	parsed, err := ParseAction(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// PromptSpec is the resolved system message and instruction phrase for one request.
type PromptSpec struct {
	SystemMessage string
	Instruction   string
}

// Resolve returns the prompt pieces for action. targetLanguage is only
// consulted for Translate, where it must be non-blank.
func Resolve(action Action, targetLanguage string) (PromptSpec, error) {
	switch action {
	case Paraphrase:
		return PromptSpec{
			SystemMessage: "You are a helpful assistant that paraphrases text.",
			Instruction:   "paraphrase",
		}, nil
	case Expand:
		return PromptSpec{
			SystemMessage: "You are a helpful assistant that expands on text.",
			Instruction:   "expand on",
		}, nil
	case Summarize:
		return PromptSpec{
			SystemMessage: "You are a helpful assistant that summarizes text.",
			Instruction:   "summarize",
		}, nil
	case Translate:
		if strings.TrimSpace(targetLanguage) == "" {
			return PromptSpec{}, MissingParameter("target_language is required for translation")
		}
		return PromptSpec{
			SystemMessage: "You are a helpful assistant that translates text.",
			Instruction:   "translate into " + targetLanguage,
		}, nil
	default:
		return PromptSpec{}, MissingParameter(fmt.Sprintf("unsupported action %q", string(action)))
	}
}

// UserMessage builds the user turn sent upstream.
func UserMessage(instruction, text string) string {
	return fmt.Sprintf("Please %s the following text:\n\n%s", instruction, text)
}
