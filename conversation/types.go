// Package conversation drives the form filling dialogue: it asks one
// question at a time, normalizes and validates the answers, keeps the
// transcript, and follows the applicant when they switch languages.
package conversation

import (
	"time"

	"github.com/google/uuid"
)

// Role tells who produced a transcript message.
type Role string

const (
	RoleBot    Role = "bot"
	RoleUser   Role = "user"
	RoleSystem Role = "system"
)

// Message is one entry of the transcript. FieldID is set on bot messages
// that ask for a specific field, so those can be re-localized later.
type Message struct {
	ID      string    `json:"id"`
	Role    Role      `json:"role"`
	Text    string    `json:"text"`
	Time    time.Time `json:"time"`
	FieldID string    `json:"fieldId,omitempty"`
}

func newMessage(role Role, text, fieldID string) Message {
	return Message{
		ID:      uuid.NewString(),
		Role:    role,
		Text:    text,
		Time:    time.Now(),
		FieldID: fieldID,
	}
}

// Values holds the collected form values keyed by field id.
type Values map[string]string

func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Filled counts the non-empty values.
func (v Values) Filled() int {
	n := 0
	for _, val := range v {
		if val != "" {
			n++
		}
	}
	return n
}

// State is the full conversation state of one session. Seq increments on
// every committed mutation; a model response that started against an older
// Seq is stale and gets dropped instead of applied.
type State struct {
	Language         string    `json:"language"`
	Cursor           int       `json:"cursor"`
	Values           Values    `json:"values"`
	Messages         []Message `json:"messages"`
	LastAskedFieldID string    `json:"lastAskedFieldId,omitempty"`
	Completed        bool      `json:"completed"`
	Seq              uint64    `json:"seq"`
}

func newState(language string) *State {
	return &State{
		Language: language,
		Values:   Values{},
	}
}
