package models

import "time"

type Sender string

const (
	SenderUser  Sender = "user"
	SenderAgent Sender = "agent"
)

// Message is one entry in a session transcript. Messages are append-only:
// once added to a transcript they are never reordered or mutated.
type Message struct {
	ID         string                 `json:"id"`
	Sender     Sender                 `json:"sender"`
	Text       string                 `json:"text"`
	Agent      string                 `json:"agent,omitempty"` // display name of the answering persona
	Data       map[string]interface{} `json:"data,omitempty"`
	Intent     string                 `json:"intent,omitempty"`
	Confidence float64                `json:"confidence,omitempty"` // 0.0 - 1.0
	Entities   map[string]interface{} `json:"entities,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
}

// ConversationContext is the open-ended key/value state threaded through the
// backend. Keys returned by the backend are shallow-merged over the current
// map (backend wins on collision); the map is only emptied on explicit clear.
type ConversationContext map[string]interface{}

// Merge overlays incoming keys onto the context.
func (c ConversationContext) Merge(incoming map[string]interface{}) {
	for k, v := range incoming {
		c[k] = v
	}
}
