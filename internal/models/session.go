package models

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session owns all state for one browser session: the transcript, the
// conversation context, the uploaded documents and the pending flag. All of
// it is process memory with session lifetime; nothing is persisted.
type Session struct {
	SessionID     uuid.UUID
	CreatedAt     time.Time
	Messages      []Message
	Context       ConversationContext
	Documents     []UploadedDocument
	Pending       bool   // one request in flight at a time
	CurrentAgent  string // display name of the last answering persona
	BackendStatus string
	Subscribers   map[uuid.UUID]*Subscriber
	Mu            sync.Mutex
}

// SessionManager tracks live sessions by cookie id.
type SessionManager struct {
	Sessions map[string]*Session
	Mu       sync.Mutex
}
