package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/imehub/maritime-assistant-web/internal/models"
)

const (
	errorReplyText   = "The assistant encountered an error while processing your request. Please try again."
	failureReplyText = "The request could not be processed."
)

// ErrRequestPending is returned when a send arrives while a request is
// already in flight; submission stays disabled until the current one
// resolves.
var ErrRequestPending = errors.New("a request is already in flight")

// SessionService owns the chat sessions: transcript, conversation context,
// uploaded documents and the single network call per message. All mutation
// goes through its methods.
type SessionService struct {
	Manager *models.SessionManager
	backend ChatBackend
	userID  string
	now     func() time.Time
}

func NewSessionService(backend ChatBackend, userID string) *SessionService {
	return &SessionService{
		Manager: &models.SessionManager{Sessions: make(map[string]*models.Session)},
		backend: backend,
		userID:  userID,
		now:     time.Now,
	}
}

func (s *SessionService) CreateSession(id string) *models.Session {
	sess := &models.Session{
		SessionID:    uuid.New(),
		CreatedAt:    s.now(),
		Context:      models.ConversationContext{},
		CurrentAgent: models.DefaultAgent().Name,
		Subscribers:  make(map[uuid.UUID]*models.Subscriber),
	}

	s.Manager.Mu.Lock()
	s.Manager.Sessions[id] = sess
	s.Manager.Mu.Unlock()

	log.Printf("Session created: %s (%s)", id, sess.SessionID)
	return sess
}

func (s *SessionService) GetSession(id string) *models.Session {
	s.Manager.Mu.Lock()
	defer s.Manager.Mu.Unlock()
	return s.Manager.Sessions[id]
}

// GetOrCreateSession is used by the dashboard entry point: one session per
// browser cookie.
func (s *SessionService) GetOrCreateSession(id string) *models.Session {
	if sess := s.GetSession(id); sess != nil {
		return sess
	}
	return s.CreateSession(id)
}

type SendResult struct {
	UserMessage  *models.Message
	AgentMessage *models.Message
}

// SendMessage runs one request/response cycle. The user message is appended
// synchronously before any network activity; exactly one agent message is
// appended on every resolution path (success, reported failure, transport
// error); the pending flag is cleared unconditionally on the way out.
// Blank or whitespace-only input is a no-op.
func (s *SessionService) SendMessage(ctx context.Context, sess *models.Session, text string, useContext bool) (*SendResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	sess.Mu.Lock()
	if sess.Pending {
		sess.Mu.Unlock()
		return nil, ErrRequestPending
	}
	sess.Pending = true

	userMsg := models.Message{
		ID:        uuid.New().String(),
		Sender:    models.SenderUser,
		Text:      text,
		Timestamp: s.now(),
	}
	sess.Messages = append(sess.Messages, userMsg)

	contextCopy := models.ConversationContext{}
	contextCopy.Merge(sess.Context)
	docs := make([]models.DocumentPayload, 0, len(sess.Documents))
	for _, d := range sess.Documents {
		docs = append(docs, d.Payload())
	}
	sess.Mu.Unlock()

	s.broadcast(sess, userMsg)

	defer func() {
		sess.Mu.Lock()
		sess.Pending = false
		sess.Mu.Unlock()
	}()

	req := &models.ChatRequest{
		Message:             text,
		UserID:              s.userID,
		UseContext:          useContext,
		Timestamp:           s.now().Format(time.RFC3339),
		ConversationContext: contextCopy,
		UploadedDocuments:   docs,
	}

	resp, err := s.backend.Chat(ctx, req)

	var agentMsg models.Message
	switch {
	case err != nil:
		log.Printf("chat request failed: %v", err)
		agentMsg = models.Message{
			ID:     uuid.New().String(),
			Sender: models.SenderAgent,
			Text:   errorReplyText,
			Agent:  models.DefaultAgent().Name,
			// diagnostic side channel, not rendered to the user
			Data:      map[string]interface{}{"error": err.Error()},
			Timestamp: s.now(),
		}

	case resp.Status == "success":
		agentName := resp.Agent
		if agentName == "" {
			agentName = models.DefaultAgent().Name
		}
		agentMsg = models.Message{
			ID:         uuid.New().String(),
			Sender:     models.SenderAgent,
			Text:       displayText(resp.Text, ""),
			Agent:      agentName,
			Data:       resp.Data,
			Intent:     resp.Intent,
			Confidence: resp.Confidence,
			Entities:   resp.Entities,
			Timestamp:  s.now(),
		}

		sess.Mu.Lock()
		sess.CurrentAgent = agentName
		sess.Context.Merge(resp.ConversationContext)
		sess.Mu.Unlock()

	default:
		agentMsg = models.Message{
			ID:        uuid.New().String(),
			Sender:    models.SenderAgent,
			Text:      displayText(resp.Text, failureReplyText),
			Agent:     models.DefaultAgent().Name,
			Data:      resp.Data,
			Timestamp: s.now(),
		}
	}

	sess.Mu.Lock()
	sess.Messages = append(sess.Messages, agentMsg)
	sess.Mu.Unlock()

	s.broadcast(sess, agentMsg)

	return &SendResult{UserMessage: &userMsg, AgentMessage: &agentMsg}, nil
}

// SelectAgent is cosmetic: it changes the displayed persona and drops an
// informational message into the transcript. It does not change how the
// backend routes, that stays server-side.
func (s *SessionService) SelectAgent(sess *models.Session, agentID string) (*models.Message, error) {
	agent, ok := models.AgentByID(agentID)
	if !ok {
		return nil, fmt.Errorf("unknown agent %q", agentID)
	}

	msg := models.Message{
		ID:     uuid.New().String(),
		Sender: models.SenderAgent,
		Text: fmt.Sprintf("%s %s — %s Capabilities: %s.",
			agent.Avatar, agent.Name, agent.Description, strings.Join(agent.Capabilities, ", ")),
		Agent:     agent.Name,
		Timestamp: s.now(),
	}

	sess.Mu.Lock()
	sess.CurrentAgent = agent.Name
	sess.Messages = append(sess.Messages, msg)
	sess.Mu.Unlock()

	s.broadcast(sess, msg)
	return &msg, nil
}

// ClearSession empties the transcript, the context and the documents and
// resets the persona label.
func (s *SessionService) ClearSession(sess *models.Session) {
	sess.Mu.Lock()
	sess.Messages = nil
	sess.Context = models.ConversationContext{}
	sess.Documents = nil
	sess.CurrentAgent = models.DefaultAgent().Name
	sess.Mu.Unlock()
}

// AddDocuments appends processed documents to the session.
func (s *SessionService) AddDocuments(sess *models.Session, docs []models.UploadedDocument) {
	sess.Mu.Lock()
	sess.Documents = append(sess.Documents, docs...)
	sess.Mu.Unlock()
}

// CheckStatus polls the backend once at session start; a transport failure
// leaves the "error" sentinel in the session.
func (s *SessionService) CheckStatus(ctx context.Context, sess *models.Session) string {
	status := "error"
	if resp, err := s.backend.Status(ctx); err != nil {
		log.Printf("status check failed: %v", err)
	} else {
		status = resp.Status
	}

	sess.Mu.Lock()
	sess.BackendStatus = status
	sess.Mu.Unlock()
	return status
}

// Transcript returns a snapshot copy of the message list.
func (s *SessionService) Transcript(sess *models.Session) []models.Message {
	sess.Mu.Lock()
	defer sess.Mu.Unlock()
	out := make([]models.Message, len(sess.Messages))
	copy(out, sess.Messages)
	return out
}

func (s *SessionService) AddSubscriber(sess *models.Session, sub *models.Subscriber) {
	sess.Mu.Lock()
	sess.Subscribers[sub.Id] = sub
	sess.Mu.Unlock()
}

func (s *SessionService) RemoveSubscriber(sess *models.Session, sub *models.Subscriber) {
	sess.Mu.Lock()
	delete(sess.Subscribers, sub.Id)
	sess.Mu.Unlock()
}

func (s *SessionService) broadcast(sess *models.Session, msg models.Message) {
	sess.Mu.Lock()
	subs := make([]*models.Subscriber, 0, len(sess.Subscribers))
	for _, sub := range sess.Subscribers {
		subs = append(subs, sub)
	}
	sess.Mu.Unlock()

	for _, sub := range subs {
		if sub.Conn != nil {
			if err := sub.Conn.WriteJSON(msg); err != nil {
				log.Printf("websocket push failed: %v", err)
			}
		}
	}
}

// displayText renders the backend's text field: plain strings pass through,
// structured payloads are pretty-printed, anything absent falls back.
func displayText(v interface{}, fallback string) string {
	switch t := v.(type) {
	case string:
		if t == "" && fallback != "" {
			return fallback
		}
		return t
	case nil:
		if fallback != "" {
			return fallback
		}
		return "Request processed successfully"
	default:
		pretty, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(pretty)
	}
}
