package handlers

import (
	"errors"
	"io"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/imehub/maritime-assistant-web/internal/models"
	"github.com/imehub/maritime-assistant-web/internal/services"
)

const sessionCookie = "session_id"

type Handler struct {
	Sessions  *services.SessionService
	Documents *services.DocumentService
	Alerts    *services.AlertFeed
	Features  *services.FeatureCarousel

	uploadProgress sync.Map // session cookie id -> int
}

func NewHandler(sessions *services.SessionService, documents *services.DocumentService, alerts *services.AlertFeed, features *services.FeatureCarousel) *Handler {
	return &Handler{
		Sessions:  sessions,
		Documents: documents,
		Alerts:    alerts,
		Features:  features,
	}
}

// session resolves the browser's session from its cookie, creating both the
// cookie and the session on first contact. The backend status poll happens
// exactly once, on creation.
func (h *Handler) session(c *fiber.Ctx) (string, *models.Session) {
	id := c.Cookies(sessionCookie)
	if id == "" {
		id = uuid.New().String()
		c.Cookie(&fiber.Cookie{Name: sessionCookie, Value: id, HTTPOnly: true})
	}

	if sess := h.Sessions.GetSession(id); sess != nil {
		return id, sess
	}

	sess := h.Sessions.CreateSession(id)
	h.Sessions.CheckStatus(c.Context(), sess)
	return id, sess
}

// LandingPage renders the marketing view with the rotating feature highlight.
func (h *Handler) LandingPage(c *fiber.Ctx) error {
	feature, idx := h.Features.Focused()
	return c.Render("index", fiber.Map{
		"Feature":      feature,
		"FeatureIndex": idx,
		"Agents":       models.Agents,
	})
}

// DashboardPage renders the chat workspace.
func (h *Handler) DashboardPage(c *fiber.Ctx) error {
	id, sess := h.session(c)

	sess.Mu.Lock()
	currentAgent := sess.CurrentAgent
	backendStatus := sess.BackendStatus
	sess.Mu.Unlock()

	return c.Render("dashboard", fiber.Map{
		"SessionID":     id,
		"Agents":        models.Agents,
		"CurrentAgent":  currentAgent,
		"BackendStatus": backendStatus,
		"Alerts":        h.alertViews(),
		"Messages":      h.Sessions.Transcript(sess),
	})
}

type sendMessageRequest struct {
	Text       string `json:"text" form:"text"`
	UseContext *bool  `json:"use_context" form:"use_context"`
}

// SendMessage runs one chat round-trip. Blank input is a silent no-op; a
// second submit while one is pending is refused.
func (h *Handler) SendMessage(c *fiber.Ctx) error {
	_, sess := h.session(c)

	var req sendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	useContext := true
	if req.UseContext != nil {
		useContext = *req.UseContext
	}

	result, err := h.Sessions.SendMessage(c.Context(), sess, req.Text, useContext)
	if errors.Is(err, services.ErrRequestPending) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	if result == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	sess.Mu.Lock()
	currentAgent := sess.CurrentAgent
	sess.Mu.Unlock()

	return c.JSON(fiber.Map{
		"user_message":  result.UserMessage,
		"agent_message": result.AgentMessage,
		"current_agent": currentAgent,
	})
}

type selectAgentRequest struct {
	AgentID string `json:"agent_id" form:"agent_id"`
}

func (h *Handler) SelectAgent(c *fiber.Ctx) error {
	_, sess := h.session(c)

	var req selectAgentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	msg, err := h.Sessions.SelectAgent(sess, req.AgentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": msg, "current_agent": msg.Agent})
}

func (h *Handler) ClearSession(c *fiber.Ctx) error {
	_, sess := h.session(c)
	h.Sessions.ClearSession(sess)
	return c.SendStatus(fiber.StatusNoContent)
}

// Transcript returns the session snapshot the dashboard polls on reload.
func (h *Handler) Transcript(c *fiber.Ctx) error {
	_, sess := h.session(c)

	sess.Mu.Lock()
	currentAgent := sess.CurrentAgent
	backendStatus := sess.BackendStatus
	docCount := len(sess.Documents)
	sess.Mu.Unlock()

	return c.JSON(fiber.Map{
		"messages":       h.Sessions.Transcript(sess),
		"current_agent":  currentAgent,
		"backend_status": backendStatus,
		"document_count": docCount,
	})
}

// UploadDocuments validates and processes a multipart batch. A batch with no
// allowed file is rejected whole; a processing failure abandons the batch.
func (h *Handler) UploadDocuments(c *fiber.Ctx) error {
	id, sess := h.session(c)

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "expected multipart form"})
	}

	var files []services.FileUpload
	for _, fh := range form.File["documents"] {
		f, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not read upload"})
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not read upload"})
		}
		files = append(files, services.FileUpload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	accepted, err := h.Documents.Validate(files)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"alert": err.Error()})
	}
	if len(accepted) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"alert": "no files selected"})
	}

	docs, err := h.Documents.Process(accepted, func(pct int) {
		h.uploadProgress.Store(id, pct)
	})
	if err != nil {
		h.uploadProgress.Store(id, 0)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"alert": "document processing failed, the batch was abandoned"})
	}

	h.Sessions.AddDocuments(sess, docs)
	return c.JSON(fiber.Map{"documents": docs, "progress": 100})
}

// UploadProgress reports the synthetic processing percentage.
func (h *Handler) UploadProgress(c *fiber.Ctx) error {
	id, _ := h.session(c)
	pct := 0
	if v, ok := h.uploadProgress.Load(id); ok {
		pct = v.(int)
	}
	return c.JSON(fiber.Map{"progress": pct})
}

type alertView struct {
	models.Alert
	Style models.SeverityStyle `json:"style"`
}

func (h *Handler) alertViews() []alertView {
	alerts := h.Alerts.Alerts()
	out := make([]alertView, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, alertView{Alert: a, Style: models.StyleFor(a.Severity)})
	}
	return out
}

// AlertFeed returns the full alert set plus the focused index.
func (h *Handler) AlertFeed(c *fiber.Ctx) error {
	_, focus := h.Alerts.Focused()
	return c.JSON(fiber.Map{"alerts": h.alertViews(), "focus": focus})
}

type alertFocusRequest struct {
	Index int `json:"index" form:"index"`
}

// AlertFocus jumps the feed directly to an alert.
func (h *Handler) AlertFocus(c *fiber.Ctx) error {
	var req alertFocusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	h.Alerts.Focus(req.Index)
	_, focus := h.Alerts.Focused()
	return c.JSON(fiber.Map{"focus": focus})
}

// AlertDismiss is a stub: there is no backend to dismiss against.
func (h *Handler) AlertDismiss(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// Feature returns the landing carousel's focused highlight.
func (h *Handler) Feature(c *fiber.Ctx) error {
	feature, idx := h.Features.Focused()
	return c.JSON(fiber.Map{"feature": feature, "index": idx})
}
