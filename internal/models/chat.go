package models

// ChatRequest is the body posted to the backend chat endpoint.
type ChatRequest struct {
	Message             string              `json:"message"`
	UserID              string              `json:"user_id"`
	UseContext          bool                `json:"use_context"`
	Timestamp           string              `json:"timestamp"` // ISO-8601
	ConversationContext ConversationContext `json:"conversation_context"`
	UploadedDocuments   []DocumentPayload   `json:"uploaded_documents"`
}

// ChatResponse is the backend's reply. Text is usually a plain string but the
// contract allows a structured payload, so it is decoded as interface{} and
// serialized for display when it is not a string.
type ChatResponse struct {
	Status              string                 `json:"status"`
	Text                interface{}            `json:"text"`
	Agent               string                 `json:"agent,omitempty"`
	Data                map[string]interface{} `json:"data,omitempty"`
	Intent              string                 `json:"intent,omitempty"`
	Confidence          float64                `json:"confidence,omitempty"`
	Entities            map[string]interface{} `json:"entities,omitempty"`
	ConversationContext map[string]interface{} `json:"conversation_context,omitempty"`
}

// StatusResponse is the backend health report. Agents and APIs carry the
// per-component operational flags the backend exposes alongside the status
// string; only Status is required by the contract.
type StatusResponse struct {
	Status string          `json:"status"`
	Agents map[string]bool `json:"agents,omitempty"`
	APIs   map[string]bool `json:"apis,omitempty"`
}
