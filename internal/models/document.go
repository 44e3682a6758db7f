package models

import "time"

// UploadedDocument lives for the session only; it is never persisted.
type UploadedDocument struct {
	Name       string    `json:"name"`
	Type       string    `json:"type"` // MIME type as reported at upload
	Content    string    `json:"content"`
	UploadedAt time.Time `json:"uploadedAt"`
	Size       int64     `json:"size"`
}

// DocumentPayload is the projection of an uploaded document sent to the
// backend: size and timestamp are stripped.
type DocumentPayload struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Payload strips the session-local fields.
func (d UploadedDocument) Payload() DocumentPayload {
	return DocumentPayload{Name: d.Name, Type: d.Type, Content: d.Content}
}
