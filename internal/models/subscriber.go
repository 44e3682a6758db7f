package models

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// Subscriber is a dashboard websocket connection receiving transcript pushes.
type Subscriber struct {
	Id   uuid.UUID       `json:"subscriberId"`
	Conn *websocket.Conn `json:"-"`
}
