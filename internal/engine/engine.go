package engine

import (
	"context"
	"log"

	"github.com/imehub/maritime-assistant-web/internal/models"
)

// Engine answers the chat contract in process, standing in for the remote
// maritime AI service when no backend URL is configured. It reproduces the
// remote router's observable behavior: keyword intent classification with a
// 0.7 confidence gate, one responder per specialist intent and the general
// responder as fallback.
type Engine struct{}

func New() *Engine {
	return &Engine{}
}

type responder func(message string, entities map[string]interface{}) *models.ChatResponse

func (e *Engine) Chat(_ context.Context, req *models.ChatRequest) (*models.ChatResponse, error) {
	intent, confidence := classifyIntent(req.Message)
	entities := extractEntities(req.Message)

	var respond responder
	if confidence > routingGate {
		switch intent {
		case "voyage_planning":
			respond = planVoyage
		case "cargo_matching":
			respond = matchCargo
		case "market_insights":
			respond = marketInsights
		case "port_intelligence":
			respond = portIntelligence
		case "pda_management":
			respond = pdaManagement
		}
	}
	if respond == nil {
		respond = generalResponse
	}

	resp := respond(req.Message, entities)
	resp.Intent = intent
	resp.Confidence = confidence
	if len(entities) > 0 {
		resp.Entities = entities
	}

	// thread routing state back so follow-ups can lean on it
	resp.ConversationContext = map[string]interface{}{
		"last_intent": intent,
		"last_agent":  resp.Agent,
	}
	if ports, ok := entities["ports"]; ok {
		resp.ConversationContext["last_ports"] = ports
	}
	if req.UseContext && len(req.UploadedDocuments) > 0 {
		resp.ConversationContext["document_count"] = len(req.UploadedDocuments)
	}

	log.Printf("engine: intent=%s confidence=%.2f agent=%s", intent, confidence, resp.Agent)
	return resp, nil
}

func (e *Engine) Status(_ context.Context) (*models.StatusResponse, error) {
	return &models.StatusResponse{
		Status: "operational",
		Agents: map[string]bool{
			"general":           true,
			"voyage_planner":    true,
			"cargo_matcher":     true,
			"market_insights":   true,
			"port_intelligence": true,
			"pda_management":    true,
		},
		APIs: map[string]bool{
			"weather": true,
			"ais":     true,
			"llm":     true,
		},
	}, nil
}
