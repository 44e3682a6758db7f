package engine

import (
	"fmt"
	"strings"

	"github.com/imehub/maritime-assistant-web/internal/models"
)

var capabilities = []string{
	"Voyage Planning & Optimization",
	"Cargo & Tonnage Matching",
	"Market & Commercial Insights",
	"Port & Cargo Intelligence",
	"PDA & Cost Management",
}

var suggestedAgentNames = map[string]string{
	"voyage_planning":   "Voyage Planner",
	"cargo_matching":    "Cargo Matcher",
	"market_insights":   "Market Insights",
	"port_intelligence": "Port Intelligence",
	"pda_management":    "PDA Management",
}

// generalResponse handles everything below the routing gate: greetings,
// capability questions, broad maritime topics, and near-miss intents where
// it suggests the right specialist instead of answering itself.
func generalResponse(message string, _ map[string]interface{}) *models.ChatResponse {
	lower := strings.ToLower(message)

	if intent, confidence := classifyIntent(message); confidence > 0.45 && intent != "general" {
		name := suggestedAgentNames[intent]
		return &models.ChatResponse{
			Status: "success",
			Agent:  "General",
			Data: map[string]interface{}{
				"suggested_agent": name,
				"message":         message,
			},
			Text: fmt.Sprintf(
				"I understand you're asking about %s. Our %s can give you a more detailed answer; rephrase with specifics like ports, vessel type or cargo and I'll route you there.",
				strings.ReplaceAll(intent, "_", " "), name),
		}
	}

	switch {
	case containsAny(lower, "help", "what can you do", "capabilities", "features"):
		return &models.ChatResponse{
			Status: "success",
			Agent:  "General",
			Data:   map[string]interface{}{"capabilities": capabilities},
			Text: fmt.Sprintf(
				"I'm your Maritime AI Assistant! I can help you with: %s. Just ask about voyage planning, cargo matching, market insights, port information or PDA management.",
				strings.Join(capabilities, ", ")),
		}

	case containsAny(lower, "hello", "hi ", "hey", "good morning", "good afternoon"):
		return &models.ChatResponse{
			Status: "success",
			Agent:  "General",
			Data:   map[string]interface{}{"greeting": true},
			Text:   "Hello! I'm your Maritime AI Assistant, ready to help with all your maritime operations. How can I assist you today?",
		}

	case containsAny(lower, "weather", "storm", "sea conditions", "wave", "wind"):
		return &models.ChatResponse{
			Status: "success",
			Agent:  "General",
			Data:   map[string]interface{}{"topic": "weather_conditions"},
			Text:   "I can help with weather and sea conditions for voyage planning. Name the route or coordinates you're interested in and the Voyage Planner will work up the detail.",
		}

	case containsAny(lower, "maritime", "shipping", "vessel", "ocean"):
		return &models.ChatResponse{
			Status: "success",
			Agent:  "General",
			Data:   map[string]interface{}{"topic": "maritime_general"},
			Text:   "I'm here to help with all aspects of maritime operations: voyage planning, cargo optimization, market analysis, port intelligence and cost management. What would you like to explore?",
		}
	}

	return &models.ChatResponse{
		Status: "success",
		Agent:  "General",
		Data:   map[string]interface{}{"message": message},
		Text:   "I can help with voyage planning, cargo matching, market insights, port intelligence and PDA management. Could you tell me a bit more about what you need?",
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
