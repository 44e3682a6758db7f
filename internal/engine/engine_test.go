package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/imehub/maritime-assistant-web/internal/models"
)

func TestClassifyIntentRoutesVoyageQueries(t *testing.T) {
	intent, confidence := classifyIntent("Plan a voyage from Singapore to Rotterdam via the Suez canal")
	if intent != "voyage_planning" {
		t.Fatalf("intent = %q", intent)
	}
	if confidence <= routingGate {
		t.Fatalf("confidence %.2f should clear the routing gate", confidence)
	}
}

func TestClassifyIntentFallsBackToGeneral(t *testing.T) {
	intent, confidence := classifyIntent("what's for lunch")
	if intent != "general" || confidence != 0 {
		t.Fatalf("got %q/%.2f, want general/0", intent, confidence)
	}
}

func TestExtractEntities(t *testing.T) {
	entities := extractEntities("capesize from Santos to Qingdao")
	ports, _ := entities["ports"].([]string)
	if len(ports) != 2 {
		t.Fatalf("ports = %v", ports)
	}
	vessels, _ := entities["vessel_types"].([]string)
	if len(vessels) != 1 || vessels[0] != "capesize" {
		t.Fatalf("vessel_types = %v", vessels)
	}
}

func TestChatRoutesToVoyagePlanner(t *testing.T) {
	e := New()
	resp, err := e.Chat(context.Background(), &models.ChatRequest{
		Message: "Plan a voyage from Singapore to Rotterdam with a capesize, what's the transit and ETA?",
	})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}

	if resp.Status != "success" {
		t.Fatalf("status = %q", resp.Status)
	}
	if resp.Agent != "Voyage Planner" {
		t.Fatalf("agent = %q", resp.Agent)
	}
	if resp.Data["distance_nm"] != 8500 {
		t.Fatalf("distance = %v", resp.Data["distance_nm"])
	}
	text, _ := resp.Text.(string)
	if !strings.Contains(text, "Singapore") {
		t.Fatalf("summary text = %q", text)
	}
	if resp.ConversationContext["last_intent"] != "voyage_planning" {
		t.Fatalf("context = %v", resp.ConversationContext)
	}
}

func TestChatGreetingStaysWithGeneral(t *testing.T) {
	e := New()
	resp, err := e.Chat(context.Background(), &models.ChatRequest{Message: "hello"})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if resp.Agent != "General" {
		t.Fatalf("agent = %q", resp.Agent)
	}
	text, _ := resp.Text.(string)
	if !strings.Contains(text, "Maritime AI Assistant") {
		t.Fatalf("greeting text = %q", text)
	}
}

func TestChatNearMissSuggestsSpecialist(t *testing.T) {
	e := New()
	resp, err := e.Chat(context.Background(), &models.ChatRequest{Message: "tell me about the market"})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if resp.Agent != "General" {
		t.Fatalf("agent = %q, a single keyword hit must not route directly", resp.Agent)
	}
	if resp.Data["suggested_agent"] != "Market Insights" {
		t.Fatalf("data = %v", resp.Data)
	}
}

func TestChatPortIntelligence(t *testing.T) {
	e := New()
	resp, err := e.Chat(context.Background(), &models.ChatRequest{
		Message: "what's the congestion and waiting time at the port of Santos?",
	})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if resp.Agent != "Port Intelligence" {
		t.Fatalf("agent = %q", resp.Agent)
	}
	details, ok := resp.Data["port_details"].(map[string]interface{})
	if !ok || details["santos"] == nil {
		t.Fatalf("port details missing: %v", resp.Data)
	}
}

func TestStatusReport(t *testing.T) {
	e := New()
	status, err := e.Status(context.Background())
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if status.Status != "operational" {
		t.Fatalf("status = %q", status.Status)
	}
	if !status.Agents["voyage_planner"] || !status.APIs["weather"] {
		t.Fatalf("component maps incomplete: %+v", status)
	}
}
