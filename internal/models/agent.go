package models

// Agent is a display persona. The registry is fixed at compile time and the
// records are never mutated; selecting a persona only changes labeling, the
// backend decides the actual routing.
type Agent struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Avatar       string   `json:"avatar"` // single glyph shown next to the name
	Description  string   `json:"description"`
	Color        string   `json:"color"` // accent color for the persona card
	Capabilities []string `json:"capabilities"`
}

const DefaultAgentID = "general"

var Agents = []Agent{
	{
		ID:          "general",
		Name:        "General",
		Avatar:      "⚓",
		Description: "Handles general maritime queries and routes specialist questions.",
		Color:       "#2563eb",
		Capabilities: []string{
			"Intent routing",
			"Maritime Q&A",
			"Capability overview",
		},
	},
	{
		ID:          "voyage_planner",
		Name:        "Voyage Planner",
		Avatar:      "🧭",
		Description: "Plans and optimizes voyages: routes, canals, weather, ETA and fuel.",
		Color:       "#0891b2",
		Capabilities: []string{
			"Route selection",
			"Canal transit analysis",
			"ETA and fuel estimation",
		},
	},
	{
		ID:          "cargo_matching",
		Name:        "Cargo Matcher",
		Avatar:      "📦",
		Description: "Matches cargoes with suitable tonnage and open positions.",
		Color:       "#d97706",
		Capabilities: []string{
			"Cargo-tonnage matching",
			"Laycan fit checks",
			"Fixture candidates",
		},
	},
	{
		ID:          "market_insights",
		Name:        "Market Insights",
		Avatar:      "📈",
		Description: "Tracks freight markets, indices and commercial trends.",
		Color:       "#16a34a",
		Capabilities: []string{
			"Freight rate outlook",
			"Index tracking",
			"Trend commentary",
		},
	},
	{
		ID:          "port_intelligence",
		Name:        "Port Intelligence",
		Avatar:      "🏗",
		Description: "Provides port, berth and congestion intelligence.",
		Color:       "#7c3aed",
		Capabilities: []string{
			"Berth availability",
			"Congestion reports",
			"Draft restrictions",
		},
	},
	{
		ID:          "pda_management",
		Name:        "PDA Management",
		Avatar:      "🧾",
		Description: "Manages port disbursement accounts and call cost estimates.",
		Color:       "#dc2626",
		Capabilities: []string{
			"PDA estimation",
			"Cost breakdowns",
			"Agency fee review",
		},
	},
}

// AgentByID looks a persona up in the registry; ok is false for unknown ids.
func AgentByID(id string) (Agent, bool) {
	for _, a := range Agents {
		if a.ID == id {
			return a, true
		}
	}
	return Agent{}, false
}

// DefaultAgent is the fallback persona used when the backend reports a
// failure or names no agent.
func DefaultAgent() Agent {
	a, _ := AgentByID(DefaultAgentID)
	return a
}
