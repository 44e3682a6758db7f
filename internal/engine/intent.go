package engine

import "strings"

// Intent classification is keyword-driven, mirroring the remote service's
// router: each intent has a keyword list, the score is the share of matched
// keywords weighted so that a couple of strong hits clear the routing gate.

const routingGate = 0.7

var intentKeywords = map[string][]string{
	"voyage_planning": {
		"voyage", "route", "passage", "eta", "distance", "transit",
		"canal", "suez", "panama", "sail", "plan a voyage", "weather routing",
	},
	"cargo_matching": {
		"cargo", "tonnage", "charter", "fixture", "laycan", "stem",
		"find vessels", "match", "coal", "grain", "iron ore",
	},
	"market_insights": {
		"market", "rates", "freight rate", "index", "bdi", "trend",
		"earnings", "outlook", "capesize rates", "panamax rates",
	},
	"port_intelligence": {
		"port", "berth", "terminal", "congestion", "anchorage",
		"draft restriction", "facilities", "port dues", "waiting time",
	},
	"pda_management": {
		"pda", "disbursement", "agency fee", "port cost", "port call cost",
		"proforma", "da ", "husbandry",
	},
}

// classifyIntent returns the best-scoring intent and its confidence in
// [0.0, 1.0]. Messages matching nothing fall back to "general" with zero
// confidence.
func classifyIntent(message string) (string, float64) {
	lower := strings.ToLower(message)

	bestIntent := "general"
	bestScore := 0.0
	for intent, keywords := range intentKeywords {
		hits := 0
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}

		// one hit is a hint, two or more is a confident route
		score := 0.5 + 0.3*float64(hits-1)
		if score > 0.95 {
			score = 0.95
		}
		if score > bestScore {
			bestScore = score
			bestIntent = intent
		}
	}
	return bestIntent, bestScore
}

var knownPorts = []string{
	"singapore", "rotterdam", "houston", "shanghai", "santos",
	"qingdao", "mumbai", "fujairah", "gibraltar",
}

var knownVesselTypes = []string{
	"panamax", "capesize", "supramax", "handysize", "vlcc", "aframax",
}

// extractEntities pulls the ports and vessel types the responders work from.
func extractEntities(message string) map[string]interface{} {
	lower := strings.ToLower(message)

	var ports []string
	for _, p := range knownPorts {
		if strings.Contains(lower, p) {
			ports = append(ports, p)
		}
	}

	var vessels []string
	for _, v := range knownVesselTypes {
		if strings.Contains(lower, v) {
			vessels = append(vessels, v)
		}
	}

	entities := map[string]interface{}{}
	if len(ports) > 0 {
		entities["ports"] = ports
	}
	if len(vessels) > 0 {
		entities["vessel_types"] = vessels
	}
	return entities
}
