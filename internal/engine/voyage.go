package engine

import (
	"fmt"
	"strings"

	"github.com/imehub/maritime-assistant-web/internal/models"
)

type routeInfo struct {
	distanceNM int
	viaSuez    bool
	viaPanama  bool
}

// Major trade lanes with rough great-circle distances in nautical miles.
var routes = map[[2]string]routeInfo{
	{"singapore", "rotterdam"}: {distanceNM: 8500, viaSuez: true},
	{"singapore", "houston"}:   {distanceNM: 10500, viaPanama: true},
	{"shanghai", "rotterdam"}:  {distanceNM: 11000, viaSuez: true},
	{"shanghai", "houston"}:    {distanceNM: 12000, viaPanama: true},
	{"santos", "qingdao"}:      {distanceNM: 13000, viaPanama: true},
	{"mumbai", "rotterdam"}:    {distanceNM: 6500, viaSuez: true},
	{"mumbai", "houston"}:      {distanceNM: 9500, viaSuez: true},
}

type canalInfo struct {
	feePerTon float64
	minFee    float64
	maxDraft  float64
}

var canals = map[string]canalInfo{
	"suez":   {feePerTon: 8.5, minFee: 5000, maxDraft: 20.1},
	"panama": {feePerTon: 5.25, minFee: 800, maxDraft: 15.2},
}

type vesselPerformance struct {
	speedKn     float64
	fuelPerDay  float64 // tons
	draftMeters float64
}

var vesselTypes = map[string]vesselPerformance{
	"panamax":   {speedKn: 14, fuelPerDay: 30, draftMeters: 14.5},
	"capesize":  {speedKn: 15, fuelPerDay: 45, draftMeters: 18.5},
	"supramax":  {speedKn: 13, fuelPerDay: 25, draftMeters: 13.5},
	"handysize": {speedKn: 12, fuelPerDay: 20, draftMeters: 11.5},
	"vlcc":      {speedKn: 16, fuelPerDay: 80, draftMeters: 22.0},
	"aframax":   {speedKn: 14, fuelPerDay: 35, draftMeters: 16.0},
}

const bunkerPricePerTon = 562.0 // Singapore VLSFO benchmark

// planVoyage builds a voyage estimate when two known ports are named,
// otherwise asks for the missing pieces.
func planVoyage(message string, entities map[string]interface{}) *models.ChatResponse {
	ports, _ := entities["ports"].([]string)
	if len(ports) < 2 {
		return &models.ChatResponse{
			Status: "success",
			Agent:  "Voyage Planner",
			Data:   map[string]interface{}{"clarification_needed": true},
			Text:   "I'd be happy to plan that voyage! Please name the load and discharge ports (for example 'Plan a voyage from Singapore to Rotterdam with a capesize').",
		}
	}

	route, ok := lookupRoute(ports[0], ports[1])
	if !ok {
		return &models.ChatResponse{
			Status: "success",
			Agent:  "Voyage Planner",
			Data:   map[string]interface{}{"unknown_route": []string{ports[0], ports[1]}},
			Text:   fmt.Sprintf("I don't have %s-%s in my route table yet. Try one of the major trade lanes such as Singapore-Rotterdam or Santos-Qingdao.", titleCase(ports[0]), titleCase(ports[1])),
		}
	}

	vesselType := "panamax"
	if vts, ok := entities["vessel_types"].([]string); ok && len(vts) > 0 {
		vesselType = vts[0]
	}
	perf := vesselTypes[vesselType]

	days := float64(route.distanceNM) / (perf.speedKn * 24)
	fuelTons := days * perf.fuelPerDay
	fuelCost := fuelTons * bunkerPricePerTon

	plan := map[string]interface{}{
		"origin":        ports[0],
		"destination":   ports[1],
		"vessel_type":   vesselType,
		"distance_nm":   route.distanceNM,
		"transit_days":  round1(days),
		"fuel_tons":     round1(fuelTons),
		"fuel_cost_usd": round1(fuelCost),
		"speed_knots":   perf.speedKn,
	}

	var canalNote string
	switch {
	case route.viaSuez:
		plan["canal"] = "suez"
		canalNote = canalClause("suez", perf.draftMeters)
	case route.viaPanama:
		plan["canal"] = "panama"
		canalNote = canalClause("panama", perf.draftMeters)
	}

	return &models.ChatResponse{
		Status: "success",
		Agent:  "Voyage Planner",
		Data:   plan,
		Text: fmt.Sprintf(
			"Voyage %s → %s on a %s: %d nm, about %.1f days at %.0f knots, burning roughly %.0f tons of fuel (≈ $%.0f at current Singapore VLSFO).%s",
			titleCase(ports[0]), titleCase(ports[1]), vesselType,
			route.distanceNM, days, perf.speedKn, fuelTons, fuelCost, canalNote),
	}
}

func lookupRoute(a, b string) (routeInfo, bool) {
	if r, ok := routes[[2]string{a, b}]; ok {
		return r, true
	}
	r, ok := routes[[2]string{b, a}]
	return r, ok
}

func canalClause(canal string, draft float64) string {
	info := canals[canal]
	if draft > info.maxDraft {
		return fmt.Sprintf(" Note: vessel draft %.1fm exceeds the %s limit of %.1fm, a longer routing applies.", draft, canal, info.maxDraft)
	}
	return fmt.Sprintf(" Transit via %s (fees from $%.0f).", canal, info.minFee)
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
