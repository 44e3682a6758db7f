package models

import "time"

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Alert is a seeded operational notice shown in the dashboard feed. The feed
// is display-only; dismiss and action controls are stubs.
type Alert struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"` // high | medium | low
	Category  string    `json:"category"` // weather | market | vessel | port | cost
	Timestamp time.Time `json:"timestamp"`
}

// SeverityStyle is the color/label pair a severity renders with.
type SeverityStyle struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

var severityStyles = map[Severity]SeverityStyle{
	SeverityHigh:   {Color: "red", Label: "Critical"},
	SeverityMedium: {Color: "amber", Label: "Important"},
	SeverityLow:    {Color: "green", Label: "Info"},
}

// StyleFor maps a severity to its display style, falling back to a gray
// "Notice" for anything unrecognized.
func StyleFor(s Severity) SeverityStyle {
	if style, ok := severityStyles[s]; ok {
		return style
	}
	return SeverityStyle{Color: "gray", Label: "Notice"}
}
