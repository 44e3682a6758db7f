package services

import (
	"sync"
	"time"

	"github.com/imehub/maritime-assistant-web/internal/models"
)

const alertRotationInterval = 5 * time.Second

// AlertFeed holds the seeded operational alerts and rotates the focused one.
// The set is static for the process lifetime; dismiss/action controls on the
// dashboard are stubs with no backend call behind them.
type AlertFeed struct {
	alerts  []models.Alert
	focus   int
	mu      sync.Mutex
	rotator *Rotator
}

func NewAlertFeed() *AlertFeed {
	return &AlertFeed{alerts: seedAlerts()}
}

// StartRotation begins advancing focus every five seconds. Callers own the
// teardown via StopRotation.
func (f *AlertFeed) StartRotation() {
	if f.rotator != nil {
		return
	}
	f.rotator = StartRotator(alertRotationInterval, f.Advance)
}

func (f *AlertFeed) StopRotation() {
	if f.rotator != nil {
		f.rotator.Stop()
		f.rotator = nil
	}
}

// Advance moves focus to the next alert, wrapping modulo the set size.
func (f *AlertFeed) Advance() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.alerts) == 0 {
		return
	}
	f.focus = (f.focus + 1) % len(f.alerts)
}

// Focus jumps directly to the given index, wrapped into range.
func (f *AlertFeed) Focus(i int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.alerts) == 0 {
		return
	}
	f.focus = ((i % len(f.alerts)) + len(f.alerts)) % len(f.alerts)
}

func (f *AlertFeed) Focused() (models.Alert, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.alerts[f.focus], f.focus
}

func (f *AlertFeed) Alerts() []models.Alert {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Alert, len(f.alerts))
	copy(out, f.alerts)
	return out
}

func seedAlerts() []models.Alert {
	now := time.Now()
	return []models.Alert{
		{
			ID:        "alert-001",
			Title:     "Severe weather on North Atlantic routes",
			Message:   "Storm system developing west of the Azores; vessels on TA routes should expect 6-8m swells over the next 48 hours.",
			Severity:  models.SeverityHigh,
			Category:  "weather",
			Timestamp: now.Add(-15 * time.Minute),
		},
		{
			ID:        "alert-002",
			Title:     "Capesize rates up 12% week on week",
			Message:   "Iron ore demand out of Brazil is pushing C3 rates higher; consider forward cover for Q4 stems.",
			Severity:  models.SeverityMedium,
			Category:  "market",
			Timestamp: now.Add(-2 * time.Hour),
		},
		{
			ID:        "alert-003",
			Title:     "AIS gap detected for MV Coral Trader",
			Message:   "No AIS position received for 6 hours in the Gulf of Guinea; last reported position 3.2N 6.8E.",
			Severity:  models.SeverityHigh,
			Category:  "vessel",
			Timestamp: now.Add(-6 * time.Hour),
		},
		{
			ID:        "alert-004",
			Title:     "Congestion building at Santos",
			Message:   "Waiting time at Santos grain terminals has reached 9 days; berthing line-up shows 23 vessels.",
			Severity:  models.SeverityMedium,
			Category:  "port",
			Timestamp: now.Add(-12 * time.Hour),
		},
		{
			ID:        "alert-005",
			Title:     "Singapore VLSFO down $8/mt",
			Message:   "Bunker prices eased on the week; Singapore VLSFO assessed at $562/mt, Rotterdam at $548/mt.",
			Severity:  models.SeverityLow,
			Category:  "cost",
			Timestamp: now.Add(-24 * time.Hour),
		},
	}
}
