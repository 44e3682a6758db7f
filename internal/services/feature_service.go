package services

import (
	"sync"
	"time"

	"github.com/imehub/maritime-assistant-web/internal/models"
)

const featureRotationInterval = 4 * time.Second

// FeatureCarousel rotates the landing page highlight through the agent
// registry, one persona at a time. Same lifecycle rules as the alert feed.
type FeatureCarousel struct {
	features []models.Agent
	focus    int
	mu       sync.Mutex
	rotator  *Rotator
}

func NewFeatureCarousel() *FeatureCarousel {
	return &FeatureCarousel{features: models.Agents}
}

func (c *FeatureCarousel) StartRotation() {
	if c.rotator != nil {
		return
	}
	c.rotator = StartRotator(featureRotationInterval, c.Advance)
}

func (c *FeatureCarousel) StopRotation() {
	if c.rotator != nil {
		c.rotator.Stop()
		c.rotator = nil
	}
}

func (c *FeatureCarousel) Advance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.focus = (c.focus + 1) % len(c.features)
}

func (c *FeatureCarousel) Focused() (models.Agent, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.features[c.focus], c.focus
}
