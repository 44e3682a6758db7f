package services

import "time"

// Rotator advances a callback on a fixed interval until stopped. Both the
// alert feed and the landing feature carousel run on one of these; owners
// must call Stop when they go away so no ticks land on stale state.
type Rotator struct {
	ticker *time.Ticker
	done   chan struct{}
}

func StartRotator(interval time.Duration, advance func()) *Rotator {
	r := &Rotator{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}

	go func() {
		for {
			select {
			case <-r.ticker.C:
				advance()
			case <-r.done:
				return
			}
		}
	}()

	return r
}

// Stop cancels the rotation. Safe to call once.
func (r *Rotator) Stop() {
	r.ticker.Stop()
	close(r.done)
}
