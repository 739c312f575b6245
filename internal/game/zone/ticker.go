package zone

import (
	"time"

	"go.uber.org/zap"
)

// tickerState is the two-state lifecycle of a room's maintenance ticker:
// stopped until the first member arrives, running while anyone is joined.
type tickerState struct {
	running bool
	stop    chan struct{}
}

// ensureTickingLocked starts the ticker if it is stopped. Idempotent.
func (r *Room) ensureTickingLocked() {
	if r.tick.running || r.closed {
		return
	}
	stop := make(chan struct{})
	r.tick = tickerState{running: true, stop: stop}
	r.tickers.Add(1)
	go r.runTicker(stop)
	r.logger.Debug("maintenance ticker started", zap.Duration("interval", r.cfg.TickInterval))
}

// stopIfEmptyLocked stops the ticker when no player is joined. Idempotent.
func (r *Room) stopIfEmptyLocked() {
	if r.sessions.Count() > 0 {
		return
	}
	r.stopTickerLocked()
}

func (r *Room) stopTickerLocked() {
	if !r.tick.running {
		return
	}
	close(r.tick.stop)
	r.tick = tickerState{}
	r.logger.Debug("maintenance ticker stopped")
}

// Ticking reports whether the maintenance ticker is running.
func (r *Room) Ticking() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tick.running
}

func (r *Room) runTicker(stop <-chan struct{}) {
	defer r.tickers.Done()
	t := time.NewTicker(r.cfg.TickInterval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			r.Tick()
		}
	}
}

// Tick runs one maintenance pass: every session unseen for the idle timeout
// is forced to leave. The ticker stops itself once the room empties.
//
// Postcondition: Returns the reclaimed player ids in sorted order.
func (r *Room) Tick() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	idle := r.sessions.Idle(r.now(), r.cfg.IdleTimeout)
	for _, id := range idle {
		r.leaveLocked(id, "idle")
	}
	if len(idle) > 0 {
		r.logger.Info("idle sessions reclaimed",
			zap.Strings("players", idle),
			zap.Int("remaining", r.sessions.Count()),
		)
	}
	return idle
}
