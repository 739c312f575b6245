package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger so every draw leaves an audit trail.
// It satisfies Source itself and can be handed to anything that takes one.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that draws from src and logs each draw to logger.
//
// Precondition: src must be non-nil; a nil logger disables logging.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Roller{src: src, logger: logger}
}

// Intn draws from the underlying source and logs the result at debug level.
//
// Precondition: n > 0.
// Postcondition: Returns a value in [0, n).
func (r *Roller) Intn(n int) int {
	v := r.src.Intn(n)
	r.logger.Debug("random draw",
		zap.Int("n", n),
		zap.Int("value", v),
	)
	return v
}
