package dice

import "sync"

// ScriptedSource replays a fixed sequence of values, wrapping around when
// exhausted. Each value is reduced modulo n, so tests can script outcomes
// without knowing the exact range requested.
type ScriptedSource struct {
	mu     sync.Mutex
	values []int
	next   int
}

// NewScriptedSource returns a Source that yields values in order.
//
// Precondition: values must be non-empty and non-negative.
func NewScriptedSource(values ...int) *ScriptedSource {
	return &ScriptedSource{values: values}
}

// Intn returns the next scripted value modulo n.
func (s *ScriptedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}
