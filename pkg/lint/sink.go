package lint

import "sync"

// Sink collects diagnostics for one module in the order they are reported.
// The engine reports in traversal order, so sink order is source order for
// visitor rules. A Sink is safe for concurrent reporters.
type Sink struct {
	mu    sync.Mutex
	diags []Diagnostic
}

// NewSink creates an empty sink.
func NewSink() *Sink {
	return &Sink{}
}

// Append adds a diagnostic to the sink.
func (s *Sink) Append(d Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diags = append(s.diags, d)
}

// Len returns the number of collected diagnostics.
func (s *Sink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.diags)
}

// Diagnostics returns the collected diagnostics in report order.
func (s *Sink) Diagnostics() []Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Diagnostic, len(s.diags))
	copy(out, s.diags)
	return out
}
