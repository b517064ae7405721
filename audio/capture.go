package audio

import "sync"

// CaptureSink records submitted buffers in memory. It never touches an
// audio device, which makes it suitable for tests and offline renders.
type CaptureSink struct {
	mu      sync.Mutex
	buffers [][]float64
	rates   []float64
}

// NewCaptureSink creates an empty capture sink.
func NewCaptureSink() *CaptureSink {
	return &CaptureSink{}
}

// Submit stores a copy of buf together with its sample rate.
func (s *CaptureSink) Submit(buf []float64, sampleRate float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffers = append(s.buffers, append([]float64(nil), buf...))
	s.rates = append(s.rates, sampleRate)
	return nil
}

// WaitForIdle returns immediately: captured buffers are drained the
// moment Submit stores them.
func (s *CaptureSink) WaitForIdle() {}

// Buffers returns copies of all captured buffers in submission order.
func (s *CaptureSink) Buffers() [][]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]float64, len(s.buffers))
	for i, buf := range s.buffers {
		out[i] = append([]float64(nil), buf...)
	}
	return out
}

// Rates returns the sample rate recorded with each captured buffer.
func (s *CaptureSink) Rates() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]float64(nil), s.rates...)
}

// Len reports how many buffers have been captured.
func (s *CaptureSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buffers)
}

// Reset discards all captured buffers.
func (s *CaptureSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffers = nil
	s.rates = nil
}
