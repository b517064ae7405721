package audio

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// drainPollInterval is how often a voice goroutine checks whether its
// one-shot player has finished sounding.
const drainPollInterval = 10 * time.Millisecond

// OtoSink plays submitted buffers through the system audio device. Each
// buffer becomes a one-shot oto player, so overlapping submissions mix
// in hardware without blocking one another.
type OtoSink struct {
	ctx        *oto.Context
	sampleRate int

	mu      sync.Mutex
	closed  bool
	playing sync.WaitGroup
}

// NewOtoSink opens the system audio device for mono float32 output at
// the given sample rate and blocks until the device is ready.
func NewOtoSink(sampleRate int) (*OtoSink, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be > 0: %d", sampleRate)
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready

	return &OtoSink{ctx: ctx, sampleRate: sampleRate}, nil
}

// SampleRate returns the device sample rate in Hz.
func (s *OtoSink) SampleRate() int { return s.sampleRate }

// Submit starts playing buf and returns without waiting for it to
// finish. The buffer must have been rendered at the sink's sample rate.
func (s *OtoSink) Submit(buf []float64, sampleRate float64) error {
	if len(buf) == 0 {
		return nil
	}
	if int(sampleRate) != s.sampleRate {
		return fmt.Errorf("buffer sample rate %v does not match device rate %d", sampleRate, s.sampleRate)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errors.New("sink is closed")
	}
	player := s.ctx.NewPlayer(bytes.NewReader(encodeFloat32LE(buf)))
	s.playing.Add(1)
	s.mu.Unlock()

	player.Play()
	go func() {
		defer s.playing.Done()
		for player.IsPlaying() {
			time.Sleep(drainPollInterval)
		}
		player.Close()
	}()
	return nil
}

// WaitForIdle blocks until every submitted buffer has finished playing.
func (s *OtoSink) WaitForIdle() {
	s.playing.Wait()
}

// Close rejects further submissions and waits for playing buffers to
// drain. The underlying device context stays open for the process
// lifetime, as oto contexts cannot be closed.
func (s *OtoSink) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.playing.Wait()
	return nil
}
