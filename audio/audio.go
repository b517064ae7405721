// Package audio provides sinks that consume rendered sample buffers:
// an oto-backed device sink for real playback and an in-memory capture
// sink for tests and offline rendering.
package audio

import (
	"encoding/binary"
	"math"

	"github.com/iaaaanb/Keyboard/dsp/core"
)

// encodeFloat32LE converts a float64 buffer to the little-endian
// float32 byte stream oto expects for FormatFloat32LE mono output.
// Samples outside [-1, 1] are hard-clipped so an overdriven mix never
// wraps at the device.
func encodeFloat32LE(buf []float64) []byte {
	out := make([]byte, 4*len(buf))
	for i, s := range buf {
		clipped := core.Clamp(s, -1, 1)
		binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(float32(clipped)))
	}
	return out
}
