// Package fx provides the pure buffer-to-buffer effect kernels used by
// instrument presets.
//
// Effects in this package:
//   - Envelope: linear ADSR amplitude envelope.
//   - Reverb: three delayed, attenuated copies added to the input.
//   - Vibrato: multiplicative pitch-wobble approximation.
//   - Tremolo: multiplicative amplitude modulation.
//   - Distortion: tanh soft clipping rescaled by drive.
//   - Decay: exponential decay over the note length.
//
// Unlike streaming effect processors, every effect here is a
// deterministic transform of a complete note buffer: parameters are
// fixed at construction, Apply holds no state between calls, and the
// output length always equals the input length. A single effect value
// may therefore be shared by concurrently rendering voices.
package fx
