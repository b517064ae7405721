// Package notes maps scientific pitch names to equal-temperament
// frequencies tuned to A4 = 440 Hz.
package notes

import (
	"errors"
	"fmt"
	"math"
)

// Octave bounds accepted by the registry, matching an 88-key-plus
// keyboard range from C0 through B8.
const (
	MinOctave = 0
	MaxOctave = 8
)

const (
	referenceFrequency = 440.0
	referenceMIDI      = 69 // A4
	semitonesPerOctave = 12
)

// ErrInvalidNote reports a pitch name or octave outside the registry.
var ErrInvalidNote = errors.New("invalid note")

// semitone holds the offset of each pitch class from C. Sharps and
// flats are distinct spellings of the same offset.
var semitone = map[string]int{
	"C": 0, "C#": 1, "Db": 1,
	"D": 2, "D#": 3, "Eb": 3,
	"E": 4,
	"F": 5, "F#": 6, "Gb": 6,
	"G": 7, "G#": 8, "Ab": 8,
	"A": 9, "A#": 10, "Bb": 10,
	"B": 11,
}

// Frequency returns the frequency in Hz of the named pitch in the given
// octave. Note names are case-sensitive: an upper-case letter A-G
// optionally followed by "#" or "b".
func Frequency(name string, octave int) (float64, error) {
	idx, ok := semitone[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown pitch name %q", ErrInvalidNote, name)
	}
	if octave < MinOctave || octave > MaxOctave {
		return 0, fmt.Errorf("%w: octave %d out of range [%d, %d]", ErrInvalidNote, octave, MinOctave, MaxOctave)
	}

	midi := (octave+1)*semitonesPerOctave + idx
	return referenceFrequency * math.Pow(2, float64(midi-referenceMIDI)/semitonesPerOctave), nil
}

// IsValid reports whether the name and octave form a registered pitch.
func IsValid(name string, octave int) bool {
	_, ok := semitone[name]
	return ok && octave >= MinOctave && octave <= MaxOctave
}

// Names returns the pitch-class spellings accepted by Frequency, sharps
// preferred, in chromatic order from C.
func Names() []string {
	return []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
}
