// Command keyboard turns the computer keyboard into a polyphonic
// instrument played through the system audio device.
//
// Usage:
//
//	keyboard [flags]
//
// Without flags it starts an interactive session in raw terminal mode.
//
// Examples:
//
//	keyboard
//	keyboard -preset organ -octave 3
//	keyboard -demo
//	keyboard -list
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"

	"github.com/iaaaanb/Keyboard/audio"
	"github.com/iaaaanb/Keyboard/dsp/core"
	"github.com/iaaaanb/Keyboard/notes"
	"github.com/iaaaanb/Keyboard/preset"
	"github.com/iaaaanb/Keyboard/synth"
)

const (
	noteDuration  = 1.0
	chordDuration = 2.0
	demoDuration  = 0.6
)

// noteKeys maps letter rows to pitch classes. The comma, period, slash,
// l and semicolon keys continue the row past B; whether they sound in
// the next octave is decided by the last note played.
var noteKeys = map[byte]string{
	'z': "C", 'x': "D", 'c': "E", 'v': "F",
	'b': "G", 'n': "A", 'm': "B",
	',': "C", '.': "D", '/': "E",

	's': "C#", 'd': "D#", 'g': "F#",
	'h': "G#", 'j': "A#", 'l': "C#", ';': "D#",
}

// presetKeys maps the number row to instrument presets.
var presetKeys = map[byte]string{
	'1': "piano",
	'2': "organ",
	'3': "guitar",
	'4': "synth",
	'5': "bell",
	'6': "retro",
	'7': "pad",
	'8': "bass",
	'9': "sine",
}

// chordOrder and chordShapes define the chord types cycled by tab. Each
// shape names pitch classes rooted at the current octave.
var (
	chordOrder  = []string{"major", "minor", "seventh", "sus4"}
	chordShapes = map[string][]string{
		"major":   {"C", "E", "G"},
		"minor":   {"C", "Eb", "G"},
		"seventh": {"C", "E", "G", "B"},
		"sus4":    {"C", "F", "G"},
	}
)

type session struct {
	player    *synth.Player
	library   *preset.Library
	octave    int
	presetKey string
	chordIdx  int
	lastNote  string
}

// tuning adapts the notes package to the synth.Tuning interface.
type tuning struct{}

func (tuning) Frequency(name string, octave int) (float64, error) {
	return notes.Frequency(name, octave)
}

func (tuning) IsValid(name string, octave int) bool {
	return notes.IsValid(name, octave)
}

func main() {
	demo := flag.Bool("demo", false, "play every preset once and exit")
	list := flag.Bool("list", false, "list available presets and exit")
	presetKey := flag.String("preset", preset.DefaultKey, "initial instrument preset")
	octave := flag.Int("octave", 4, "initial octave (0-8)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: keyboard [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Plays notes on the system audio device from keyboard input.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  keyboard\n")
		fmt.Fprintf(os.Stderr, "  keyboard -preset organ -octave 3\n")
		fmt.Fprintf(os.Stderr, "  keyboard -demo\n")
	}
	flag.Parse()

	library := preset.Builtin()

	if *list {
		printPresets(library)
		return
	}

	if *octave < notes.MinOctave || *octave > notes.MaxOctave {
		fmt.Fprintf(os.Stderr, "octave %d out of range [%d, %d]\n", *octave, notes.MinOctave, notes.MaxOctave)
		os.Exit(2)
	}
	if !library.Contains(*presetKey) {
		fmt.Fprintf(os.Stderr, "unknown preset %q; run with -list to see choices\n", *presetKey)
		os.Exit(2)
	}

	sink, err := audio.NewOtoSink(int(core.DefaultSampleRate))
	if err != nil {
		fmt.Fprintf(os.Stderr, "audio: %v\n", err)
		os.Exit(1)
	}

	player, err := synth.NewPlayer(library, tuning{}, sink,
		synth.WithErrorHandler(func(err error) {
			log.Printf("playback: %v", err)
		}),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "player: %v\n", err)
		os.Exit(1)
	}

	if *demo {
		runDemo(player, library)
		return
	}

	s := &session{
		player:    player,
		library:   library,
		octave:    *octave,
		presetKey: *presetKey,
	}
	if err := s.run(); err != nil {
		fmt.Fprintf(os.Stderr, "keyboard: %v\n", err)
		os.Exit(1)
	}
}

func printPresets(library *preset.Library) {
	keys := make([]byte, 0, len(presetKeys))
	for key := range presetKeys {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, key := range keys {
		name := presetKeys[key]
		fmt.Printf("  %c: %-8s %s\n", key, name, library.Lookup(name).Title())
	}
}

// runDemo plays middle C on every preset in number-key order, then a
// major chord on the current default, and waits for the device to drain.
func runDemo(player *synth.Player, library *preset.Library) {
	root := synth.Note{Name: "C", Octave: 4}
	for _, key := range []byte{'1', '2', '3', '4', '5', '6', '7', '8', '9'} {
		name := presetKeys[key]
		fmt.Printf("  %s (%s)\n", name, library.Lookup(name).Title())
		player.PlayNote(name, root, demoDuration)
		player.Wait()
	}

	fmt.Println("  major chord")
	player.PlayChord(preset.DefaultKey, chordNotes("major", 4), chordDuration)
	player.Wait()
}

func chordNotes(shape string, octave int) []synth.Note {
	names := chordShapes[shape]
	chord := make([]synth.Note, len(names))
	for i, name := range names {
		chord[i] = synth.Note{Name: name, Octave: octave}
	}
	return chord
}

func (s *session) run() error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	s.printHelp()
	s.printStatus()

	buf := make([]byte, 3)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if n == 0 {
			continue
		}

		// Arrow keys arrive as ESC [ A / ESC [ B.
		if n == 3 && buf[0] == 0x1b && buf[1] == '[' {
			switch buf[2] {
			case 'A':
				s.changeOctave(1)
			case 'B':
				s.changeOctave(-1)
			}
			continue
		}

		key := buf[0]
		switch {
		case key == 'q' || key == 0x1b:
			fmt.Print("\r\nbye\r\n")
			s.player.Wait()
			return nil
		case key == 'h':
			s.printHelp()
		case key == ' ':
			s.playChord()
		case key == '\t':
			s.cycleChord()
		case key == 'r':
			s.randomPreset()
		default:
			if name, ok := presetKeys[key]; ok {
				s.presetKey = name
				s.printStatus()
			} else if note, ok := noteKeys[key]; ok {
				s.playNote(note)
			}
		}
	}
}

// playNote sounds one key. Keys past B on the row sound in the next
// octave when the previous note was near the top of the scale; notes
// that would leave the valid range fall back one octave.
func (s *session) playNote(note string) {
	octave := s.octave
	if (note == "C" || note == "D" || note == "E") &&
		(s.lastNote == "A" || s.lastNote == "B" || s.lastNote == "A#") {
		octave++
	}

	if !notes.IsValid(note, octave) && octave > notes.MinOctave {
		octave--
	}
	if !notes.IsValid(note, octave) {
		fmt.Printf("\rnote %s%d not available\r\n", note, octave)
		return
	}

	s.player.PlayNote(s.presetKey, synth.Note{Name: note, Octave: octave}, noteDuration)
	s.lastNote = note
	fmt.Printf("\r%s%d  %s\r\n", note, octave, s.library.Lookup(s.presetKey).Title())
}

func (s *session) playChord() {
	shape := chordOrder[s.chordIdx]
	chord := chordNotes(shape, s.octave)
	s.player.PlayChord(s.presetKey, chord, chordDuration)

	labels := make([]string, len(chord))
	for i, n := range chord {
		labels[i] = n.String()
	}
	fmt.Printf("\r%s chord: %s  %s\r\n", shape, strings.Join(labels, " + "), s.library.Lookup(s.presetKey).Title())
}

func (s *session) cycleChord() {
	s.chordIdx = (s.chordIdx + 1) % len(chordOrder)
	fmt.Printf("\rchord type: %s\r\n", chordOrder[s.chordIdx])
}

func (s *session) randomPreset() {
	names := s.library.Names()
	s.presetKey = names[rand.Intn(len(names))]
	s.printStatus()
}

func (s *session) changeOctave(direction int) {
	next := s.octave + direction
	if next < notes.MinOctave || next > notes.MaxOctave {
		return
	}
	s.octave = next
	s.printStatus()
}

func (s *session) printStatus() {
	fmt.Printf("\r%s | octave %d | chord %s\r\n",
		s.library.Lookup(s.presetKey).Title(), s.octave, chordOrder[s.chordIdx])
}

func (s *session) printHelp() {
	fmt.Print("\r\n")
	fmt.Print("white keys:  Z X C V B N M , . /\r\n")
	fmt.Print("black keys:   S D   G H J   L ;\r\n")
	fmt.Print("presets:     1-9   octave: up/down arrows\r\n")
	fmt.Print("space: chord   tab: cycle chord   r: random preset\r\n")
	fmt.Print("h: help   q/esc: quit\r\n")
	fmt.Print("\r\n")
}
