// Package sgr encodes composable font effects as ANSI Select Graphic
// Rendition escape sequences.
//
// Effects form a closed enumeration, so a well-typed caller cannot
// request an unknown effect. Parse guards the string-valued boundary
// (configuration, CLI flags) and is the only place an unknown name can
// surface.
package sgr

import (
	"errors"
	"fmt"
	"strings"
)

// Effect is a named terminal font effect.
type Effect int

const (
	Bold Effect = iota
	Faint
	Italic
	Underline
	Blink
	Inverse
	Strikeout
)

// codes holds the SGR start/stop parameter for each effect. Bold and
// faint share stop code 22 (normal intensity).
var codes = [...]struct{ start, stop string }{
	Bold:      {"1", "22"},
	Faint:     {"2", "22"},
	Italic:    {"3", "23"},
	Underline: {"4", "24"},
	Blink:     {"5", "25"},
	Inverse:   {"7", "27"},
	Strikeout: {"9", "29"},
}

var names = [...]string{
	Bold:      "bold",
	Faint:     "faint",
	Italic:    "italic",
	Underline: "underline",
	Blink:     "blink",
	Inverse:   "inverse",
	Strikeout: "strikeout",
}

// ErrUnknownEffect indicates a font effect name that Parse does not
// recognize.
var ErrUnknownEffect = errors.New("unknown font effect")

// Parse resolves a font effect name. "underlined" is accepted as a
// synonym for "underline".
func Parse(name string) (Effect, error) {
	if name == "underlined" {
		return Underline, nil
	}
	for e, n := range names {
		if n == name {
			return Effect(e), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
}

// String returns the effect's canonical name.
func (e Effect) String() string {
	if !e.valid() {
		return fmt.Sprintf("Effect(%d)", int(e))
	}
	return names[e]
}

func (e Effect) valid() bool {
	return e >= Bold && e <= Strikeout
}

// Apply wraps s in a single start sequence carrying the start codes of
// all requested effects joined by ";", and a matching stop sequence
// after it. Nested Apply calls simply nest sequences; untangling
// overlapping attributes is the terminal's job.
//
// Apply panics on an Effect value outside the defined enumeration: that
// is a programming defect in the caller, not bad input.
func Apply(s string, effects ...Effect) string {
	if len(effects) == 0 {
		return s
	}
	starts := make([]string, len(effects))
	stops := make([]string, len(effects))
	for i, e := range effects {
		if !e.valid() {
			panic(fmt.Sprintf("sgr: invalid font effect %d", int(e)))
		}
		starts[i] = codes[e].start
		stops[i] = codes[e].stop
	}
	return "\x1b[" + strings.Join(starts, ";") + "m" + s +
		"\x1b[" + strings.Join(stops, ";") + "m"
}
