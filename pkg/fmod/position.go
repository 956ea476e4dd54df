package fmod

import "fmt"

// Position selects where a write lands in an engine-owned chain. The engine
// reserves negative index values as insertion sentinels; Position makes them
// a distinct type so they can never be confused with the plain ints used for
// reads, where sentinels have no meaning.
type Position int

const (
	// Head inserts before all current elements. Always valid, regardless of
	// the chain's current size.
	Head Position = -1
	// Fader addresses the engine's built-in fader unit, which the mixer may
	// have inserted into a chain on its own.
	Fader Position = -2
	// Tail inserts after all current elements. Always valid.
	Tail Position = -3
)

// At addresses an explicit chain offset for a write. Inserting at offset i
// shifts the elements currently at i and beyond one slot down; it never
// replaces in place.
func At(i int) Position { return Position(i) }

func (p Position) valid() bool {
	return p >= 0 || p == Head || p == Fader || p == Tail
}

func (p Position) String() string {
	switch p {
	case Head:
		return "head"
	case Fader:
		return "fader"
	case Tail:
		return "tail"
	default:
		return fmt.Sprintf("at(%d)", int(p))
	}
}
