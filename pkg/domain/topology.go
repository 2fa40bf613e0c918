package domain

import (
	"fmt"
	"slices"
)

// Faces is the number of sides on every die.
const Faces = 6

// Topology holds the fixed parameters of one board.
// A Topology returned by NewTopology is valid and must be treated as read-only.
type Topology struct {
	Size     int
	Dice     int
	Jail     State
	GoToJail State
	Chance   []State
}

// NewTopology validates the parameters and returns a Topology owning a sorted,
// de-duplicated copy of the chance spaces.
func NewTopology(size, dice int, jail, gotoJail State, chance []State) (Topology, error) {
	cs := slices.Clone(chance)
	slices.Sort(cs)
	cs = slices.Compact(cs)

	t := Topology{
		Size:     size,
		Dice:     dice,
		Jail:     jail,
		GoToJail: gotoJail,
		Chance:   cs,
	}
	if err := t.Validate(); err != nil {
		return Topology{}, err
	}
	return t, nil
}

// DefaultTopology returns the standard 40 space, two dice board.
func DefaultTopology() Topology {
	t, err := NewTopology(DefaultSize, DefaultDice, DefaultJail, DefaultGoToJail, DefaultChanceSpaces())
	if err != nil {
		panic(err)
	}
	return t
}

// Validate reports the first configuration problem, wrapped in ErrConfig.
func (t Topology) Validate() error {
	switch {
	case t.Size < 2:
		return fmt.Errorf("%w: board size must be at least 2, got %d", ErrConfig, t.Size)
	case t.Dice < 1:
		return fmt.Errorf("%w: at least one die is required, got %d", ErrConfig, t.Dice)
	case !t.onBoard(t.Jail):
		return fmt.Errorf("%w: jail %d is not on a board of size %d", ErrConfig, t.Jail, t.Size)
	case !t.onBoard(t.GoToJail):
		return fmt.Errorf("%w: goto_jail %d is not on a board of size %d", ErrConfig, t.GoToJail, t.Size)
	case t.Jail == t.GoToJail:
		// Landing on jail would have to move both to jail_first and onwards.
		return fmt.Errorf("%w: jail and goto_jail must be distinct (both %d)", ErrConfig, t.Jail)
	}
	for _, c := range t.Chance {
		if !t.onBoard(c) {
			return fmt.Errorf("%w: chance space %d is not on a board of size %d", ErrConfig, c, t.Size)
		}
		if c == t.GoToJail {
			return fmt.Errorf("%w: chance space %d coincides with goto_jail", ErrConfig, c)
		}
	}
	return nil
}

func (t Topology) onBoard(s State) bool {
	return s >= 0 && int(s) < t.Size
}

// JailFirst is the state entered when sent to jail.
func (t Topology) JailFirst() State { return State(t.Size) }

// JailSecond is the second turn spent in jail.
func (t Topology) JailSecond() State { return State(t.Size + 1) }

// JailThird is the last turn in jail; leaving it is forced.
func (t Topology) JailThird() State { return State(t.Size + 2) }

// NumStates is the size of the full state space, including the three jail turns.
func (t Topology) NumStates() int { return t.Size + 3 }

// States enumerates the full state space in index order.
func (t Topology) States() []State {
	out := make([]State, t.NumStates())
	for i := range out {
		out[i] = State(i)
	}
	return out
}

// Contains reports whether s is part of the state space.
func (t Topology) Contains(s State) bool {
	return s >= 0 && int(s) < t.NumStates()
}

// IsChance reports whether s is a chance space.
func (t Topology) IsChance(s State) bool {
	return slices.Contains(t.Chance, s)
}

// JailStates returns the visiting jail space followed by the three jail turns.
func (t Topology) JailStates() []State {
	return []State{t.Jail, t.JailFirst(), t.JailSecond(), t.JailThird()}
}

// IsJail reports whether s is the jail space or one of the jail turns.
func (t Topology) IsJail(s State) bool {
	return slices.Contains(t.JailStates(), s)
}

// Redirect maps goto_jail onto jail_first and leaves every other state alone.
func (t Topology) Redirect(s State) State {
	if s == t.GoToJail {
		return t.JailFirst()
	}
	return s
}

// MinAdvance is the smallest dice total.
func (t Topology) MinAdvance() int { return t.Dice }

// MaxAdvance is the largest dice total.
func (t Topology) MaxAdvance() int { return Faces * t.Dice }

// Advance moves advance spaces forward from a board space, wrapping at Size.
func (t Topology) Advance(from State, advance int) State {
	return State((int(from) + advance) % t.Size)
}

// Kind classifies s.
func (t Topology) Kind(s State) Kind {
	switch {
	case !t.Contains(s):
		return KindUnknown
	case s == t.JailFirst():
		return KindJailFirst
	case s == t.JailSecond():
		return KindJailSecond
	case s == t.JailThird():
		return KindJailThird
	case s == t.GoToJail:
		return KindGoToJail
	case s == t.Jail:
		return KindJail
	case t.IsChance(s):
		return KindChance
	default:
		return KindSpace
	}
}

// Key is a stable textual fingerprint, usable as a cache key.
func (t Topology) Key() string {
	return fmt.Sprintf("%d/%d/%d/%d/%v", t.Size, t.Dice, t.Jail, t.GoToJail, t.Chance)
}
