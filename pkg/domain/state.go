package domain

import "strconv"

// State identifies a node of the chain.
// Values below Topology.Size are board spaces, the next three are jail turns.
type State int

func (s State) String() string {
	return strconv.Itoa(int(s))
}

// Kind classifies a state relative to a topology.
type Kind string

const (
	KindSpace      Kind = "space"
	KindChance     Kind = "chance"
	KindJail       Kind = "jail"
	KindGoToJail   Kind = "goto_jail"
	KindJailFirst  Kind = "jail_first"
	KindJailSecond Kind = "jail_second"
	KindJailThird  Kind = "jail_third"
	KindUnknown    Kind = "unknown"
)
