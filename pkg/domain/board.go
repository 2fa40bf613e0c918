package domain

import "fmt"

// Board is immutable reporting data keyed by space index.
// The zero value has no names or costs; use StandardBoard.
type Board struct {
	names []string
	hotel map[State]int
}

// StandardBoard returns the names and hotel costs of the classic 40 space board.
func StandardBoard() Board {
	return Board{names: standardNames[:], hotel: standardHotelCosts}
}

// Size is the number of named spaces.
func (b Board) Size() int { return len(b.names) }

// Name returns the space name, or a generic label for unnamed spaces.
func (b Board) Name(s State) string {
	if s >= 0 && int(s) < len(b.names) {
		return b.names[s]
	}
	return fmt.Sprintf("Space %d", s)
}

// HotelCost returns the base hotel rent of a property.
func (b Board) HotelCost(s State) (int, bool) {
	c, ok := b.hotel[s]
	return c, ok
}

// Properties lists every space with a hotel cost, in board order.
func (b Board) Properties() []State {
	out := make([]State, 0, len(b.hotel))
	for i := range b.names {
		if _, ok := b.hotel[State(i)]; ok {
			out = append(out, State(i))
		}
	}
	return out
}

var standardNames = [DefaultSize]string{
	"GO",
	"Mediterranean Avenue",
	"Community Chest 1",
	"Baltic Avenue",
	"Income Tax",
	"Reading Railroad",
	"Oriental Avenue",
	"Chance 1",
	"Vermont Avenue",
	"Connecticut Avenue",
	"Jail",
	"St. Charles Place",
	"Electric Company",
	"States Avenue",
	"Virginia Avenue",
	"Pennsylvania Railroad",
	"St. James Place",
	"Community Chest",
	"Tennessee Avenue",
	"New York Avenue",
	"Free Parking",
	"Kentucky Avenue",
	"Chance 2",
	"Indiana Avenue",
	"Illinois Avenue",
	"B. & O. Railroad",
	"Atlantic Avenue",
	"Ventnor Avenue",
	"Water Works",
	"Marvin Gardens",
	"Go To Jail",
	"Pacific Avenue",
	"North Carolina Avenue",
	"Community Chest",
	"Pennsylvania Avenue",
	"Short Line",
	"Chance 3",
	"Park Place",
	"Luxury Tax",
	"Boardwalk",
}

// Never handed out directly; Board only reads from it.
var standardHotelCosts = map[State]int{
	1: 2, 3: 4, 6: 6, 8: 6, 9: 8,
	11: 10, 13: 10, 14: 12, 16: 14, 18: 14, 19: 16,
	21: 18, 23: 18, 24: 20, 26: 22, 27: 22, 29: 24,
	31: 26, 32: 26, 34: 28, 37: 35, 39: 50,
}
