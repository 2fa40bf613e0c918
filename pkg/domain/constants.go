package domain

// Defaults for the standard board.
const (
	DefaultSize     = 40
	DefaultDice     = 2
	DefaultJail     = State(10)
	DefaultGoToJail = State(30)
)

// DefaultChanceSpaces returns the chance spaces of the standard board.
func DefaultChanceSpaces() []State {
	return []State{7, 22, 36}
}
