package overlay

// State is the lifecycle of the search overlay
type State int

const (
	Closed State = iota
	Opening
	Open
	Closing
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	default:
		return "unknown"
	}
}

// next lists the transitions allowed out of each state. Opening may also
// close before it settles.
var next = map[State][]State{
	Closed:  {Opening},
	Opening: {Open, Closing},
	Open:    {Closing},
	Closing: {Closed},
}

// canTransition reports whether from -> to is an edge of the lifecycle
func canTransition(from, to State) bool {
	for _, s := range next[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Key is a key name as delivered by the host
type Key string

const (
	KeyEscape    Key = "Escape"
	KeyArrowDown Key = "ArrowDown"
	KeyArrowUp   Key = "ArrowUp"
	KeyEnter     Key = "Enter"
)
