package entity

// Status describes whether a board is still being played, drawn or won.
type Status int

const (
	StatusOngoing Status = iota
	StatusDraw
	StatusNoughtWins
	StatusCrossWins
)

// WinStatus returns the status of a game won by mark.
func WinStatus(mark Mark) Status {
	if mark == PlayerX {
		return StatusCrossWins
	}

	return StatusNoughtWins
}

// Winner returns the winning mark, if any.
func (that Status) Winner() (Mark, bool) {
	switch that {
	case StatusNoughtWins:
		return PlayerO, true
	case StatusCrossWins:
		return PlayerX, true
	default:
		return EmptyCell, false
	}
}

func (that Status) IsFinished() bool {
	return that != StatusOngoing
}

func (that Status) String() string {
	switch that {
	case StatusOngoing:
		return "ongoing"
	case StatusDraw:
		return "draw"
	case StatusNoughtWins:
		return "O wins"
	case StatusCrossWins:
		return "X wins"
	default:
		return "unknown"
	}
}
