package entity

import (
	"fmt"
	"strings"

	"github.com/guikarist/gym-tictactoe/internal/apperror"
)

// Mark is the value of a single cell and, for PlayerO and PlayerX, the side that owns it.
type Mark int8

const (
	EmptyCell Mark = iota
	PlayerO
	PlayerX
)

const BoardSize = 9

// Cell codes used in raw observations.
const (
	NullCode   = 0
	NoughtCode = 1
	CrossCode  = 2
)

// Cell codes used in symmetrical observations.
const (
	MyCode    = 1
	EnemyCode = 2
)

// Board is the 3x3 grid in row-major order.
type Board [BoardSize]Mark

// DefaultStartMark moves first when reset is given no mark.
const DefaultStartMark = PlayerO

func (that Mark) Valid() bool {
	return that >= EmptyCell && that <= PlayerX
}

// IsPlayer reports whether the mark belongs to one of the two sides.
func (that Mark) IsPlayer() bool {
	return that == PlayerO || that == PlayerX
}

// Code returns the raw observation code for the mark.
func (that Mark) Code() int {
	switch that {
	case PlayerO:
		return NoughtCode
	case PlayerX:
		return CrossCode
	default:
		return NullCode
	}
}

func (that Mark) String() string {
	switch that {
	case PlayerO:
		return "O"
	case PlayerX:
		return "X"
	case EmptyCell:
		return " "
	default:
		return fmt.Sprintf("Mark(%d)", int8(that))
	}
}

// Opponent returns the other side. EmptyCell has no opponent and is returned as is.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerO:
		return PlayerX
	case PlayerX:
		return PlayerO
	default:
		return that
	}
}

func (that Mark) MarshalText() ([]byte, error) {
	if !that.Valid() {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidMark, int8(that))
	}

	if that == EmptyCell {
		return []byte{}, nil
	}

	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	mark, err := ParseMark(string(text))
	if err != nil {
		return err
	}

	*that = mark

	return nil
}

// MarkFromCode converts a raw observation code back to a mark.
func MarkFromCode(code int) (Mark, error) {
	switch code {
	case NullCode:
		return EmptyCell, nil
	case NoughtCode:
		return PlayerO, nil
	case CrossCode:
		return PlayerX, nil
	default:
		return EmptyCell, fmt.Errorf("%w: code %d", apperror.ErrInvalidMark, code)
	}
}

// ParseMark accepts "O", "X" (any case) and "" or " " for an empty cell.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return EmptyCell, nil
	case "O":
		return PlayerO, nil
	case "X":
		return PlayerX, nil
	default:
		return EmptyCell, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, s)
	}
}

// IsFull reports whether no cell is empty.
func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// Count returns the number of occupied cells.
func (that Board) Count() int {
	count := 0
	for _, cell := range that {
		if cell != EmptyCell {
			count++
		}
	}

	return count
}
