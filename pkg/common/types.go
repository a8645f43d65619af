package common

import "errors"

type Mark int

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

func (m Mark) Other() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func ParseMark(s string) (Mark, error) {
	switch s {
	case "X", "x":
		return X, nil
	case "O", "o":
		return O, nil
	}
	return Empty, errors.New("mark must be X or O")
}

// StateVector is the canonical 9-int encoding of a board:
// +1 for X, -1 for O, 0 for empty, row-major.
type StateVector [SquareCount]int

var (
	ErrOutOfBounds = errors.New("move out of bounds")
	ErrOccupied    = errors.New("cell occupied")
	ErrNoMoves     = errors.New("no moves available")
)
