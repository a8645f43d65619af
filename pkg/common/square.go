package common

import "fmt"

const (
	BoardWidth  = 3
	SquareCount = BoardWidth * BoardWidth
)

const SquareNone = -1

func Row(sq int) int {
	return sq / BoardWidth
}

func Col(sq int) int {
	return sq % BoardWidth
}

func MakeSquare(row, col int) int {
	return row*BoardWidth + col
}

func InBounds(row, col int) bool {
	return row >= 0 && row < BoardWidth && col >= 0 && col < BoardWidth
}

func SquareName(sq int) string {
	return fmt.Sprintf("(%v,%v)", Row(sq), Col(sq))
}
