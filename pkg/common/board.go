package common

type Board struct {
	cells [SquareCount]Mark
}

func NewBoard() Board {
	return Board{}
}

func (b *Board) At(row, col int) Mark {
	return b.cells[MakeSquare(row, col)]
}

func (b *Board) AtSquare(sq int) Mark {
	return b.cells[sq]
}

func (b *Board) Place(mark Mark, row, col int) error {
	if !InBounds(row, col) {
		return ErrOutOfBounds
	}
	return b.PlaceSquare(mark, MakeSquare(row, col))
}

func (b *Board) PlaceSquare(mark Mark, sq int) error {
	if sq < 0 || sq >= SquareCount {
		return ErrOutOfBounds
	}
	if b.cells[sq] != Empty {
		return ErrOccupied
	}
	b.cells[sq] = mark
	return nil
}

func (b *Board) Clear(row, col int) {
	b.cells[MakeSquare(row, col)] = Empty
}

func (b *Board) ClearSquare(sq int) {
	b.cells[sq] = Empty
}

// AvailableMoves returns the empty squares in row-major order.
func (b *Board) AvailableMoves() []int {
	var result []int
	for sq := 0; sq < SquareCount; sq++ {
		if b.cells[sq] == Empty {
			result = append(result, sq)
		}
	}
	return result
}

func (b *Board) CountEmpty() int {
	var count = 0
	for _, cell := range b.cells {
		if cell == Empty {
			count++
		}
	}
	return count
}

func (b *Board) IsFull() bool {
	return b.CountEmpty() == 0
}

func (b *Board) Vector() StateVector {
	var v StateVector
	for sq, cell := range b.cells {
		switch cell {
		case X:
			v[sq] = 1
		case O:
			v[sq] = -1
		}
	}
	return v
}

func NewBoardFromVector(v StateVector) Board {
	var b Board
	for sq, c := range v {
		switch {
		case c > 0:
			b.cells[sq] = X
		case c < 0:
			b.cells[sq] = O
		}
	}
	return b
}
