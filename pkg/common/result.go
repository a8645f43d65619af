package common

type Outcome int

const (
	InProgress Outcome = iota
	Won
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

type GameResult struct {
	Outcome Outcome
	Winner  Mark
}

// The 8 winning lines in the order they are checked:
// rows, columns, then both diagonals.
var winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Winner returns the mark owning a completed line, or Empty.
func Winner(b *Board) Mark {
	for _, line := range winLines {
		var first = b.cells[line[0]]
		if first != Empty &&
			first == b.cells[line[1]] &&
			first == b.cells[line[2]] {
			return first
		}
	}
	return Empty
}

func Evaluate(b *Board) GameResult {
	if winner := Winner(b); winner != Empty {
		return GameResult{Outcome: Won, Winner: winner}
	}
	if b.IsFull() {
		return GameResult{Outcome: Draw}
	}
	return GameResult{Outcome: InProgress}
}
