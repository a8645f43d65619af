package common

import "testing"

func TestPlaceVector(t *testing.T) {
	var b = NewBoard()
	if err := b.Place(X, 0, 0); err != nil {
		t.Fatal(err)
	}
	var want = StateVector{1, 0, 0, 0, 0, 0, 0, 0, 0}
	if b.Vector() != want {
		t.Error(b.Vector(), want)
	}
	if err := b.Place(O, 1, 1); err != nil {
		t.Fatal(err)
	}
	want[4] = -1
	if b.Vector() != want {
		t.Error(b.Vector(), want)
	}
	b.Clear(1, 1)
	want[4] = 0
	if b.Vector() != want {
		t.Error(b.Vector(), want)
	}
}

func TestPlaceErrors(t *testing.T) {
	var b = NewBoard()
	var badCoords = [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}}
	for _, rc := range badCoords {
		if err := b.Place(X, rc[0], rc[1]); err != ErrOutOfBounds {
			t.Error(rc, err)
		}
	}
	if err := b.Place(X, 2, 2); err != nil {
		t.Fatal(err)
	}
	if err := b.Place(O, 2, 2); err != ErrOccupied {
		t.Error(err)
	}
}

func TestAvailableMoves(t *testing.T) {
	var b = NewBoard()
	if len(b.AvailableMoves()) != SquareCount {
		t.Error(b.AvailableMoves())
	}
	b.PlaceSquare(X, 0)
	b.PlaceSquare(O, 4)
	var moves = b.AvailableMoves()
	var want = []int{1, 2, 3, 5, 6, 7, 8}
	if len(moves) != len(want) {
		t.Fatal(moves)
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Error(moves, want)
		}
	}
}

func TestSquareMapping(t *testing.T) {
	for sq := 0; sq < SquareCount; sq++ {
		if MakeSquare(Row(sq), Col(sq)) != sq {
			t.Error(sq, Row(sq), Col(sq))
		}
	}
}

func TestVectorRoundTrip(t *testing.T) {
	var b = NewBoard()
	b.Place(X, 0, 0)
	b.Place(O, 1, 2)
	b.Place(X, 2, 1)
	var restored = NewBoardFromVector(b.Vector())
	if restored != b {
		t.Error(restored, b)
	}
}
