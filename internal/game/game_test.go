package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qychen/tictacgo/pkg/common"
	"github.com/qychen/tictacgo/pkg/knn"
)

func scriptedSource(name string, squares ...int) *FuncSource {
	var i = 0
	return &FuncSource{
		SourceName: name,
		Choose: func(board *common.Board, mark common.Mark) (int, error) {
			var sq = squares[i]
			i++
			return sq, nil
		},
	}
}

func TestPlayScriptedWin(t *testing.T) {
	// X takes the top row, O wanders.
	var g = New(
		scriptedSource("x", 0, 1, 2),
		scriptedSource("o", 3, 4),
	)
	result, err := g.Play()
	require.NoError(t, err)
	assert.Equal(t, common.Won, result.Outcome)
	assert.Equal(t, common.X, result.Winner)
	assert.Len(t, g.History(), 5)
}

func TestPlayScriptedDraw(t *testing.T) {
	var g = New(
		scriptedSource("x", 0, 2, 3, 5, 7),
		scriptedSource("o", 1, 4, 6, 8),
	)
	result, err := g.Play()
	require.NoError(t, err)
	assert.Equal(t, common.Draw, result.Outcome)
	assert.True(t, g.Board().IsFull())
}

func TestInvalidMoveReRequested(t *testing.T) {
	// X tries out-of-range and occupied squares before a legal one;
	// the turn must not advance in between.
	var g = New(
		scriptedSource("x", 0, -1, 0, 9, 1, 2),
		scriptedSource("o", 3, 4),
	)
	result, err := g.Play()
	require.NoError(t, err)
	assert.Equal(t, common.Won, result.Outcome)
	assert.Equal(t, common.X, result.Winner)
	assert.Len(t, g.History(), 5)
}

func TestMinimaxVsMinimaxDraws(t *testing.T) {
	var g = New(NewMinimaxSource(), NewMinimaxSource())
	result, err := g.Play()
	require.NoError(t, err)
	assert.Equal(t, common.Draw, result.Outcome)
}

func TestHeuristicVsMinimax(t *testing.T) {
	// Empty dataset degrades the heuristic to random play; minimax
	// never loses regardless.
	for seed := int64(0); seed < 10; seed++ {
		var predictor = knn.NewPredictor(knn.Dataset{}, rand.New(rand.NewSource(seed)))
		var g = New(NewHeuristicSource(predictor), NewMinimaxSource())
		result, err := g.Play()
		require.NoError(t, err)
		if result.Outcome == common.Won {
			assert.Equal(t, common.O, result.Winner, "seed %d", seed)
		}
	}
}

func TestSourceAttribution(t *testing.T) {
	var g = New(
		scriptedSource("human", 4, 0, 2),
		NewRandomSource(rand.New(rand.NewSource(7))),
	)
	for i := 0; i < 3; i++ {
		_, err := g.PlayTurn()
		require.NoError(t, err)
	}
	var history = g.History()
	require.Len(t, history, 3)
	assert.Equal(t, "human", history[0].Source)
	assert.Equal(t, "random", history[1].Source)
	assert.Equal(t, "human", history[2].Source)
}
