package arena

import (
	"github.com/qychen/tictacgo/internal/game"
	"github.com/qychen/tictacgo/pkg/common"
)

type gameInfo struct {
	gameNumber int
	aPlaysX    bool
}

type gameResult struct {
	gameInfo gameInfo
	result   common.GameResult
	plies    int
	aWon     bool
	bWon     bool
	err      error
}

func playGame(opts Options, info gameInfo) gameResult {
	var sourceA = opts.NewSourceA()
	var sourceB = opts.NewSourceB()
	var g *game.Game
	if info.aPlaysX {
		g = game.New(sourceA, sourceB)
	} else {
		g = game.New(sourceB, sourceA)
	}
	var result, err = g.Play()
	if err != nil {
		return gameResult{gameInfo: info, err: err}
	}
	var res = gameResult{
		gameInfo: info,
		result:   result,
		plies:    len(g.History()),
	}
	if result.Outcome == common.Won {
		var aWasWinner = (result.Winner == common.X) == info.aPlaysX
		res.aWon = aWasWinner
		res.bWon = !aWasWinner
	}
	return res
}
