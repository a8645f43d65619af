// Package arena pits two move sources against each other over a batch
// of games, alternating who opens, and reports the score.
package arena

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/qychen/tictacgo/internal/game"
)

type Options struct {
	Games       int
	Concurrency int
	NewSourceA  func() game.MoveSource
	NewSourceB  func() game.MoveSource
}

type Score struct {
	WinsA  int
	WinsB  int
	Draws  int
	Games  int
	Errors int
}

func Run(ctx context.Context, opts Options) (Score, error) {
	log.Println("arena started",
		"games", opts.Games,
		"concurrency", opts.Concurrency)
	defer log.Println("arena finished")

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)

	g.Go(func() error {
		defer close(gameInfos)
		for i := 0; i < opts.Games; i++ {
			var info = gameInfo{gameNumber: i + 1, aPlaysX: i%2 == 0}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case gameInfos <- info:
			}
		}
		return nil
	})

	var score Score
	g.Go(func() error {
		score = collectResults(gameResults)
		return nil
	})

	var wg = &sync.WaitGroup{}
	var concurrency = opts.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, opts, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	var err = g.Wait()
	return score, err
}

func playGames(
	ctx context.Context,
	opts Options,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	for info := range gameInfos {
		var res = playGame(opts, info)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}

func collectResults(gameResults <-chan gameResult) Score {
	var score Score
	for res := range gameResults {
		score.Games++
		if res.err != nil {
			score.Errors++
			log.Println("game failed",
				"gameNumber", res.gameInfo.gameNumber,
				"err", res.err)
			continue
		}
		switch {
		case res.aWon:
			score.WinsA++
		case res.bWon:
			score.WinsB++
		default:
			score.Draws++
		}
	}
	log.Printf("Score: %v - %v - %v of %v\n",
		score.WinsA, score.WinsB, score.Draws, score.Games)
	return score
}
