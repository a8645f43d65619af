package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/qychen/tictacgo/internal/arena"
	"github.com/qychen/tictacgo/internal/console"
	"github.com/qychen/tictacgo/internal/dataset"
	"github.com/qychen/tictacgo/internal/server"
	"github.com/qychen/tictacgo/pkg/common"
	"github.com/qychen/tictacgo/pkg/knn"

	"github.com/qychen/tictacgo/internal/game"
)

var (
	flgOpponent    string
	flgDataset     string
	flgMark        string
	flgNeighbors   int
	flgSeed        int64
	flgAddr        string
	flgGames       int
	flgConcurrency int
	flgSourceA     string
	flgSourceB     string

	rootCmd = &cobra.Command{
		Use:   "tictac",
		Short: "Tic-tac-toe with minimax and dataset-driven engines",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(); err != nil {
				return err
			}
			if !cmd.Flags().Changed("opponent") && config.Opponent != "" {
				flgOpponent = config.Opponent
			}
			if !cmd.Flags().Changed("dataset") && config.Dataset != "" {
				flgDataset = config.Dataset
			}
			if !cmd.Flags().Changed("neighbors") && config.Neighbors > 0 {
				flgNeighbors = config.Neighbors
			}
			if !cmd.Flags().Changed("addr") && config.Addr != "" {
				flgAddr = config.Addr
			}
			if !cmd.Flags().Changed("seed") && config.Seed != 0 {
				flgSeed = config.Seed
			}
			return nil
		},
	}

	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game in the terminal",
		RunE:  runPlay,
	}

	arenaCmd = &cobra.Command{
		Use:   "arena",
		Short: "Run an engine-vs-engine match",
		RunE:  runArena,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve one game over HTTP and websocket",
		RunE:  runServe,
	}

	datasetCmd = &cobra.Command{
		Use:   "dataset",
		Short: "Dataset utilities",
	}

	datasetInfoCmd = &cobra.Command{
		Use:   "info <file>",
		Short: "Show dataset kind, size, and label distribution",
		Args:  cobra.ExactArgs(1),
		RunE:  runDatasetInfo,
	}
)

func init() {
	for _, cmd := range []*cobra.Command{playCmd, arenaCmd, serveCmd} {
		cmd.Flags().StringVar(&flgDataset, "dataset", "", "dataset file for the knn engine")
		cmd.Flags().IntVar(&flgNeighbors, "neighbors", knn.DefaultNeighbors, "neighbors for the outcome-labeled vote")
		cmd.Flags().Int64Var(&flgSeed, "seed", 0, "random seed (0 = time-based)")
	}
	playCmd.Flags().StringVar(&flgOpponent, "opponent", "minimax", "opponent: minimax, knn, random or human")
	playCmd.Flags().StringVar(&flgMark, "mark", "", "your mark, X or O (default: ask)")
	serveCmd.Flags().StringVar(&flgOpponent, "opponent", "minimax", "opponent: minimax, knn or random")
	serveCmd.Flags().StringVar(&flgMark, "mark", "X", "the browser player's mark")
	serveCmd.Flags().StringVar(&flgAddr, "addr", ":8080", "listen address")
	arenaCmd.Flags().IntVar(&flgGames, "games", 100, "number of games")
	arenaCmd.Flags().IntVar(&flgConcurrency, "concurrency", 4, "concurrent games")
	arenaCmd.Flags().StringVar(&flgSourceA, "a", "minimax", "first engine: minimax, knn or random")
	arenaCmd.Flags().StringVar(&flgSourceB, "b", "knn", "second engine: minimax, knn or random")

	datasetCmd.AddCommand(datasetInfoCmd)
	rootCmd.AddCommand(playCmd, arenaCmd, serveCmd, datasetCmd)
}

func newRand(offset int64) *rand.Rand {
	var seed = flgSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed + offset))
}

// loadDatasetOrEmpty degrades to an empty dataset on any load problem,
// warning once; the knn engine then plays randomly.
func loadDatasetOrEmpty() knn.Dataset {
	if flgDataset == "" {
		log.Println("no dataset configured; knn engine will play randomly")
		return knn.Dataset{}
	}
	var ds, err = dataset.Load(flgDataset)
	if err != nil {
		log.Println("loadDataset",
			"filepath", flgDataset,
			"err", err,
			"fallback", "random play")
		return knn.Dataset{Kind: ds.Kind}
	}
	log.Println("loadDataset",
		"filepath", flgDataset,
		"kind", ds.Kind,
		"records", len(ds.Records))
	return ds
}

func buildSource(kind string, ds knn.Dataset, seedOffset int64) (game.MoveSource, error) {
	switch kind {
	case "minimax":
		return game.NewMinimaxSource(), nil
	case "knn":
		var p = knn.NewPredictor(ds, newRand(seedOffset))
		p.SetNeighbors(flgNeighbors)
		return game.NewHeuristicSource(p), nil
	case "random":
		return game.NewRandomSource(newRand(seedOffset)), nil
	}
	return nil, fmt.Errorf("unknown engine %q", kind)
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flgOpponent == "human" {
		return console.RunTwoHumans(os.Stdin, os.Stdout, true)
	}
	var humanMark = common.Empty
	if flgMark != "" {
		var mark, err = common.ParseMark(flgMark)
		if err != nil {
			return err
		}
		humanMark = mark
	}
	var ds knn.Dataset
	if flgOpponent == "knn" {
		ds = loadDatasetOrEmpty()
	}
	var opponent, err = buildSource(flgOpponent, ds, 0)
	if err != nil {
		return err
	}
	return console.Run(console.Options{
		In:        os.Stdin,
		Out:       os.Stdout,
		HumanMark: humanMark,
		Opponent:  opponent,
		AskReplay: true,
	})
}

func runArena(cmd *cobra.Command, args []string) error {
	var ds knn.Dataset
	if flgSourceA == "knn" || flgSourceB == "knn" {
		ds = loadDatasetOrEmpty()
	}
	var seedOffset int64
	var newSource = func(kind string) func() game.MoveSource {
		return func() game.MoveSource {
			var offset = atomic.AddInt64(&seedOffset, 1)
			var source, err = buildSource(kind, ds, offset)
			if err != nil {
				panic(err)
			}
			return source
		}
	}
	if _, err := buildSource(flgSourceA, ds, 0); err != nil {
		return err
	}
	if _, err := buildSource(flgSourceB, ds, 0); err != nil {
		return err
	}
	var score, err = arena.Run(context.Background(), arena.Options{
		Games:       flgGames,
		Concurrency: flgConcurrency,
		NewSourceA:  newSource(flgSourceA),
		NewSourceB:  newSource(flgSourceB),
	})
	if err != nil {
		return err
	}
	fmt.Printf("%v %v - %v %v - draws %v\n",
		flgSourceA, score.WinsA, flgSourceB, score.WinsB, score.Draws)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	var mark, err = common.ParseMark(flgMark)
	if err != nil {
		return err
	}
	var ds knn.Dataset
	if flgOpponent == "knn" {
		ds = loadDatasetOrEmpty()
	}
	if _, err := buildSource(flgOpponent, ds, 0); err != nil {
		return err
	}
	var s = server.New(server.Options{
		HumanMark: mark,
		NewOpponent: func() game.MoveSource {
			var source, _ = buildSource(flgOpponent, ds, time.Now().UnixNano()%1000)
			return source
		},
	})
	log.Println("listening", "addr", flgAddr)
	return s.ListenAndServe(flgAddr)
}

func runDatasetInfo(cmd *cobra.Command, args []string) error {
	var ds, err = dataset.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("kind: %v\n", ds.Kind)
	fmt.Printf("records: %v\n", len(ds.Records))
	var counts = make(map[int]int)
	for _, record := range ds.Records {
		counts[record.Label]++
	}
	var labels []int
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Ints(labels)
	for _, label := range labels {
		fmt.Printf("label %v: %v\n", label, counts[label])
	}
	return nil
}
