// Package console drives an interactive terminal match against one of
// the engines (or another human).
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/qychen/tictacgo/internal/game"
	"github.com/qychen/tictacgo/pkg/common"
)

type Options struct {
	In        io.Reader
	Out       io.Writer
	HumanMark common.Mark // Empty means ask before each game
	Opponent  game.MoveSource
	AskReplay bool
}

type console struct {
	scanner *bufio.Scanner
	out     io.Writer
	opts    Options
}

func Run(opts Options) error {
	var c = &console{
		scanner: bufio.NewScanner(opts.In),
		out:     opts.Out,
		opts:    opts,
	}
	for {
		var humanMark = opts.HumanMark
		if humanMark == common.Empty {
			var err error
			humanMark, err = c.askMark()
			if err != nil {
				return err
			}
		}
		if err := c.playGame(humanMark); err != nil {
			return err
		}
		if !opts.AskReplay || !c.askReplay() {
			break
		}
	}
	fmt.Fprintln(c.out, "Thank you for playing!")
	return nil
}

func (c *console) playGame(humanMark common.Mark) error {
	var human = &game.FuncSource{
		SourceName: "human",
		Choose:     c.promptMove,
	}
	var xSource, oSource game.MoveSource
	if humanMark == common.X {
		xSource, oSource = human, c.opts.Opponent
	} else {
		xSource, oSource = c.opts.Opponent, human
	}
	var g = game.New(xSource, oSource)

	fmt.Fprintf(c.out, "You are %v, computer is %v. X goes first.\n",
		humanMark, humanMark.Other())
	for {
		fmt.Fprint(c.out, RenderBoard(g.Board()))
		var mark = g.ToMove()
		var source = g.Source(mark)
		if source != human {
			fmt.Fprintf(c.out, "Computer's turn (%v)...\n", mark)
		} else {
			fmt.Fprintf(c.out, "Your turn (%v)\n", mark)
		}
		var result, err = g.PlayTurn()
		if err != nil {
			return err
		}
		if source != human {
			var history = g.History()
			var last = history[len(history)-1]
			fmt.Fprintf(c.out, "Computer chose %v\n", common.SquareName(last.Square))
			if hs, ok := source.(*game.HeuristicSource); ok {
				if hs.LastWasPrediction() {
					fmt.Fprintln(c.out, "(using dataset prediction)")
				} else {
					fmt.Fprintln(c.out, "(using random move - no dataset match)")
				}
			}
		}
		if result.Outcome != common.InProgress {
			fmt.Fprint(c.out, RenderBoard(g.Board()))
			switch result.Outcome {
			case common.Won:
				fmt.Fprintf(c.out, "Player %v wins!\n", result.Winner)
			case common.Draw:
				fmt.Fprintln(c.out, "DRAW! NOBODY WINS!")
			}
			return nil
		}
	}
}

// promptMove reads and validates a row/col pair, re-prompting until
// the move is legal on the current board.
func (c *console) promptMove(board *common.Board, mark common.Mark) (int, error) {
	for {
		var row, ok = c.askInt("Enter row (0-2): ")
		if !ok {
			return common.SquareNone, io.EOF
		}
		col, ok := c.askInt("Enter column (0-2): ")
		if !ok {
			return common.SquareNone, io.EOF
		}
		if !common.InBounds(row, col) || board.At(row, col) != common.Empty {
			fmt.Fprintln(c.out, "Invalid move! Cell is either occupied or out of range.")
			continue
		}
		return common.MakeSquare(row, col), nil
	}
}

func (c *console) askInt(prompt string) (int, bool) {
	for {
		fmt.Fprint(c.out, prompt)
		if !c.scanner.Scan() {
			return 0, false
		}
		var value, err = strconv.Atoi(strings.TrimSpace(c.scanner.Text()))
		if err != nil {
			fmt.Fprintln(c.out, "Invalid input! Please enter a number.")
			continue
		}
		return value, true
	}
}

func (c *console) askMark() (common.Mark, error) {
	for {
		fmt.Fprint(c.out, "Do you want to be X or O? (X goes first): ")
		if !c.scanner.Scan() {
			return common.Empty, io.EOF
		}
		var mark, err = common.ParseMark(strings.TrimSpace(c.scanner.Text()))
		if err != nil {
			fmt.Fprintln(c.out, "Invalid choice! Please enter X or O.")
			continue
		}
		return mark, nil
	}
}

func (c *console) askReplay() bool {
	fmt.Fprint(c.out, "Do you want to play again? (y/n): ")
	if !c.scanner.Scan() {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(c.scanner.Text()), "y")
}

// RunTwoHumans plays both sides from the terminal.
func RunTwoHumans(in io.Reader, out io.Writer, askReplay bool) error {
	var c = &console{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
	for {
		var human = &game.FuncSource{SourceName: "human", Choose: c.promptMove}
		var g = game.New(human, human)
		for {
			fmt.Fprint(out, RenderBoard(g.Board()))
			fmt.Fprintf(out, "Player %v's turn\n", g.ToMove())
			var result, err = g.PlayTurn()
			if err != nil {
				return err
			}
			if result.Outcome != common.InProgress {
				fmt.Fprint(out, RenderBoard(g.Board()))
				if result.Outcome == common.Won {
					fmt.Fprintf(out, "Player %v wins!\n", result.Winner)
				} else {
					fmt.Fprintln(out, "DRAW! NOBODY WINS!")
				}
				break
			}
		}
		if !askReplay || !c.askReplay() {
			break
		}
	}
	fmt.Fprintln(out, "Thank you for playing!")
	return nil
}
