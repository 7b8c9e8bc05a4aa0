package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rocketscienceinc/battleship/internal/entity"
	"github.com/rocketscienceinc/battleship/internal/usecase"
)

var errUsageAttack = errors.New("usage: attack <row> <col>")

const helpText = `Commands:
  attack <row> <col>  fire at the computer board (alias: a)
  board               show both boards
  new                 start a new match
  help                show this help
  quit                leave the game
`

func (that *Server) handleNewGame(ctx context.Context, _ []string) error {
	match, err := that.uGame.NewMatch(ctx)
	if err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}

	that.match = match

	that.printf("New match %s. Fire at the computer board!\n", match.ID)
	that.render()

	return nil
}

func (that *Server) handleAttack(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsageAttack
	}

	row, errRow := strconv.Atoi(args[0])
	col, errCol := strconv.Atoi(args[1])
	if errRow != nil || errCol != nil {
		return errUsageAttack
	}

	report, err := that.uGame.MakeTurn(ctx, that.match, row, col)
	if err != nil {
		return err
	}

	that.announce(report)

	if report.Status == entity.StatusInProgress && report.Turn == entity.Computer {
		return that.runComputer(ctx)
	}

	that.render()

	return nil
}

// runComputer plays computer shots until the turn comes back or the match ends. The delay
// only paces the output.
func (that *Server) runComputer(ctx context.Context) error {
	for that.match.IsInProgress() && that.match.Turn == entity.Computer {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(that.computerDelay):
		}

		report, err := that.uGame.MakeBotTurn(ctx, that.match)
		if err != nil {
			that.render()
			return err
		}

		that.announce(report)
	}

	that.render()

	return nil
}

func (that *Server) handleBoard(_ context.Context, _ []string) error {
	that.render()
	return nil
}

func (that *Server) handleHelp(_ context.Context, _ []string) error {
	that.printf("%s", helpText)
	return nil
}

func (that *Server) handleQuit(_ context.Context, _ []string) error {
	that.printf("Bye!\n")
	return errQuit
}

func (that *Server) announce(report *usecase.TurnReport) {
	who := "You"
	if report.Player == entity.Computer {
		who = "Computer"
	}

	switch {
	case report.Sunk():
		that.printf("%s fired at %s: hit and sunk a ship of length %d!\n", who, report.Result.Coordinate, report.Result.Ship.Length())
	case report.Result.Hit:
		that.printf("%s fired at %s: hit!\n", who, report.Result.Coordinate)
	default:
		that.printf("%s fired at %s: miss.\n", who, report.Result.Coordinate)
	}

	if report.Status != entity.StatusFinished || report.Winner == nil {
		return
	}

	if *report.Winner == entity.Human {
		that.printf("You won! Type 'new' to play again.\n")
	} else {
		that.printf("Computer won! Type 'new' to play again.\n")
	}
}

func (that *Server) render() {
	that.printf("%s", Render(that.match))
}
