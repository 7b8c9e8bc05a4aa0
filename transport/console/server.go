package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/rocketscienceinc/battleship/internal/entity"
	"github.com/rocketscienceinc/battleship/internal/usecase"
)

var errQuit = errors.New("quit")

type uGame interface {
	NewMatch(ctx context.Context) (*entity.Match, error)
	MakeTurn(ctx context.Context, match *entity.Match, row, col int) (*usecase.TurnReport, error)
	MakeBotTurn(ctx context.Context, match *entity.Match) (*usecase.TurnReport, error)
}

type Server struct {
	logger *slog.Logger
	uGame  uGame

	computerDelay time.Duration

	match *entity.Match
	out   io.Writer

	handlers map[string]func(ctx context.Context, args []string) error
}

func New(logger *slog.Logger, uGame uGame, computerDelay time.Duration) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,

		computerDelay: computerDelay,

		handlers: make(map[string]func(context.Context, []string) error),
	}

	server.handlers["new"] = server.handleNewGame
	server.handlers["attack"] = server.handleAttack
	server.handlers["a"] = server.handleAttack
	server.handlers["board"] = server.handleBoard
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit
	server.handlers["exit"] = server.handleQuit

	return server
}

// Start - starts a match and serves commands read line by line from in until quit, EOF or
// ctx cancellation.
func (that *Server) Start(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Start")

	that.out = out

	if err := that.handleNewGame(ctx, nil); err != nil {
		return fmt.Errorf("failed to start match: %w", err)
	}
	that.printf("Type 'help' for commands.\n")

	lines := readLines(in)

	for {
		that.printf("> ")

		var line string
		select {
		case <-ctx.Done():
			log.Info("context canceled, stopping console")
			return ctx.Err()
		case next, ok := <-lines:
			if !ok {
				return nil
			}
			line = next
		}

		fields := strings.Fields(strings.ToLower(line))
		if len(fields) == 0 {
			continue
		}

		handler, ok := that.handlers[fields[0]]
		if !ok {
			that.printf("Unknown command %q, type 'help'.\n", fields[0])
			continue
		}

		err := handler(ctx, fields[1:])
		switch {
		case errors.Is(err, errQuit):
			return nil
		case errors.Is(err, context.Canceled):
			return err
		case err != nil:
			log.Debug("command failed", "command", fields[0], "error", err)
			that.printf("%s\n", err)
		}
	}
}

func readLines(in io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	return lines
}

func (that *Server) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
