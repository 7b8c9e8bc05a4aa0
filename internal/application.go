package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/battleship/internal/config"
	"github.com/rocketscienceinc/battleship/internal/service"
	"github.com/rocketscienceinc/battleship/internal/usecase"
	"github.com/rocketscienceinc/battleship/transport/console"
)

// RunApp - runs the console game until the player quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	seed := conf.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debug("random source seeded", "seed", seed)

	random := rand.New(rand.NewPCG(seed, seed>>1|1))

	fleetService := service.NewFleetService(logger, random, conf.Game.PlacementAttempts, conf.Game.RevealSunkSurroundings)
	botService := service.NewBotService(logger)
	gameManager := usecase.NewGameManager(logger, fleetService, botService, random, usecase.Settings{
		Rules:                  conf.Rules(),
		RevealSunkSurroundings: conf.Game.RevealSunkSurroundings,
	})

	consoleServer := console.New(logger, gameManager, conf.Console.ComputerDelay)

	if err := consoleServer.Start(ctx, in, out); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Application context canceled, shutting down")
			return nil
		}
		return fmt.Errorf("console error: %w", err)
	}

	return nil
}
