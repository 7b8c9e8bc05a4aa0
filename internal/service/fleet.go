package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/battleship/internal/apperror"
	"github.com/rocketscienceinc/battleship/internal/entity"
)

const (
	DefaultPlacementAttempts = 1000
	fleetRestarts            = 5
)

type FleetService interface {
	PlaceFleet(board *entity.Board, fleet []int) error
	NewFleetBoard(rules entity.Rules) (*entity.Board, error)
}

type fleetService struct {
	logger *slog.Logger
	random entity.Randomizer

	maxAttempts int
	apart       bool
}

// NewFleetService returns a placer that guesses random positions, trying each ship at
// most maxAttempts times. With apart set, ships never touch, not even diagonally.
func NewFleetService(logger *slog.Logger, random entity.Randomizer, maxAttempts int, apart bool) FleetService {
	if maxAttempts <= 0 {
		maxAttempts = DefaultPlacementAttempts
	}

	return &fleetService{
		logger:      logger.With("component", "fleet"),
		random:      random,
		maxAttempts: maxAttempts,
		apart:       apart,
	}
}

// PlaceFleet places one ship per fleet entry. Ships placed before a failure stay on the
// board, so the board should be discarded on error.
func (that *fleetService) PlaceFleet(board *entity.Board, fleet []int) error {
	rules := entity.Rules{BoardSize: board.Size(), Fleet: fleet}
	if err := rules.Validate(); err != nil {
		return fmt.Errorf("failed to place fleet: %w", err)
	}

	for _, length := range fleet {
		if err := that.placeShip(board, entity.NewShip(length)); err != nil {
			return err
		}
	}

	return nil
}

// NewFleetBoard builds a board carrying the complete fleet, starting over on a fresh board
// when a random layout paints itself into a corner.
func (that *fleetService) NewFleetBoard(rules entity.Rules) (*entity.Board, error) {
	log := that.logger.With("method", "NewFleetBoard")

	var err error
	for range fleetRestarts {
		board := entity.NewBoard(rules.BoardSize)

		if err = that.PlaceFleet(board, rules.Fleet); err == nil {
			return board, nil
		}

		if !errors.Is(err, apperror.ErrFleetPlacement) {
			return nil, err
		}

		log.Debug("fleet placement stuck, starting over", "error", err)
	}

	return nil, err
}

func (that *fleetService) placeShip(board *entity.Board, ship *entity.Ship) error {
	size := board.Size()

	for range that.maxAttempts {
		row, col := that.random.IntN(size), that.random.IntN(size)

		orientation := entity.Horizontal
		if that.random.IntN(2) == 1 {
			orientation = entity.Vertical
		}

		var err error
		if that.apart {
			err = board.PlaceShipApart(ship, row, col, orientation)
		} else {
			err = board.PlaceShip(ship, row, col, orientation)
		}

		if err == nil {
			return nil
		}
	}

	return fmt.Errorf("%w: ship of length %d after %d attempts", apperror.ErrFleetPlacement, ship.Length(), that.maxAttempts)
}
