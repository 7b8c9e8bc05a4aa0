package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/battleship/internal/apperror"
	"github.com/rocketscienceinc/battleship/internal/entity"
)

type fleetService interface {
	NewFleetBoard(rules entity.Rules) (*entity.Board, error)
}

type botService interface {
	MakeTurn(match *entity.Match) (entity.AttackResult, error)
}

// TurnReport is what a single attack did to the match.
type TurnReport struct {
	Player   entity.PlayerKind
	Result   entity.AttackResult
	Revealed []entity.Coordinate
	Status   entity.MatchStatus
	Turn     entity.PlayerKind
	Winner   *entity.PlayerKind
}

func (that *TurnReport) Sunk() bool {
	return that.Result.Sunk()
}

type Settings struct {
	Rules                  entity.Rules
	RevealSunkSurroundings bool
}

type GameManager struct {
	logger *slog.Logger

	fleet  fleetService
	bot    botService
	random entity.Randomizer

	settings Settings
}

func NewGameManager(logger *slog.Logger, fleet fleetService, bot botService, random entity.Randomizer, settings Settings) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		fleet:    fleet,
		bot:      bot,
		random:   random,
		settings: settings,
	}
}

// NewMatch sets up both fleets and starts the match with the human to move.
func (that *GameManager) NewMatch(ctx context.Context) (*entity.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rules := that.settings.Rules
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	humanBoard, err := that.fleet.NewFleetBoard(rules)
	if err != nil {
		return nil, fmt.Errorf("failed to place human fleet: %w", err)
	}

	computerBoard, err := that.fleet.NewFleetBoard(rules)
	if err != nil {
		return nil, fmt.Errorf("failed to place computer fleet: %w", err)
	}

	match := entity.NewMatch(
		rules,
		entity.NewPlayer(entity.Human, humanBoard, nil),
		entity.NewPlayer(entity.Computer, computerBoard, that.random),
	)

	if err = match.Start(); err != nil {
		return nil, fmt.Errorf("failed to start match: %w", err)
	}

	that.logger.Info("match started", "matchID", match.ID, "boardSize", rules.BoardSize, "ships", len(rules.Fleet))

	return match, nil
}

// MakeTurn resolves the human's shot at (row, col) on the computer board.
func (that *GameManager) MakeTurn(ctx context.Context, match *entity.Match, row, col int) (*TurnReport, error) {
	if err := that.confirmTurn(ctx, match, entity.Human); err != nil {
		return nil, err
	}

	result, err := match.Human.Attack(match.Computer.Board(), row, col)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	return that.resolve(match, entity.Human, result), nil
}

// MakeBotTurn plays one computer shot. An aborted shot hands the turn back to the human.
func (that *GameManager) MakeBotTurn(ctx context.Context, match *entity.Match) (*TurnReport, error) {
	log := that.logger.With("method", "MakeBotTurn", "matchID", match.ID)

	if err := that.confirmTurn(ctx, match, entity.Computer); err != nil {
		return nil, err
	}

	result, err := that.bot.MakeTurn(match)
	if err != nil {
		log.Error("computer turn aborted", "error", err)
		match.PassTurn()

		return nil, fmt.Errorf("failed to make bot turn: %w", err)
	}

	return that.resolve(match, entity.Computer, result), nil
}

func (that *GameManager) confirmTurn(ctx context.Context, match *entity.Match, kind entity.PlayerKind) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := match.ConfirmInProgress(); err != nil {
		return err
	}

	if match.Turn != kind {
		return fmt.Errorf("%w: %s to move", apperror.ErrNotYourTurn, match.Turn)
	}

	return nil
}

// resolve applies the after-shot rules: optional reveal around a sunk ship, win check, and
// a hit keeps the turn while a miss passes it.
func (that *GameManager) resolve(match *entity.Match, attacker entity.PlayerKind, result entity.AttackResult) *TurnReport {
	report := &TurnReport{
		Player: attacker,
		Result: result,
	}

	if result.Sunk() && that.settings.RevealSunkSurroundings {
		report.Revealed = match.Opponent(attacker).Board().MarkSunkSurroundings(result.Ship)
		match.Player(attacker).Exclude(report.Revealed...)
	}

	match.UpdateState()

	if !match.IsFinished() && !result.Hit {
		match.PassTurn()
	}

	report.Status = match.Status
	report.Turn = match.Turn
	report.Winner = match.Winner

	if match.IsFinished() {
		that.logger.Info("match finished", "matchID", match.ID, "winner", match.Winner.String())
	}

	return report
}
