package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/battleship/internal/entity"
)

type BotService interface {
	MakeTurn(match *entity.Match) (entity.AttackResult, error)
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// MakeTurn fires the computer's next hunt/target shot at the human board.
func (that *botService) MakeTurn(match *entity.Match) (entity.AttackResult, error) {
	result, err := match.Computer.SelectAndAttack(match.Human.Board())
	if err != nil {
		return entity.AttackResult{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot fired",
		"matchID", match.ID,
		"coordinate", result.Coordinate.String(),
		"hit", result.Hit,
		"queued", len(match.Computer.PriorityTargets()),
	)

	return result, nil
}
