package entity

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/battleship/internal/apperror"
)

type MatchStatus int

const (
	StatusSetup MatchStatus = iota
	StatusInProgress
	StatusFinished
)

func (s MatchStatus) String() string {
	switch s {
	case StatusSetup:
		return "setup"
	case StatusInProgress:
		return "in_progress"
	case StatusFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Match holds the per-match state: both players, whose turn it is and the outcome.
// Boards never lock themselves, attacks must go through the match status checks.
type Match struct {
	ID       string
	Rules    Rules
	Status   MatchStatus
	Turn     PlayerKind
	Winner   *PlayerKind
	Human    *Player
	Computer *Player
}

func NewMatch(rules Rules, human, computer *Player) *Match {
	return &Match{
		ID:       uuid.NewString()[:8],
		Rules:    rules,
		Status:   StatusSetup,
		Turn:     Human,
		Human:    human,
		Computer: computer,
	}
}

func (that *Match) Player(kind PlayerKind) *Player {
	if kind == Computer {
		return that.Computer
	}
	return that.Human
}

func (that *Match) Opponent(kind PlayerKind) *Player {
	if kind == Computer {
		return that.Human
	}
	return that.Computer
}

// Start moves the match from setup to play once both fleets are complete.
func (that *Match) Start() error {
	if that.Status != StatusSetup {
		return fmt.Errorf("%w: status %s", apperror.ErrGameStarted, that.Status)
	}

	for _, player := range []*Player{that.Human, that.Computer} {
		if placed := len(player.Board().Ships()); placed != len(that.Rules.Fleet) {
			return fmt.Errorf("%w: %s has %d of %d ships", apperror.ErrFleetIncomplete, player.Kind(), placed, len(that.Rules.Fleet))
		}
	}

	that.Status = StatusInProgress

	return nil
}

func (that *Match) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Match) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that *Match) ConfirmInProgress() error {
	switch that.Status {
	case StatusSetup:
		return apperror.ErrGameIsNotStarted
	case StatusFinished:
		return apperror.ErrGameFinished
	default:
		return nil
	}
}

// UpdateState finishes the match as soon as one fleet is fully sunk.
func (that *Match) UpdateState() {
	if that.Status != StatusInProgress {
		return
	}

	switch {
	case that.Computer.Board().AllShipsSunk():
		that.finish(Human)
	case that.Human.Board().AllShipsSunk():
		that.finish(Computer)
	}
}

// PassTurn hands the turn to the other player.
func (that *Match) PassTurn() {
	if that.Turn == Human {
		that.Turn = Computer
	} else {
		that.Turn = Human
	}
}

func (that *Match) finish(winner PlayerKind) {
	that.Winner = &winner
	that.Status = StatusFinished
}
