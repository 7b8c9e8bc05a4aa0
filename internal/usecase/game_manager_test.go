package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/battleship/internal/apperror"
	"github.com/rocketscienceinc/battleship/internal/entity"
	"github.com/rocketscienceinc/battleship/internal/service"
	"github.com/rocketscienceinc/battleship/testing/suite"
)

var errBoardBroken = errors.New("board broken")

type mockFleetService struct {
	mock.Mock
}

func (m *mockFleetService) NewFleetBoard(rules entity.Rules) (*entity.Board, error) {
	args := m.Called(rules)
	board, _ := args.Get(0).(*entity.Board)
	return board, args.Error(1)
}

type mockBotService struct {
	mock.Mock
}

func (m *mockBotService) MakeTurn(match *entity.Match) (entity.AttackResult, error) {
	args := m.Called(match)
	return args.Get(0).(entity.AttackResult), args.Error(1)
}

var smallRules = entity.Rules{BoardSize: 4, Fleet: []int{2, 1}}

// fixedBoard returns a 4x4 board with a 2-ship at (0,0)-(0,1) and a 1-ship at (3,3).
func fixedBoard(t *testing.T) *entity.Board {
	t.Helper()

	board := entity.NewBoard(smallRules.BoardSize)
	require.NoError(t, board.PlaceShip(entity.NewShip(2), 0, 0, entity.Horizontal))
	require.NoError(t, board.PlaceShip(entity.NewShip(1), 3, 3, entity.Horizontal))

	return board
}

func newFixedManager(t *testing.T, st *suite.Suite, reveal bool) (*GameManager, *mockBotService) {
	t.Helper()

	fleet := &mockFleetService{}
	fleet.On("NewFleetBoard", smallRules).Return(fixedBoard(t), nil).Once()
	fleet.On("NewFleetBoard", smallRules).Return(fixedBoard(t), nil).Once()

	bot := &mockBotService{}

	manager := NewGameManager(st.Logger, fleet, bot, st.Random, Settings{
		Rules:                  smallRules,
		RevealSunkSurroundings: reveal,
	})

	return manager, bot
}

func TestGameManager_NewMatch(t *testing.T) {
	t.Run("Creates a started match with full fleets", func(t *testing.T) {
		// Given: a manager with real services
		ctx, st := suite.New(t)
		manager := NewGameManager(st.Logger,
			service.NewFleetService(st.Logger, st.Random, 0, false),
			service.NewBotService(st.Logger),
			st.Random,
			Settings{Rules: st.Rules},
		)

		// When: a match is created
		match, err := manager.NewMatch(ctx)

		// Then: it is in progress, human first, both fleets placed
		require.NoError(t, err)
		assert.Equal(t, entity.StatusInProgress, match.Status)
		assert.Equal(t, entity.Human, match.Turn)
		assert.Len(t, match.Human.Board().Ships(), len(st.Rules.Fleet))
		assert.Len(t, match.Computer.Board().Ships(), len(st.Rules.Fleet))
		assert.True(t, match.Computer.IsComputer())
	})

	t.Run("Returns error if fleet placement fails", func(t *testing.T) {
		ctx, st := suite.New(t)
		fleet := &mockFleetService{}
		fleet.On("NewFleetBoard", smallRules).Return(nil, apperror.ErrFleetPlacement).Once()
		manager := NewGameManager(st.Logger, fleet, &mockBotService{}, st.Random, Settings{Rules: smallRules})

		match, err := manager.NewMatch(ctx)

		require.ErrorIs(t, err, apperror.ErrFleetPlacement)
		assert.Nil(t, match)
		fleet.AssertExpectations(t)
	})

	t.Run("Rejects invalid rules", func(t *testing.T) {
		ctx, st := suite.New(t)
		manager := NewGameManager(st.Logger, &mockFleetService{}, &mockBotService{}, st.Random, Settings{
			Rules: entity.Rules{BoardSize: 2, Fleet: []int{3}},
		})

		_, err := manager.NewMatch(ctx)

		require.ErrorIs(t, err, apperror.ErrInvalidRules)
	})

	t.Run("Returns error for a canceled context", func(t *testing.T) {
		_, st := suite.New(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		manager := NewGameManager(st.Logger, &mockFleetService{}, &mockBotService{}, st.Random, Settings{Rules: smallRules})

		_, err := manager.NewMatch(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestGameManager_MakeTurn(t *testing.T) {
	t.Run("Hit keeps the turn", func(t *testing.T) {
		// Given: a fresh match
		ctx, st := suite.New(t)
		manager, _ := newFixedManager(t, st, false)
		match, err := manager.NewMatch(ctx)
		require.NoError(t, err)

		// When: the human hits (0,0)
		report, err := manager.MakeTurn(ctx, match, 0, 0)

		// Then: the shot is a hit and the human moves again
		require.NoError(t, err)
		assert.True(t, report.Result.Hit)
		assert.False(t, report.Sunk())
		assert.Equal(t, entity.Human, report.Turn)
		assert.Equal(t, entity.StatusInProgress, report.Status)
	})

	t.Run("Miss passes the turn", func(t *testing.T) {
		ctx, st := suite.New(t)
		manager, _ := newFixedManager(t, st, false)
		match, err := manager.NewMatch(ctx)
		require.NoError(t, err)

		report, err := manager.MakeTurn(ctx, match, 2, 2)

		require.NoError(t, err)
		assert.False(t, report.Result.Hit)
		assert.Equal(t, entity.Computer, report.Turn)
		assert.Equal(t, entity.Computer, match.Turn)

		// And: the human cannot move out of turn
		_, err = manager.MakeTurn(ctx, match, 1, 1)
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Board errors are returned and keep the turn", func(t *testing.T) {
		ctx, st := suite.New(t)
		manager, _ := newFixedManager(t, st, false)
		match, err := manager.NewMatch(ctx)
		require.NoError(t, err)
		_, err = manager.MakeTurn(ctx, match, 0, 0)
		require.NoError(t, err)

		_, err = manager.MakeTurn(ctx, match, 0, 0)
		require.ErrorIs(t, err, apperror.ErrDuplicateAttack)

		_, err = manager.MakeTurn(ctx, match, 4, 0)
		require.ErrorIs(t, err, apperror.ErrOutOfBounds)

		assert.Equal(t, entity.Human, match.Turn)
	})

	t.Run("Sinking the last ship finishes the match", func(t *testing.T) {
		// Given: a fresh match
		ctx, st := suite.New(t)
		manager, _ := newFixedManager(t, st, false)
		match, err := manager.NewMatch(ctx)
		require.NoError(t, err)

		// When: the human hits every computer ship cell
		var report *TurnReport
		for _, c := range []entity.Coordinate{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 3, Col: 3}} {
			report, err = manager.MakeTurn(ctx, match, c.Row, c.Col)
			require.NoError(t, err)
		}

		// Then: the human wins and further attacks are refused
		assert.True(t, report.Sunk())
		assert.Equal(t, entity.StatusFinished, report.Status)
		require.NotNil(t, report.Winner)
		assert.Equal(t, entity.Human, *report.Winner)

		_, err = manager.MakeTurn(ctx, match, 2, 2)
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Reveals the surroundings of a sunk ship", func(t *testing.T) {
		ctx, st := suite.New(t)
		manager, _ := newFixedManager(t, st, true)
		match, err := manager.NewMatch(ctx)
		require.NoError(t, err)

		report, err := manager.MakeTurn(ctx, match, 3, 3)

		require.NoError(t, err)
		assert.True(t, report.Sunk())
		assert.ElementsMatch(t, []entity.Coordinate{{Row: 2, Col: 2}, {Row: 2, Col: 3}, {Row: 3, Col: 2}}, report.Revealed)
		assert.ElementsMatch(t, report.Revealed, match.Computer.Board().MissedShots())
		assert.Equal(t, entity.Human, report.Turn)
	})
}

func TestGameManager_MakeBotTurn(t *testing.T) {
	t.Run("Refused while it is the human's turn", func(t *testing.T) {
		ctx, st := suite.New(t)
		manager, bot := newFixedManager(t, st, false)
		match, err := manager.NewMatch(ctx)
		require.NoError(t, err)

		_, err = manager.MakeBotTurn(ctx, match)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		bot.AssertNotCalled(t, "MakeTurn", mock.Anything)
	})

	t.Run("Computer miss hands the turn back", func(t *testing.T) {
		// Given: the human missed and the bot will miss at (2,2)
		ctx, st := suite.New(t)
		manager, bot := newFixedManager(t, st, false)
		match, err := manager.NewMatch(ctx)
		require.NoError(t, err)
		_, err = manager.MakeTurn(ctx, match, 2, 2)
		require.NoError(t, err)

		bot.On("MakeTurn", match).
			Return(entity.AttackResult{Coordinate: entity.NewCoordinate(2, 2)}, nil).
			Once()

		// When: the bot plays
		report, err := manager.MakeBotTurn(ctx, match)

		// Then: the turn is back with the human
		require.NoError(t, err)
		assert.Equal(t, entity.Computer, report.Player)
		assert.Equal(t, entity.Human, match.Turn)
		bot.AssertExpectations(t)
	})

	t.Run("Aborted computer shot returns the turn to the human", func(t *testing.T) {
		ctx, st := suite.New(t)
		manager, bot := newFixedManager(t, st, false)
		match, err := manager.NewMatch(ctx)
		require.NoError(t, err)
		_, err = manager.MakeTurn(ctx, match, 2, 2)
		require.NoError(t, err)

		bot.On("MakeTurn", match).Return(entity.AttackResult{}, errBoardBroken).Once()

		report, err := manager.MakeBotTurn(ctx, match)

		require.ErrorIs(t, err, errBoardBroken)
		assert.Nil(t, report)
		assert.Equal(t, entity.Human, match.Turn)
	})
}

func TestGameManager_FullMatch(t *testing.T) {
	// Given: real services with different seeds
	for seed := uint64(1); seed <= 5; seed++ {
		ctx, st := suite.New(t)
		st.WithSeed(seed)

		manager := NewGameManager(st.Logger,
			service.NewFleetService(st.Logger, st.Random, 0, true),
			service.NewBotService(st.Logger),
			st.Random,
			Settings{Rules: st.Rules, RevealSunkSurroundings: true},
		)

		match, err := manager.NewMatch(ctx)
		require.NoError(t, err)

		// When: the human sweeps the board row by row and the computer answers each miss
		human := []entity.Coordinate{}
		for row := 0; row < st.Rules.BoardSize; row++ {
			for col := 0; col < st.Rules.BoardSize; col++ {
				human = append(human, entity.NewCoordinate(row, col))
			}
		}

		for turns := 0; !match.IsFinished(); turns++ {
			require.Less(t, turns, 1000, "match did not terminate")

			if match.Turn == entity.Computer {
				_, err = manager.MakeBotTurn(ctx, match)
				require.NoError(t, err)
				continue
			}

			next := human[0]
			human = human[1:]
			if match.Computer.Board().IsAttacked(next) {
				continue
			}

			_, err = manager.MakeTurn(ctx, match, next.Row, next.Col)
			require.NoError(t, err)
		}

		// Then: there is a winner whose opponent's fleet is fully sunk
		require.NotNil(t, match.Winner)
		assert.True(t, match.Opponent(*match.Winner).Board().AllShipsSunk())

		for _, player := range []*entity.Player{match.Human, match.Computer} {
			for _, ship := range player.Board().Ships() {
				assert.LessOrEqual(t, ship.Hits(), ship.Length())
			}
		}
	}
}
