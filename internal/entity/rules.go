package entity

import (
	"fmt"

	"github.com/rocketscienceinc/battleship/internal/apperror"
)

const (
	DefaultBoardSize = 10
)

// Rules are the match parameters supplied by the caller: grid size and fleet composition.
type Rules struct {
	BoardSize int   `json:"board_size"`
	Fleet     []int `json:"fleet"`
}

func DefaultRules() Rules {
	return Rules{
		BoardSize: DefaultBoardSize,
		Fleet:     []int{4, 3, 3, 2, 2, 2, 1, 1, 1, 1},
	}
}

func (that Rules) Validate() error {
	if that.BoardSize <= 0 {
		return fmt.Errorf("%w: board size %d", apperror.ErrInvalidRules, that.BoardSize)
	}

	if len(that.Fleet) == 0 {
		return fmt.Errorf("%w: empty fleet", apperror.ErrInvalidRules)
	}

	cells := 0
	for _, length := range that.Fleet {
		if length < 1 || length > that.BoardSize {
			return fmt.Errorf("%w: ship length %d on board of size %d", apperror.ErrInvalidRules, length, that.BoardSize)
		}
		cells += length
	}

	if cells > that.BoardSize*that.BoardSize {
		return fmt.Errorf("%w: fleet needs %d cells, board has %d", apperror.ErrInvalidRules, cells, that.BoardSize*that.BoardSize)
	}

	return nil
}
