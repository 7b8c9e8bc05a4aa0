package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/battleship/internal/entity"
)

const (
	cellWater = '.'
	cellShip  = 'S'
	cellHit   = 'X'
	cellMiss  = 'o'

	boardGap = "    "
)

// Render draws the human board (ships visible) next to the computer board (ships hidden).
func Render(match *entity.Match) string {
	left := renderBoard("Your board", match.Human.Board(), true)
	right := renderBoard("Computer board", match.Computer.Board(), false)

	width := 0
	for _, line := range left {
		width = max(width, len(line))
	}

	var sb strings.Builder
	for i := range left {
		fmt.Fprintf(&sb, "%-*s%s%s\n", width, left[i], boardGap, right[i])
	}

	return sb.String()
}

func renderBoard(title string, board *entity.Board, showShips bool) []string {
	size := board.Size()
	lines := make([]string, 0, size+2)

	lines = append(lines, title)

	var header strings.Builder
	header.WriteString("   ")
	for col := range size {
		fmt.Fprintf(&header, "%2d", col)
	}
	lines = append(lines, header.String())

	for row := range size {
		var line strings.Builder
		fmt.Fprintf(&line, "%2d ", row)
		for col := range size {
			fmt.Fprintf(&line, " %c", cellSymbol(board, entity.NewCoordinate(row, col), showShips))
		}
		lines = append(lines, line.String())
	}

	return lines
}

func cellSymbol(board *entity.Board, cell entity.Coordinate, showShips bool) rune {
	switch {
	case board.IsAttacked(cell) && board.ShipAt(cell) != nil:
		return cellHit
	case board.IsAttacked(cell):
		return cellMiss
	case showShips && board.ShipAt(cell) != nil:
		return cellShip
	default:
		return cellWater
	}
}
