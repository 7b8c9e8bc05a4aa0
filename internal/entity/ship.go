package entity

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/battleship/internal/apperror"
)

type Ship struct {
	length      int
	hits        int
	coordinates []Coordinate
}

func NewShip(length int) *Ship {
	return &Ship{
		length: length,
	}
}

func (that *Ship) Length() int {
	return that.length
}

func (that *Ship) Hits() int {
	return that.hits
}

// Hit does not check the hit count against the length, callers hit each cell once.
func (that *Ship) Hit() {
	that.hits++
}

func (that *Ship) IsSunk() bool {
	return that.hits == that.length
}

func (that *Ship) IsPlaced() bool {
	return len(that.coordinates) > 0
}

func (that *Ship) Coordinates() []Coordinate {
	return slices.Clone(that.coordinates)
}

func (that *Ship) Occupies(target Coordinate) bool {
	return slices.Contains(that.coordinates, target)
}

// Place lays the ship out from (row, col) along the orientation, replacing any previous
// placement. The ship is left untouched when the layout does not fit the grid.
func (that *Ship) Place(row, col int, orientation Orientation, boardSize int) error {
	coordinates, err := that.layout(row, col, orientation, boardSize)
	if err != nil {
		return err
	}

	that.coordinates = coordinates

	return nil
}

func (that *Ship) layout(row, col int, orientation Orientation, boardSize int) ([]Coordinate, error) {
	if row < 0 || col < 0 {
		return nil, fmt.Errorf("%w: %w: row %d col %d", apperror.ErrInvalidCoordinate, apperror.ErrOutOfBounds, row, col)
	}

	dRow, dCol := orientation.step()
	last := NewCoordinate(row+dRow*(that.length-1), col+dCol*(that.length-1))
	if !NewCoordinate(row, col).In(boardSize) || !last.In(boardSize) {
		return nil, fmt.Errorf("%w: ship of length %d at row %d col %d %s", apperror.ErrOutOfBounds, that.length, row, col, orientation)
	}

	coordinates := make([]Coordinate, 0, that.length)
	for i := range that.length {
		coordinates = append(coordinates, NewCoordinate(row+dRow*i, col+dCol*i))
	}

	return coordinates, nil
}
