package entity

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/battleship/internal/apperror"
)

// AttackResult describes a resolved shot. Ship is nil on a miss.
type AttackResult struct {
	Coordinate Coordinate `json:"coordinate"`
	Hit        bool       `json:"hit"`
	Ship       *Ship      `json:"-"`
}

// Sunk reports whether the shot finished off the ship it hit.
func (that AttackResult) Sunk() bool {
	return that.Hit && that.Ship.IsSunk()
}

type Board struct {
	size        int
	ships       []*Ship
	hitShots    []Coordinate
	missedShots []Coordinate
}

func NewBoard(size int) *Board {
	return &Board{
		size: size,
	}
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) Ships() []*Ship {
	return slices.Clone(that.ships)
}

func (that *Board) HitShots() []Coordinate {
	return slices.Clone(that.hitShots)
}

func (that *Board) MissedShots() []Coordinate {
	return slices.Clone(that.missedShots)
}

// PlaceShip registers the ship at the given position. On error neither the board nor the
// ship changes.
func (that *Board) PlaceShip(ship *Ship, row, col int, orientation Orientation) error {
	coordinates, err := ship.layout(row, col, orientation, that.size)
	if err != nil {
		return fmt.Errorf("failed to place ship: %w", err)
	}

	for _, target := range coordinates {
		if owner := that.ShipAt(target); owner != nil {
			return fmt.Errorf("%w: cell %s is taken", apperror.ErrOverlap, target)
		}
	}

	if slices.Contains(that.ships, ship) {
		return fmt.Errorf("%w: ship is already on the board", apperror.ErrOverlap)
	}

	ship.coordinates = coordinates
	that.ships = append(that.ships, ship)

	return nil
}

// PlaceShipApart is PlaceShip that also refuses cells next to an already placed ship.
func (that *Board) PlaceShipApart(ship *Ship, row, col int, orientation Orientation) error {
	coordinates, err := ship.layout(row, col, orientation, that.size)
	if err != nil {
		return fmt.Errorf("failed to place ship: %w", err)
	}

	if that.Touches(coordinates) {
		return fmt.Errorf("%w: ship at row %d col %d touches another ship", apperror.ErrOverlap, row, col)
	}

	return that.PlaceShip(ship, row, col, orientation)
}

func (that *Board) ReceiveAttack(row, col int) (AttackResult, error) {
	target := NewCoordinate(row, col)

	if !target.In(that.size) {
		return AttackResult{}, fmt.Errorf("%w: row %d col %d", apperror.ErrOutOfBounds, row, col)
	}

	if that.IsAttacked(target) {
		return AttackResult{}, fmt.Errorf("%w: row %d col %d", apperror.ErrDuplicateAttack, row, col)
	}

	ship := that.ShipAt(target)
	if ship == nil {
		that.missedShots = append(that.missedShots, target)
		return AttackResult{Coordinate: target}, nil
	}

	ship.Hit()
	that.hitShots = append(that.hitShots, target)

	return AttackResult{Coordinate: target, Hit: true, Ship: ship}, nil
}

// AllShipsSunk is vacuously true for a board without ships.
func (that *Board) AllShipsSunk() bool {
	for _, ship := range that.ships {
		if !ship.IsSunk() {
			return false
		}
	}

	return true
}

func (that *Board) IsAttacked(target Coordinate) bool {
	return slices.Contains(that.hitShots, target) || slices.Contains(that.missedShots, target)
}

func (that *Board) ShipAt(target Coordinate) *Ship {
	for _, ship := range that.ships {
		if ship.Occupies(target) {
			return ship
		}
	}

	return nil
}

// Touches reports whether any of the coordinates lies on or next to a placed ship.
func (that *Board) Touches(coordinates []Coordinate) bool {
	for _, cell := range coordinates {
		if that.ShipAt(cell) != nil {
			return true
		}
		for _, around := range cell.Surrounding() {
			if that.ShipAt(around) != nil {
				return true
			}
		}
	}

	return false
}

// MarkSunkSurroundings records every unattacked cell around a sunk ship as missed and
// returns the newly marked cells. Cells holding another ship are never marked.
func (that *Board) MarkSunkSurroundings(ship *Ship) []Coordinate {
	if !ship.IsSunk() {
		return nil
	}

	var marked []Coordinate
	for _, cell := range ship.coordinates {
		for _, around := range cell.Surrounding() {
			if !around.In(that.size) || that.IsAttacked(around) || that.ShipAt(around) != nil {
				continue
			}
			that.missedShots = append(that.missedShots, around)
			marked = append(marked, around)
		}
	}

	return marked
}
