package entity

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/battleship/internal/apperror"
)

type PlayerKind int

const (
	Human PlayerKind = iota
	Computer
)

func (k PlayerKind) String() string {
	switch k {
	case Human:
		return "human"
	case Computer:
		return "computer"
	default:
		return "unknown"
	}
}

// Randomizer is the random source of a computer player. *rand.Rand from math/rand/v2
// satisfies it.
type Randomizer interface {
	IntN(n int) int
}

type Player struct {
	kind  PlayerKind
	board *Board

	attacked        []Coordinate
	priorityTargets []Coordinate
	random          Randomizer
}

// NewPlayer creates a player owning board. random is only used by computer players and
// may be nil for humans.
func NewPlayer(kind PlayerKind, board *Board, random Randomizer) *Player {
	return &Player{
		kind:   kind,
		board:  board,
		random: random,
	}
}

func (that *Player) Kind() PlayerKind {
	return that.kind
}

func (that *Player) IsComputer() bool {
	return that.kind == Computer
}

func (that *Player) Board() *Board {
	return that.board
}

func (that *Player) AttackedCoordinates() []Coordinate {
	return slices.Clone(that.attacked)
}

func (that *Player) PriorityTargets() []Coordinate {
	return slices.Clone(that.priorityTargets)
}

func (that *Player) HasAttacked(target Coordinate) bool {
	return slices.Contains(that.attacked, target)
}

func (that *Player) Attack(target *Board, row, col int) (AttackResult, error) {
	return target.ReceiveAttack(row, col)
}

// Exclude adds coordinates to the attack history without firing at them.
func (that *Player) Exclude(coordinates ...Coordinate) {
	for _, c := range coordinates {
		if !that.HasAttacked(c) {
			that.attacked = append(that.attacked, c)
		}
	}
}

// SelectAndAttack runs one hunt/target turn: queued neighbours of earlier hits go first,
// otherwise a random unattacked cell is chosen. A hit queues its neighbours.
func (that *Player) SelectAndAttack(target *Board) (AttackResult, error) {
	if !that.IsComputer() {
		return AttackResult{}, apperror.ErrNotComputer
	}

	chosen, err := that.nextTarget(target.Size())
	if err != nil {
		return AttackResult{}, err
	}

	that.attacked = append(that.attacked, chosen)

	result, err := that.Attack(target, chosen.Row, chosen.Col)
	if err != nil {
		return AttackResult{}, fmt.Errorf("computer turn aborted: %w", err)
	}

	if result.Hit {
		that.targetAdjacent(chosen, target.Size())
	}

	return result, nil
}

func (that *Player) nextTarget(size int) (Coordinate, error) {
	for len(that.priorityTargets) > 0 {
		next := that.priorityTargets[0]
		that.priorityTargets = that.priorityTargets[1:]

		// an earlier turn may have fired at or excluded a queued cell
		if !that.HasAttacked(next) {
			return next, nil
		}
	}

	if that.countAttackedIn(size) >= size*size {
		return Coordinate{}, fmt.Errorf("%w: all %d cells attacked", apperror.ErrNoTargetsLeft, size*size)
	}

	for {
		candidate := NewCoordinate(that.random.IntN(size), that.random.IntN(size))
		if !that.HasAttacked(candidate) {
			return candidate, nil
		}
	}
}

func (that *Player) countAttackedIn(size int) int {
	count := 0
	for _, c := range that.attacked {
		if c.In(size) {
			count++
		}
	}
	return count
}

func (that *Player) targetAdjacent(hit Coordinate, size int) {
	for _, next := range hit.Adjacent() {
		if next.In(size) && !that.HasAttacked(next) {
			that.priorityTargets = append(that.priorityTargets, next)
		}
	}
}
