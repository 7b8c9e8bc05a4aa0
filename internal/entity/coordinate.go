package entity

import (
	"fmt"
	"strings"
)

type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCoordinate(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// In reports whether the coordinate lies on a square grid of the given size.
func (that Coordinate) In(size int) bool {
	return that.Row >= 0 && that.Row < size && that.Col >= 0 && that.Col < size
}

// Adjacent returns the orthogonal neighbours in the order up, down, left, right.
// Neighbours are not bounds checked.
func (that Coordinate) Adjacent() [4]Coordinate {
	return [4]Coordinate{
		{Row: that.Row - 1, Col: that.Col},
		{Row: that.Row + 1, Col: that.Col},
		{Row: that.Row, Col: that.Col - 1},
		{Row: that.Row, Col: that.Col + 1},
	}
}

// Surrounding returns all eight neighbours, not bounds checked.
func (that Coordinate) Surrounding() []Coordinate {
	around := make([]Coordinate, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			around = append(around, Coordinate{Row: that.Row + dr, Col: that.Col + dc})
		}
	}
	return around
}

func (that Coordinate) String() string {
	return fmt.Sprintf("[%d,%d]", that.Row, that.Col)
}

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// step returns the row and column increments for one cell along the orientation.
func (o Orientation) step() (int, int) {
	if o == Vertical {
		return 1, 0
	}
	return 0, 1
}

func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("unknown orientation %q", s)
	}
}
