package game

import "errors"

const (
	Width   = 7
	Height  = 6
	Connect = 4 // Discs in a row needed to win
)

// Disc is the content of a grid cell. Empty is the zero value.
type Disc int8

const (
	Empty Disc = iota
	Red
	Yellow
)

func (d Disc) Opponent() Disc {
	switch d {
	case Red:
		return Yellow
	case Yellow:
		return Red
	default:
		return Empty
	}
}

func (d Disc) String() string {
	switch d {
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	default:
		return "Empty"
	}
}

// Code returns the short cell code used when the grid is serialized.
func (d Disc) Code() string {
	switch d {
	case Red:
		return "R"
	case Yellow:
		return "Y"
	default:
		return ""
	}
}

var (
	ErrInvalidColumn = errors.New("invalid column")
	ErrColumnFull    = errors.New("column is full")
	ErrGameOver      = errors.New("game is over - no moves allowed")
	ErrDoublePlay    = errors.New("disc already played last turn")
	ErrInvalidDisc   = errors.New("invalid disc")
)

// Evaluates the position to a score from the perspective of disc (positive is favorable).
type Evaluate func(state *ConnectFour, disc Disc) float64
