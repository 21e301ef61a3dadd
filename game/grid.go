package game

import "strings"

// Grid is indexed [row][column], row 0 being the top of the board.
type Grid [Height][Width]Disc

type direction struct {
	dy, dx int
}

// Scan order of line orientations: rows, columns, ascending then descending diagonals.
var orientations = []direction{
	{dy: 0, dx: 1},
	{dy: 1, dx: 0},
	{dy: -1, dx: 1},
	{dy: 1, dx: 1},
}

// lines calls visit with the disc of every window of length cells in a row holding the same
// non-empty disc, stopping early when visit returns false.
func (g *Grid) lines(length int, visit func(Disc) bool) {
	for _, d := range orientations {
		for _, start := range starts(d, length) {
			y, x := start[0], start[1]
			disc := g[y][x]
			if disc == Empty {
				continue
			}
			uniform := true
			for k := 1; k < length; k++ {
				if g[y+k*d.dy][x+k*d.dx] != disc {
					uniform = false
					break
				}
			}
			if uniform && !visit(disc) {
				return
			}
		}
	}
}

// starts lists the cells a window can begin at for an orientation, in scan order.
func starts(d direction, length int) [][2]int {
	var cells [][2]int
	switch {
	case d.dy == 0: // Rows left to right, top to bottom
		for y := 0; y < Height; y++ {
			for x := 0; x+length <= Width; x++ {
				cells = append(cells, [2]int{y, x})
			}
		}
	case d.dx == 0: // Columns top to bottom, left to right
		for x := 0; x < Width; x++ {
			for y := 0; y+length <= Height; y++ {
				cells = append(cells, [2]int{y, x})
			}
		}
	case d.dy < 0:
		for y := length - 1; y < Height; y++ {
			for x := 0; x+length <= Width; x++ {
				cells = append(cells, [2]int{y, x})
			}
		}
	default:
		for y := 0; y+length <= Height; y++ {
			for x := 0; x+length <= Width; x++ {
				cells = append(cells, [2]int{y, x})
			}
		}
	}
	return cells
}

// Winner returns the disc of the first four-in-a-row found.
func (g *Grid) Winner() (Disc, bool) {
	winner := Empty
	g.lines(Connect, func(disc Disc) bool {
		winner = disc
		return false
	})
	return winner, winner != Empty
}

// CountLines counts the windows of length consecutive cells all holding disc.
func (g *Grid) CountLines(disc Disc, length int) int {
	count := 0
	g.lines(length, func(d Disc) bool {
		if d == disc {
			count++
		}
		return true
	})
	return count
}

func (g *Grid) IsFull() bool {
	for x := 0; x < Width; x++ {
		if g[0][x] == Empty {
			return false
		}
	}
	return true
}

func (g Grid) String() string {
	var b strings.Builder
	for _, row := range g {
		for x, cell := range row {
			if x > 0 {
				b.WriteByte(' ')
			}
			if cell == Empty {
				b.WriteByte('.')
			} else {
				b.WriteString(cell.Code())
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
