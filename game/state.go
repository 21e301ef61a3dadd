package game

// ConnectFour is a single in-memory game. It is not safe for concurrent use.
type ConnectFour struct {
	grid  Grid
	moves []Move // Applied moves, oldest first
}

func NewConnectFour() *ConnectFour {
	return &ConnectFour{}
}

// Clone returns an independent copy of the game.
func (c *ConnectFour) Clone() *ConnectFour {
	moves := make([]Move, len(c.moves), cap(c.moves))
	copy(moves, c.moves)
	return &ConnectFour{
		grid:  c.grid,
		moves: moves,
	}
}

// Grid returns a snapshot of the cells.
func (c *ConnectFour) Grid() Grid {
	return c.grid
}

// NextDisc derives whose turn it is from the move history: Red starts, then discs alternate.
func (c *ConnectFour) NextDisc() Disc {
	if len(c.moves) == 0 || c.moves[len(c.moves)-1].Disc == Yellow {
		return Red
	}
	return Yellow
}

// LastMove returns the most recent move, if any.
func (c *ConnectFour) LastMove() (Move, bool) {
	if len(c.moves) == 0 {
		return Move{}, false
	}
	return c.moves[len(c.moves)-1], true
}

// Turns returns the number of moves applied so far.
func (c *ConnectFour) Turns() int {
	return len(c.moves)
}

// FreeColumns lists, in ascending order, the columns whose top cell is empty.
func (c *ConnectFour) FreeColumns() []int {
	free := make([]int, 0, Width)
	for x := 0; x < Width; x++ {
		if c.grid[0][x] == Empty {
			free = append(free, x)
		}
	}
	return free
}

func (c *ConnectFour) Winner() (Disc, bool) {
	return c.grid.Winner()
}

func (c *ConnectFour) IsGameOver() bool {
	if c.grid.IsFull() {
		return true
	}
	_, ok := c.grid.Winner()
	return ok
}

// Play drops the next disc into column.
func (c *ConnectFour) Play(column int) error {
	return c.drop(column, c.NextDisc())
}

// Place drops an explicitly chosen disc into column. The disc must differ from the one
// played last.
func (c *ConnectFour) Place(column int, disc Disc) error {
	if disc != Red && disc != Yellow {
		return ErrInvalidDisc
	}
	if last, ok := c.LastMove(); ok && last.Disc == disc {
		return ErrDoublePlay
	}
	return c.drop(column, disc)
}

func (c *ConnectFour) drop(column int, disc Disc) error {
	if column < 0 || column >= Width {
		return ErrInvalidColumn
	}
	if c.IsGameOver() {
		return ErrGameOver
	}
	row := c.lowestEmptyRow(column)
	if row < 0 {
		return ErrColumnFull
	}
	c.grid[row][column] = disc
	c.moves = append(c.moves, Move{Disc: disc, Column: column})
	return nil
}

func (c *ConnectFour) lowestEmptyRow(column int) int {
	for y := Height - 1; y >= 0; y-- {
		if c.grid[y][column] == Empty {
			return y
		}
	}
	return -1
}

// Undo takes back the last move. It does nothing on a fresh game.
func (c *ConnectFour) Undo() {
	last, ok := c.LastMove()
	if !ok {
		return
	}
	c.moves = c.moves[:len(c.moves)-1]
	for y := 0; y < Height; y++ {
		if c.grid[y][last.Column] != Empty {
			c.grid[y][last.Column] = Empty
			return
		}
	}
}

// Reset clears the board and the history.
func (c *ConnectFour) Reset() {
	c.grid = Grid{}
	c.moves = c.moves[:0]
}
