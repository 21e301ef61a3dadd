package game

// Move records a disc dropped into a column.
type Move struct {
	Disc   Disc
	Column int
}
