package game

const (
	LineScore = 1.0  // Per three-in-a-row window
	WinScore  = 10.0 // Bonus for a four-in-a-row
)

// EvaluateLines counts three-in-a-row windows for disc (+1 each) and its opponent (-1 each),
// plus +10/-10 when either side already has four in a row. Only exact on terminal positions.
func EvaluateLines(state *ConnectFour, disc Disc) float64 {
	grid := state.Grid()
	opponent := disc.Opponent()

	score := LineScore * float64(grid.CountLines(disc, Connect-1)-grid.CountLines(opponent, Connect-1))

	if winner, ok := grid.Winner(); ok {
		if winner == disc {
			score += WinScore
		} else {
			score -= WinScore
		}
	}
	return score
}
