// meta/meta.go
package meta

// NUM_GAMES defines the number of games per experiment matchup.
const NUM_GAMES = 10

// MAX_TURNS bounds a game loop; a Connect Four game cannot outlast its 6x7 cells.
const MAX_TURNS = 42

// EXPERIMENTS_DIR is where experiment results are stored.
const EXPERIMENTS_DIR = "experiments"
