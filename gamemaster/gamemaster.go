package gamemaster

import (
	"connectfour/game"
	"connectfour/searcher"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	Minimax = "minimax"
	MCTS    = "mcts"
)

var (
	ErrUnknownOpponent = errors.New("unknown opponent")
	ErrStaleState      = errors.New("game changed during search")
)

// GameMaster guards the live game shared with the presentation layer.
type GameMaster struct {
	mu        sync.Mutex
	game      *game.ConnectFour
	version   uint64 // Bumped on every change to the game
	searchMu  sync.Mutex
	searchers map[string]searcher.Searcher
}

// NewGameMaster starts a fresh game. searchers are the AI opponents, by name.
func NewGameMaster(searchers map[string]searcher.Searcher) *GameMaster {
	return &GameMaster{
		game:      game.NewConnectFour(),
		searchers: searchers,
	}
}

// DefaultSearchers returns minimax and MCTS opponents with their default settings.
func DefaultSearchers() map[string]searcher.Searcher {
	return map[string]searcher.Searcher{
		Minimax: searcher.NewMinimax(),
		MCTS:    searcher.NewMCTS(),
	}
}

func (gm *GameMaster) Grid() game.Grid {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	return gm.game.Grid()
}

// Columns returns the cell codes of every column, top to bottom.
func (gm *GameMaster) Columns() [][]string {
	grid := gm.Grid()

	columns := make([][]string, game.Width)
	for x := range columns {
		columns[x] = make([]string, game.Height)
		for y := 0; y < game.Height; y++ {
			columns[x][y] = grid[y][x].Code()
		}
	}
	return columns
}

func (gm *GameMaster) NextDisc() game.Disc {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	return gm.game.NextDisc()
}

func (gm *GameMaster) Winner() (game.Disc, bool) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	return gm.game.Winner()
}

func (gm *GameMaster) IsGameOver() bool {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	return gm.game.IsGameOver()
}

// Play drops the disc of the side to move into column.
func (gm *GameMaster) Play(column int) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	return gm.apply(func() error { return gm.game.Play(column) })
}

// Place drops an explicitly chosen disc into column.
func (gm *GameMaster) Place(column int, disc game.Disc) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	return gm.apply(func() error { return gm.game.Place(column, disc) })
}

func (gm *GameMaster) apply(move func() error) error {
	if err := move(); err != nil {
		return err
	}
	gm.version++
	if last, ok := gm.game.LastMove(); ok {
		log.Debug().Str("disc", last.Disc.String()).Int("column", last.Column).Msg("played")
	}
	return nil
}

// Undo takes back the last move, if any.
func (gm *GameMaster) Undo() {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if gm.game.Turns() == 0 {
		return
	}
	gm.game.Undo()
	gm.version++
}

func (gm *GameMaster) Reset() {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	gm.game.Reset()
	gm.version++
	log.Debug().Msg("game reset")
}

// SuggestMove asks an opponent for a column without playing it.
func (gm *GameMaster) SuggestMove(opponent string) (int, error) {
	column, _, err := gm.search(opponent)
	return column, err
}

// PlayAI lets an opponent play for the side to move. The search runs on a copy without
// holding the game lock; the move is dropped with ErrStaleState if the game changed meanwhile.
func (gm *GameMaster) PlayAI(opponent string) (int, error) {
	column, version, err := gm.search(opponent)
	if err != nil {
		return -1, err
	}

	gm.mu.Lock()
	defer gm.mu.Unlock()

	if gm.version != version {
		return -1, ErrStaleState
	}
	if err := gm.apply(func() error { return gm.game.Play(column) }); err != nil {
		return -1, fmt.Errorf("%s played column %d: %w", opponent, column, err)
	}
	return column, nil
}

func (gm *GameMaster) search(opponent string) (int, uint64, error) {
	s, ok := gm.searchers[opponent]
	if !ok {
		return -1, 0, fmt.Errorf("%w: %q", ErrUnknownOpponent, opponent)
	}

	// Searchers are not safe for concurrent use
	gm.searchMu.Lock()
	defer gm.searchMu.Unlock()

	gm.mu.Lock()
	if gm.game.IsGameOver() {
		gm.mu.Unlock()
		return -1, 0, game.ErrGameOver
	}
	state := gm.game.Clone()
	version := gm.version
	gm.mu.Unlock()

	return s.FindNextMove(state), version, nil
}
