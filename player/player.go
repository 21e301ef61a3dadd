package player

import (
	"connectfour/game"
	"connectfour/gamemaster"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

// AIMoveMsg reports the column the opponent played.
type AIMoveMsg struct {
	Column int
	Err    error
}

// Model is a human against AI game of Connect Four in the terminal.
type Model struct {
	gm       *gamemaster.GameMaster
	opponent string
	human    game.Disc
	thinking bool
	last     int
	err      error
}

// NewModel lets a human play human against the opponent. If human is Yellow the opponent opens.
func NewModel(gm *gamemaster.GameMaster, opponent string, human game.Disc) Model {
	return Model{
		gm:       gm,
		opponent: opponent,
		human:    human,
		thinking: gm.NextDisc() != human && !gm.IsGameOver(),
		last:     -1,
	}
}

// Run blocks until the player quits.
func Run(gm *gamemaster.GameMaster, opponent string, human game.Disc) error {
	_, err := tea.NewProgram(NewModel(gm, opponent, human)).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	if m.thinking {
		return m.playAI()
	}
	return nil
}

func (m Model) playAI() tea.Cmd {
	return func() tea.Msg {
		column, err := m.gm.PlayAI(m.opponent)
		return AIMoveMsg{Column: column, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	case AIMoveMsg:
		m.thinking = false
		if msg.Err != nil {
			if errors.Is(msg.Err, gamemaster.ErrStaleState) {
				log.Debug().Msg("discarded stale AI move")
				return m, nil
			}
			m.err = msg.Err
			return m, nil
		}
		m.last = msg.Column
	}
	return m, nil
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	if key == "q" || key == "ctrl+c" {
		return m, tea.Quit
	}
	if m.thinking {
		return m, nil
	}
	m.err = nil

	switch key {
	case "r":
		m.gm.Reset()
		m.last = -1
		return m.opponentTurn()
	case "u":
		m.gm.Undo()
		if m.gm.NextDisc() != m.human {
			m.gm.Undo()
		}
		m.last = -1
		return m.opponentTurn()
	case "1", "2", "3", "4", "5", "6", "7":
		if err := m.gm.Play(int(key[0] - '1')); err != nil {
			m.err = err
			return m, nil
		}
		return m.opponentTurn()
	}
	return m, nil
}

func (m Model) opponentTurn() (tea.Model, tea.Cmd) {
	if m.gm.IsGameOver() || m.gm.NextDisc() == m.human {
		return m, nil
	}
	m.thinking = true
	return m, m.playAI()
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("1 2 3 4 5 6 7\n")
	grid := m.gm.Grid()
	b.WriteString(grid.String())
	b.WriteString("\n")

	switch winner, ok := m.gm.Winner(); {
	case ok && winner == m.human:
		b.WriteString("You win!\n")
	case ok:
		fmt.Fprintf(&b, "%s (%s) wins.\n", winner, m.opponent)
	case m.gm.IsGameOver():
		b.WriteString("Draw.\n")
	case m.thinking:
		fmt.Fprintf(&b, "%s is thinking...\n", m.opponent)
	default:
		fmt.Fprintf(&b, "Your move (%s).", m.human)
		if m.last >= 0 {
			fmt.Fprintf(&b, " %s played %d.", m.opponent, m.last+1)
		}
		b.WriteString("\n")
	}

	if m.err != nil {
		fmt.Fprintf(&b, "Error: %v\n", m.err)
	}

	b.WriteString("\n1-7 play, u undo, r restart, q quit.\n")
	return b.String()
}
