package searcher

import (
	"connectfour/game"
	"math"
)

// node owns its children. The parent link is only followed during backup and to read the
// parent's visits for UCB1.
type node struct {
	state    *game.ConnectFour
	move     int       // Column played to reach this node, -1 for the root
	player   game.Disc // Side to move at this node, credited when it wins a rollout
	parent   *node
	children []*node
	wins     float64
	visits   int
}

func newNode(state *game.ConnectFour, move int, parent *node) *node {
	return &node{
		state:  state,
		move:   move,
		player: state.NextDisc(),
		parent: parent,
	}
}

func (n *node) isLeaf() bool {
	return len(n.children) == 0
}

func (n *node) score(exploration float64) float64 {
	parentVisits := 0
	if n.parent != nil {
		parentVisits = n.parent.visits
	}
	return ucb1(n.wins, n.visits, parentVisits, exploration)
}

// pickChild returns the first child with the highest UCB1 score.
func (n *node) pickChild(exploration float64) *node {
	if n.isLeaf() {
		panic("node has no children")
	}

	var best *node
	maxScore := math.Inf(-1)
	for _, child := range n.children {
		score := child.score(exploration)
		if score == math.Inf(1) {
			return child
		}
		if best == nil || score > maxScore {
			maxScore = score
			best = child
		}
	}
	return best
}

// expand adds one child per free column and returns how many were added.
func (n *node) expand() int {
	columns := n.state.FreeColumns()
	n.children = make([]*node, 0, len(columns))
	for _, column := range columns {
		state := n.state.Clone()
		mustPlay(state, column)
		n.children = append(n.children, newNode(state, column, n))
	}
	return len(columns)
}

func (n *node) depth() int {
	depth := 0
	for p := n.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// findBestMove returns the move of the visited child with the lowest win ratio. Children are
// credited for the side to move there, i.e. the opponent of whoever chooses at this node.
func (n *node) findBestMove() int {
	var best *node
	minRatio := math.Inf(1)
	for _, child := range n.children {
		if child.visits == 0 {
			continue
		}
		if ratio := child.wins / float64(child.visits); best == nil || ratio < minRatio {
			minRatio = ratio
			best = child
		}
	}
	if best == nil {
		panic("node has no visited children")
	}
	return best.move
}
