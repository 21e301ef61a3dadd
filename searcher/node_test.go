package searcher

import (
	"connectfour/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeExpand(t *testing.T) {
	t.Run("adding one child per free column", func(t *testing.T) {
		root := newNode(newState(t), -1, nil)

		added := root.expand()

		require.Equal(t, game.Width, added)
		require.Len(t, root.children, game.Width)
		for i, child := range root.children {
			require.Equal(t, i, child.move, "Children should follow column order")
			require.Equal(t, root, child.parent)
			require.Equal(t, game.Yellow, child.player, "Child player should be the side to move there")
			require.Equal(t, 1, child.state.Turns(), "Child should hold its own copy of the state")
			require.Zero(t, child.visits)
		}
		require.Equal(t, 0, root.state.Turns(), "Expansion should not modify the parent state")
	})

	t.Run("skipping full columns", func(t *testing.T) {
		root := newNode(onlyLastColumnFree(t), -1, nil)

		added := root.expand()

		require.Equal(t, 1, added)
		require.Equal(t, 6, root.children[0].move)
	})
}

func TestNodePickChild(t *testing.T) {
	t.Run("preferring the first unvisited child", func(t *testing.T) {
		parent := &node{visits: 3}
		visited := &node{parent: parent, wins: 3, visits: 3}
		unvisited := &node{parent: parent}
		other := &node{parent: parent}
		parent.children = []*node{visited, unvisited, other}

		require.Equal(t, unvisited, parent.pickChild(DefaultExploration))
	})

	t.Run("selecting the highest UCB1 child", func(t *testing.T) {
		parent := &node{visits: 4}
		low := &node{parent: parent, wins: 0, visits: 2}
		high := &node{parent: parent, wins: 2, visits: 2}
		parent.children = []*node{low, high}

		require.Equal(t, high, parent.pickChild(DefaultExploration))
	})

	t.Run("breaking ties by order", func(t *testing.T) {
		parent := &node{visits: 4}
		first := &node{parent: parent, wins: 1, visits: 2}
		second := &node{parent: parent, wins: 1, visits: 2}
		parent.children = []*node{first, second}

		require.Equal(t, first, parent.pickChild(DefaultExploration))
	})

	t.Run("panicking on a leaf", func(t *testing.T) {
		require.Panics(t, func() {
			(&node{}).pickChild(DefaultExploration)
		})
	})
}

func TestSelectLeaf(t *testing.T) {
	root := &node{visits: 2}
	child := &node{parent: root, wins: 2, visits: 1}
	other := &node{parent: root, wins: 0, visits: 1}
	grandChild := &node{parent: child}
	root.children = []*node{child, other}
	child.children = []*node{grandChild}

	require.Equal(t, grandChild, selectLeaf(root, DefaultExploration),
		"Should descend through the best children down to a leaf")
	require.Equal(t, 2, grandChild.depth())
}

func TestBackup(t *testing.T) {
	t.Run("crediting nodes of the winning player", func(t *testing.T) {
		root := &node{player: game.Red}
		child := &node{player: game.Yellow, parent: root}
		grandChild := &node{player: game.Red, parent: child}

		backup(grandChild, game.Red)

		require.Equal(t, 1, root.visits)
		require.Equal(t, 1, child.visits)
		require.Equal(t, 1, grandChild.visits)
		require.Equal(t, WIN, root.wins)
		require.Zero(t, child.wins, "Losing side should get no credit")
		require.Equal(t, WIN, grandChild.wins)
	})

	t.Run("draws credit nobody", func(t *testing.T) {
		root := &node{player: game.Red}
		child := &node{player: game.Yellow, parent: root}

		backup(child, game.Empty)

		require.Equal(t, 1, root.visits)
		require.Equal(t, 1, child.visits)
		require.Zero(t, root.wins)
		require.Zero(t, child.wins)
	})
}

func TestFindBestMove(t *testing.T) {
	t.Run("choosing the lowest win ratio", func(t *testing.T) {
		root := &node{children: []*node{
			{move: 0, wins: 5, visits: 10},
			{move: 1, wins: 1, visits: 10},
			{move: 2, wins: 1, visits: 2},
		}}

		require.Equal(t, 1, root.findBestMove())
	})

	t.Run("ignoring unvisited children", func(t *testing.T) {
		root := &node{children: []*node{
			{move: 0},
			{move: 4, wins: 3, visits: 3},
		}}

		require.Equal(t, 4, root.findBestMove())
	})

	t.Run("panicking without visited children", func(t *testing.T) {
		require.Panics(t, func() {
			(&node{children: []*node{{move: 0}}}).findBestMove()
		})
	})
}

func TestRollout(t *testing.T) {
	state := newState(t, 3, 3)
	rng := newSettings([]Option{WithSeed(1)}).rng

	winner := rollout(state, rng)

	require.Equal(t, 2, state.Turns(), "Rollout should play on a copy")
	require.Contains(t, []game.Disc{game.Empty, game.Red, game.Yellow}, winner)
}
