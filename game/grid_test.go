package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWinner(t *testing.T) {
	t.Run("no winner on an empty board", func(t *testing.T) {
		var grid Grid

		_, ok := grid.Winner()

		require.False(t, ok)
	})

	t.Run("four in a row on the bottom row", func(t *testing.T) {
		var grid Grid
		for x := 0; x < 4; x++ {
			grid[Height-1][x] = Yellow
		}

		winner, ok := grid.Winner()

		require.True(t, ok)
		require.Equal(t, Yellow, winner)
	})

	t.Run("horizontal", func(t *testing.T) {
		c := NewConnectFour()
		playAll(t, c, 0, 0, 1, 1, 2, 2, 3)

		winner, ok := c.Winner()

		require.True(t, ok)
		require.Equal(t, Red, winner)
		require.True(t, c.IsGameOver())
	})

	t.Run("vertical", func(t *testing.T) {
		c := NewConnectFour()
		playAll(t, c, 0, 1, 0, 1, 0, 1, 0)

		winner, ok := c.Winner()

		require.True(t, ok)
		require.Equal(t, Red, winner)
	})

	t.Run("ascending diagonal", func(t *testing.T) {
		c := NewConnectFour()
		playAll(t, c, 1, 0, 2, 1, 2, 2, 3, 3, 3, 3)

		winner, ok := c.Winner()

		require.True(t, ok)
		require.Equal(t, Yellow, winner)
	})

	t.Run("descending diagonal", func(t *testing.T) {
		c := NewConnectFour()
		playAll(t, c, 2, 3, 1, 2, 1, 1, 0, 0, 0, 0)

		winner, ok := c.Winner()

		require.True(t, ok)
		require.Equal(t, Yellow, winner)
	})

	t.Run("ascending diagonal away from the bottom row", func(t *testing.T) {
		var grid Grid
		for k := 0; k < 4; k++ {
			grid[4-k][2+k] = Red
		}

		winner, ok := grid.Winner()

		require.True(t, ok)
		require.Equal(t, Red, winner)
	})

	t.Run("three in a row is not a win", func(t *testing.T) {
		var grid Grid
		for x := 0; x < 3; x++ {
			grid[Height-1][x] = Red
		}

		_, ok := grid.Winner()

		require.False(t, ok)
	})

	t.Run("rows are scanned before columns", func(t *testing.T) {
		var grid Grid
		for x := 0; x < 4; x++ {
			grid[Height-1][x] = Yellow
		}
		for y := 0; y < 4; y++ {
			grid[y][6] = Red
		}

		winner, _ := grid.Winner()

		require.Equal(t, Yellow, winner, "First line in scan order should win")
	})
}

func TestCountLines(t *testing.T) {
	var grid Grid
	for x := 0; x < 4; x++ {
		grid[Height-1][x] = Red
	}
	grid[Height-2][0] = Yellow
	grid[Height-3][0] = Yellow
	grid[Height-4][0] = Yellow

	require.Equal(t, 2, grid.CountLines(Red, 3), "A four in a row holds two windows of three")
	require.Equal(t, 1, grid.CountLines(Red, 4))
	require.Equal(t, 1, grid.CountLines(Yellow, 3))
	require.Equal(t, 0, grid.CountLines(Yellow, 4))
}

func TestGridString(t *testing.T) {
	c := NewConnectFour()
	playAll(t, c, 0, 6)

	expected := ". . . . . . .\n" +
		". . . . . . .\n" +
		". . . . . . .\n" +
		". . . . . . .\n" +
		". . . . . . .\n" +
		"R . . . . . Y\n"
	require.Equal(t, expected, c.Grid().String())
}
