package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]int{4, 5, 6}, 5))
	require.Equal(t, 0, FindIndex([]string{"a", "a"}, "a"), "Should return the first occurrence")
	require.Equal(t, -1, FindIndex([]int{4, 5, 6}, 7))
	require.Equal(t, -1, FindIndex(nil, 7))
}
