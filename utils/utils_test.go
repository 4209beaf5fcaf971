package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMax(t *testing.T) {
	require.Equal(t, 3, Max(2, 3))
	require.Equal(t, 3, Max(3, 2))
	require.Equal(t, -2, Max(-3, -2))
	require.Equal(t, 1.5, Max(1.5, 0.5))
}

func TestMin(t *testing.T) {
	require.Equal(t, 2, Min(2, 3))
	require.Equal(t, 2, Min(3, 2))
	require.Equal(t, -3, Min(-3, -2))
	require.Equal(t, 0.5, Min(1.5, 0.5))
}

func TestEqualSlice(t *testing.T) {
	require.True(t, EqualSlice([]int{1, 2, 3}, []int{1, 2, 3}))
	require.True(t, EqualSlice([]int{}, []int{}))
	require.False(t, EqualSlice([]int{1, 2, 3}, []int{1, 2}))
	require.False(t, EqualSlice([]int{1, 2, 3}, []int{1, 2, 4}))
}
