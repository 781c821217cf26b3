package fsmbin

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrim(t *testing.T) {
	t.Run("dead state", func(t *testing.T) {
		trimmed, err := Trim(deadStateFSM(t))
		require.NoError(t, err)
		assert.Equal(t, [][2]int{{0, 1}, {1, 1}}, trimmed.Transitions())
		assert.Equal(t, []int{100, 50}, trimmed.Probabilities())
		assert.Equal(t, 0, trimmed.Initial())
	})

	t.Run("nothing to remove", func(t *testing.T) {
		m := twoStateFSM(t)
		trimmed, err := Trim(m)
		require.NoError(t, err)
		assert.True(t, m.Equal(trimmed))
	})

	t.Run("initial keeps relative position", func(t *testing.T) {
		// State 0 and 3 are unreachable from 2; 1 and 2 survive as 0 and 1.
		m, err := NewFSMFromTables(
			[][2]int{{0, 0}, {2, 1}, {1, 2}, {3, 0}},
			[]int{5, 6, 7, 8}, 2)
		require.NoError(t, err)

		trimmed, err := Trim(m)
		require.NoError(t, err)
		assert.Equal(t, [][2]int{{1, 0}, {0, 1}}, trimmed.Transitions())
		assert.Equal(t, []int{6, 7}, trimmed.Probabilities())
		assert.Equal(t, 1, trimmed.Initial())
	})

	t.Run("keeps scale", func(t *testing.T) {
		m, err := NewFSMFromTables([][2]int{{0, 0}, {1, 1}}, []int{60000, 1}, 0, WithScale(65535))
		require.NoError(t, err)
		trimmed, err := Trim(m)
		require.NoError(t, err)
		assert.Equal(t, 65535, trimmed.Scale())
		assert.Equal(t, 1, trimmed.NumStates())
	})
}

func TestTrimIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		m := randomFSM(t, r, 1+r.Intn(30), 0, 10, 20)
		once, err := Trim(m)
		require.NoError(t, err)
		twice, err := Trim(once)
		require.NoError(t, err)

		assert.True(t, once.Equal(twice))
		assert.Equal(t, Reachable(m).Size(), once.NumStates())
		assert.Equal(t, 0, Unreachable(once).Size())
	}
}

func TestRestrict(t *testing.T) {
	// 0 -> 1 -> 2 -> 0 on bit 0, everything loops to 3 on bit 1.
	m, err := NewFSMFromTables(
		[][2]int{{1, 3}, {2, 3}, {0, 3}, {3, 3}},
		[]int{10, 20, 30, 40}, 0)
	require.NoError(t, err)

	keep := NewStateSet(m.NumStates())
	keep.Add(1)
	keep.Add(3)

	restricted, err := Restrict(m, keep)
	require.NoError(t, err)

	// Initial state 0 is always kept; state 1's 0-edge into dropped state 2
	// becomes a self loop.
	assert.Equal(t, [][2]int{{1, 2}, {1, 2}, {2, 2}}, restricted.Transitions())
	assert.Equal(t, []int{10, 20, 40}, restricted.Probabilities())
	assert.Equal(t, 0, restricted.Initial())
}
