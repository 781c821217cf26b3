package fsmbin

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomFSM returns a machine with n states, random edges and probabilities
// drawn from probs.
func randomFSM(t *testing.T, r *rand.Rand, n int, probs ...int) *FSM {
	states := make([]State, n)
	for i := range states {
		states[i] = State{
			Next: [2]int{r.Intn(n), r.Intn(n)},
			Prob: probs[r.Intn(len(probs))],
		}
	}
	m, err := NewFSM(states, r.Intn(n))
	require.NoError(t, err)
	return m
}

func TestReachable(t *testing.T) {
	t.Run("two states", func(t *testing.T) {
		m := twoStateFSM(t)
		assert.Equal(t, []int{0, 1}, Reachable(m).GetArray())
		assert.Equal(t, 0, Unreachable(m).Size())
	})

	t.Run("dead state", func(t *testing.T) {
		m := deadStateFSM(t)
		assert.Equal(t, []int{0, 1}, Reachable(m).GetArray())
		assert.Equal(t, []int{2}, Unreachable(m).GetArray())
	})

	t.Run("long cycle", func(t *testing.T) {
		m, err := NewMachines().MakeCycle(1, 2, 3, 4, 5, 6, 7, 8)
		require.NoError(t, err)
		assert.Equal(t, 8, Reachable(m).Size())
	})

	t.Run("initial state not zero", func(t *testing.T) {
		m, err := NewFSMFromTables([][2]int{{0, 0}, {2, 2}, {2, 1}}, []int{1, 2, 3}, 1)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, Reachable(m).GetArray())
		assert.Equal(t, []int{0}, Unreachable(m).GetArray())
	})
}

func TestReachablePartitionsStates(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		m := randomFSM(t, r, 1+r.Intn(40), 0, 1000, 2000, 4095)
		reachable := Reachable(m)
		unreachable := Unreachable(m)

		assert.Equal(t, 0, reachable.Intersection(unreachable).Size())
		assert.Equal(t, m.NumStates(), reachable.Union(unreachable).Size())
		assert.True(t, reachable.Contains(m.Initial()))

		// Closed under both edges.
		for s := range reachable.All() {
			assert.True(t, reachable.Contains(m.Next(s, 0)))
			assert.True(t, reachable.Contains(m.Next(s, 1)))
		}
	}
}

func TestSelfReferential(t *testing.T) {
	assert.Equal(t, []int{0, 1}, SelfReferential(twoStateFSM(t)).GetArray())
	assert.Equal(t, []int{0, 1, 2}, SelfReferential(deadStateFSM(t)).GetArray())

	m, err := NewMachines().MakeCycle(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, SelfReferential(m).Size())
}

func TestStateSet(t *testing.T) {
	s := NewStateSet(6)
	s.Add(4)
	s.Add(1)
	s.Add(4)

	assert.Equal(t, 2, s.Size())
	assert.True(t, s.Contains(1))
	assert.False(t, s.Contains(0))
	assert.Equal(t, []int{1, 4}, s.GetArray())
	assert.Equal(t, "{1, 4}", s.String())
	assert.Equal(t, []int{0, 2, 3, 5}, s.Complement().GetArray())
	assert.Equal(t, "{}", NewStateSet(3).String())
}
