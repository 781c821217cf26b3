package fsmbin

import (
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	fsm := func(next [][2]int, probs []int, initial int) *FSM {
		m, err := NewFSMFromTables(next, probs, initial)
		require.NoError(t, err)
		return m
	}
	a := fsm([][2]int{{0, 1}, {1, 0}}, []int{2048, 1024}, 0)

	tests := []struct {
		name     string
		b        *FSM
		wantKind ComparisonKind
		wantA    int
		wantB    int
		wantBit  int
	}{
		{
			name:     "identical",
			b:        a,
			wantKind: Equivalent, wantA: -1, wantB: -1, wantBit: -1,
		},
		{
			name:     "relabeled",
			b:        fsm([][2]int{{0, 1}, {1, 0}}, []int{1024, 2048}, 1),
			wantKind: Equivalent, wantA: -1, wantB: -1, wantBit: -1,
		},
		{
			name:     "probability differs",
			b:        fsm([][2]int{{0, 1}, {1, 0}}, []int{2048, 1000}, 0),
			wantKind: ProbabilityMismatch, wantA: 1, wantB: 1, wantBit: -1,
		},
		{
			name:     "edge differs",
			b:        fsm([][2]int{{0, 1}, {0, 0}}, []int{2048, 1024}, 0),
			wantKind: StructuralMismatch, wantA: 1, wantB: 1, wantBit: 0,
		},
		{
			name:     "initial probability differs",
			b:        fsm([][2]int{{0, 1}, {1, 0}}, []int{2048, 1024}, 1),
			wantKind: ProbabilityMismatch, wantA: 0, wantB: 1, wantBit: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Compare(a, tt.b)
			assert.Equal(t, tt.wantKind, result.Kind, result.String())
			assert.Equal(t, tt.wantA, result.StateA)
			assert.Equal(t, tt.wantB, result.StateB)
			assert.Equal(t, tt.wantBit, result.Bit)
			assert.Equal(t, tt.wantKind == Equivalent, result.Equivalent())
			assert.Equal(t, tt.wantKind == Equivalent, result.Err() == nil)
		})
	}
}

func TestCompareSelf(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		m := randomFSM(t, r, 1+r.Intn(40), 0, 1, 2, 3)
		result := Compare(m, m)
		assert.True(t, result.Equivalent(), result.String())
		assert.Equal(t, Reachable(m).Size(), result.Matched)
	}
}

// permute Returns m with state i renamed to perm[i].
func permute(t *testing.T, m *FSM, perm []int) *FSM {
	states := make([]State, m.NumStates())
	for i, st := range m.States() {
		states[perm[i]] = State{
			Next: [2]int{perm[st.Next[0]], perm[st.Next[1]]},
			Prob: st.Prob,
		}
	}
	p, err := NewFSM(states, perm[m.Initial()], WithScale(m.Scale()))
	require.NoError(t, err)
	return p
}

func TestComparePermuted(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		m := randomFSM(t, r, 1+r.Intn(30), 0, 1, 2, 3)
		p := permute(t, m, r.Perm(m.NumStates()))

		result := Compare(m, p)
		require.True(t, result.Equivalent(), "%s\n%s\n%s", result, m, p)
		assert.Equal(t, Reachable(m).Size(), result.Matched)

		back := Compare(p, m)
		require.True(t, back.Equivalent(), back.String())
	}
}

func TestCompareIncompatible(t *testing.T) {
	a := twoStateFSM(t)
	b := twoStateFSM(t, WithScale(65535))

	result := Compare(a, b)
	assert.Equal(t, IncompatibleComparison, result.Kind)
	assert.False(t, result.Equivalent())
	assert.True(t, errors.Is(result.Err(), ErrIncompatibleComparison))
	assert.Equal(t, "different: probability scales differ (4095 vs 65535)", result.String())
}

func TestCompareReportsUnreachable(t *testing.T) {
	b := deadStateFSM(t)
	trimmed, err := Trim(b)
	require.NoError(t, err)

	result := Compare(b, trimmed)
	assert.True(t, result.Equivalent())
	assert.Equal(t, []int{2}, result.UnreachableA.GetArray())
	assert.Equal(t, 0, result.UnreachableB.Size())
	assert.Equal(t, "equivalent (2 state pairs)", result.String())
}

func TestCompareBehavior(t *testing.T) {
	machines := NewMachines()
	cycle, err := machines.MakeCycle(7, 7)
	require.NoError(t, err)
	constant, err := machines.MakeConstant(7)
	require.NoError(t, err)

	structural := Compare(cycle, constant)
	assert.Equal(t, StructuralMismatch, structural.Kind)

	behavior, err := CompareBehavior(cycle, constant)
	require.NoError(t, err)
	assert.True(t, behavior.Equivalent(), behavior.String())

	other, err := machines.MakeConstant(8)
	require.NoError(t, err)
	behavior, err = CompareBehavior(cycle, other)
	require.NoError(t, err)
	assert.Equal(t, ProbabilityMismatch, behavior.Kind)
}
