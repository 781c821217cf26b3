package fsmbin

import (
	log "github.com/sirupsen/logrus"
)

// Minimize Returns the smallest machine that predicts the same probabilities
// as m for every bit sequence. Unreachable states are trimmed first so they
// never merge with reachable ones.
//
// States of the result are numbered by the first state (in trimmed order)
// of each equivalence block.
func Minimize(m *FSM) (*FSM, error) {
	t, err := Trim(m)
	if err != nil {
		return nil, err
	}

	block, count := refine(t)
	if count == t.NumStates() {
		// Nothing merges; the trimmed machine is already minimal.
		return t, nil
	}

	states := make([]State, count)
	for s, st := range t.states {
		states[block[s]] = State{
			Next: [2]int{block[st.Next[0]], block[st.Next[1]]},
			Prob: st.Prob,
		}
	}

	log.Debugf("minimize: %d states -> %d states", m.NumStates(), count)
	return NewFSM(states, block[t.initial], WithScale(t.scale))
}

// Partition Returns the equivalence block of every state of the trimmed
// machine, along with the trimmed machine the indices refer to.
func Partition(m *FSM) ([]int, *FSM, error) {
	t, err := Trim(m)
	if err != nil {
		return nil, nil, err
	}
	block, _ := refine(t)
	return block, t, nil
}

// refine Moore partition refinement. The first partition groups states by
// probability; each round splits blocks whose members disagree on the pair of
// successor blocks. Every round reads only the previous round's partition.
// Returns the block of each state and the number of blocks.
func refine(m *FSM) ([]int, int) {
	n := m.NumStates()

	block := make([]int, n)
	byProb := make(map[int]int)
	for s, st := range m.states {
		b, ok := byProb[st.Prob]
		if !ok {
			b = len(byProb)
			byProb[st.Prob] = b
		}
		block[s] = b
	}
	count := len(byProb)

	// Each round either adds a block or stops, so n rounds always suffice.
	for round := 1; round <= n; round++ {
		table := newSignatureTable(withCapacity(count * 2))
		next := make([]int, n)
		for s, st := range m.states {
			next[s], _ = table.assign(signature{
				block: block[s],
				next0: block[st.Next[0]],
				next1: block[st.Next[1]],
			})
		}

		log.Debugf("minimize: round %d, %d blocks", round, table.len())
		if table.len() == count {
			break
		}
		block, count = next, table.len()
	}

	return block, count
}
