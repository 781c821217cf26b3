package fsmbin

// Trim Returns a machine holding only the states reachable from the initial
// state. Kept states are renumbered densely in their original order, so the
// initial state keeps its position relative to the other kept states.
func Trim(m *FSM) (*FSM, error) {
	return Restrict(m, Reachable(m))
}

// Restrict Returns a machine holding exactly the states in keep plus the
// initial state, renumbered densely in their original order. A transition
// from a kept state into a dropped one is redirected to the kept state
// itself.
func Restrict(m *FSM, keep *StateSet) (*FSM, error) {
	numStates := m.NumStates()

	mp := make([]int, numStates)
	kept := 0
	for i := 0; i < numStates; i++ {
		if i == m.initial || (i < keep.Universe() && keep.Contains(i)) {
			mp[i] = kept
			kept++
		} else {
			mp[i] = -1
		}
	}

	states := make([]State, 0, kept)
	for i := 0; i < numStates; i++ {
		if mp[i] == -1 {
			continue
		}
		st := m.states[i]
		for bit, dest := range st.Next {
			if mp[dest] == -1 {
				st.Next[bit] = mp[i]
			} else {
				st.Next[bit] = mp[dest]
			}
		}
		states = append(states, st)
	}

	return NewFSM(states, mp[m.initial], WithScale(m.scale))
}
