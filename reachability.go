package fsmbin

// Reachable Returns the states reachable from the initial state by any bit
// sequence. Every state enters the worklist at most once, so cycles and self
// loops terminate after NumStates visits.
func Reachable(m *FSM) *StateSet {
	return reachableFrom(m, m.initial)
}

func reachableFrom(m *FSM, start int) *StateSet {
	live := NewStateSet(m.NumStates())
	workList := make([]int, 0, m.NumStates())
	live.Add(start)
	workList = append(workList, start)

	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for _, dest := range m.states[s].Next {
			if !live.Contains(dest) {
				live.Add(dest)
				workList = append(workList, dest)
			}
		}
	}

	return live
}

// Unreachable Returns the states of [0, NumStates) that Reachable does not.
func Unreachable(m *FSM) *StateSet {
	return Reachable(m).Complement()
}

// SelfReferential Returns the states with a transition to themselves on
// either bit.
func SelfReferential(m *FSM) *StateSet {
	set := NewStateSet(m.NumStates())
	for s, st := range m.states {
		if st.Next[0] == s || st.Next[1] == s {
			set.Add(s)
		}
	}
	return set
}
