package fsmbin

// Rescale Returns m with every probability mapped from m's scale onto
// scale, rounding to nearest (halves round up). Transitions and the initial
// state are unchanged.
func Rescale(m *FSM, scale int) (*FSM, error) {
	if scale <= 0 {
		return nil, malformedf("probability scale must be positive, got %d", scale)
	}

	states := m.States()
	for i := range states {
		states[i].Prob = (2*states[i].Prob*scale + m.scale) / (2 * m.scale)
	}
	return NewFSM(states, m.initial, WithScale(scale))
}
