package fsmbin

// Machines Factory for small canonical machines.
type Machines struct {
	opts []ModelOption
}

func NewMachines(opts ...ModelOption) *Machines {
	return &Machines{opts: opts}
}

// MakeConstant
// Returns a single state machine that always predicts prob.
func (f *Machines) MakeConstant(prob int) (*FSM, error) {
	b := NewBuilder(f.opts...)
	b.CreateState(prob)
	return b.Finish()
}

// MakeHistory
// Returns a machine whose state is the last order bits seen, most recent bit
// lowest. State h moves to ((h<<1)|bit) masked to order bits and predicts
// prob(h). The initial state is the all-zero history.
func (f *Machines) MakeHistory(order int, prob func(history int) int) (*FSM, error) {
	if order < 0 || order > 20 {
		return nil, malformedf("history order %d out of range [0, 20]", order)
	}
	n := 1 << order
	mask := n - 1

	b := NewBuilderV1(n, f.opts...)
	for h := 0; h < n; h++ {
		b.CreateState(prob(h))
	}
	for h := 0; h < n; h++ {
		b.SetTransition(h, 0, (h<<1)&mask)
		b.SetTransition(h, 1, ((h<<1)|1)&mask)
	}
	return b.Finish()
}

// MakeCycle
// Returns a ring of len(probs) states where both bits advance to the next
// state.
func (f *Machines) MakeCycle(probs ...int) (*FSM, error) {
	b := NewBuilderV1(len(probs), f.opts...)
	for _, p := range probs {
		b.CreateState(p)
	}
	for s := range probs {
		next := (s + 1) % len(probs)
		b.SetTransition(s, 0, next)
		b.SetTransition(s, 1, next)
	}
	return b.Finish()
}
