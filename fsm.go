package fsmbin

import (
	"fmt"
	"strings"
)

// DefaultScale is the probability scale of 12-bit state tables.
const DefaultScale = 4095

// State One row of the machine: the successor on each bit and the
// probability the state predicts. Keeping both in a single record means the
// transition and probability tables can never have different lengths.
type State struct {
	Next [2]int
	Prob int
}

// FSM Represents a binary state machine used as a bit predictor. States are
// integers in [0, NumStates). Every state has exactly two outgoing
// transitions, one per bit, and a probability in [0, Scale].
//
// An FSM is immutable once built. All constructors, including Trim, Minimize
// and the parsers, go through NewFSM so a value of this type always satisfies
// its invariants.
type FSM struct {
	states  []State
	initial int
	scale   int
}

type modelOptions struct {
	scale int
}

type ModelOption func(*modelOptions)

// WithScale Set the probability scale (P_max) of the machine.
func WithScale(scale int) ModelOption {
	return func(o *modelOptions) {
		o.scale = scale
	}
}

func newModelOptions(opts ...ModelOption) *modelOptions {
	options := &modelOptions{
		scale: DefaultScale,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// NewFSM Validates the states and returns the machine. The slice is copied.
func NewFSM(states []State, initial int, opts ...ModelOption) (*FSM, error) {
	options := newModelOptions(opts...)
	if options.scale <= 0 {
		return nil, malformedf("probability scale must be positive, got %d", options.scale)
	}

	n := len(states)
	if n == 0 {
		return nil, malformedf("machine has no states")
	}
	if initial < 0 || initial >= n {
		return nil, malformedf("initial state %d out of range [0, %d)", initial, n)
	}

	for s, st := range states {
		for bit, dest := range st.Next {
			if dest < 0 || dest >= n {
				return nil, malformedf("state %d: next_on_%d = %d out of range [0, %d)", s, bit, dest, n)
			}
		}
		if st.Prob < 0 || st.Prob > options.scale {
			return nil, malformedf("state %d: probability %d out of range [0, %d]", s, st.Prob, options.scale)
		}
	}

	return &FSM{
		states:  append([]State(nil), states...),
		initial: initial,
		scale:   options.scale,
	}, nil
}

// NewFSMFromTables Builds a machine from separate transition and probability
// tables, the shape the on-disk format describes.
func NewFSMFromTables(next [][2]int, probs []int, initial int, opts ...ModelOption) (*FSM, error) {
	if len(next) != len(probs) {
		return nil, malformedf("transition table has %d states but probability table has %d", len(next), len(probs))
	}
	states := make([]State, len(next))
	for i := range next {
		states[i] = State{Next: next[i], Prob: probs[i]}
	}
	return NewFSM(states, initial, opts...)
}

// NumStates How many states this machine has.
func (m *FSM) NumStates() int {
	return len(m.states)
}

// Initial Returns the initial state.
func (m *FSM) Initial() int {
	return m.initial
}

// Scale Returns the probability scale (P_max).
func (m *FSM) Scale() int {
	return m.scale
}

// Next Returns the successor of state on bit. bit must be 0 or 1.
func (m *FSM) Next(state, bit int) int {
	return m.states[state].Next[bit]
}

// Prob Returns the probability predicted by state.
func (m *FSM) Prob(state int) int {
	return m.states[state].Prob
}

func (m *FSM) State(state int) State {
	return m.states[state]
}

// States Returns a copy of all state records.
func (m *FSM) States() []State {
	return append([]State(nil), m.states...)
}

// Transitions Returns a copy of the transition table.
func (m *FSM) Transitions() [][2]int {
	next := make([][2]int, len(m.states))
	for i, st := range m.states {
		next[i] = st.Next
	}
	return next
}

// Probabilities Returns a copy of the probability table.
func (m *FSM) Probabilities() []int {
	probs := make([]int, len(m.states))
	for i, st := range m.states {
		probs[i] = st.Prob
	}
	return probs
}

// Equal Returns true if both machines have the same states in the same
// order, the same initial state and the same scale.
func (m *FSM) Equal(other *FSM) bool {
	if m.initial != other.initial || m.scale != other.scale || len(m.states) != len(other.states) {
		return false
	}
	for i := range m.states {
		if m.states[i] != other.states[i] {
			return false
		}
	}
	return true
}

func (m *FSM) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "FSM with %d states, initial=%d, scale=%d\n", len(m.states), m.initial, m.scale)
	for i, st := range m.states {
		fmt.Fprintf(&b, "%4d: %d,%d,%d\n", i, st.Next[0], st.Next[1], st.Prob)
	}
	return b.String()
}

// Builder Builds a machine state by state. States are created with
// CreateState and wired with SetTransition; Finish validates the result
// through NewFSM. Unset transitions default to a self loop.
type Builder struct {
	states  []State
	initial int
	opts    []ModelOption
}

func NewBuilder(opts ...ModelOption) *Builder {
	return NewBuilderV1(2, opts...)
}

func NewBuilderV1(numStates int, opts ...ModelOption) *Builder {
	return &Builder{
		states: make([]State, 0, numStates),
		opts:   opts,
	}
}

// CreateState Create a new state predicting prob.
func (b *Builder) CreateState(prob int) int {
	state := len(b.states)
	b.states = append(b.states, State{Next: [2]int{state, state}, Prob: prob})
	return state
}

// SetTransition Set the successor of source on bit.
func (b *Builder) SetTransition(source, bit, dest int) {
	b.states[source].Next[bit] = dest
}

func (b *Builder) SetInitial(state int) {
	b.initial = state
}

// GetNumStates How many states have been created so far.
func (b *Builder) GetNumStates() int {
	return len(b.states)
}

// Finish Validate and return the machine.
func (b *Builder) Finish() (*FSM, error) {
	return NewFSM(b.states, b.initial, b.opts...)
}
