package fsmbin

import "fmt"

// Cursor Emulation state of a single run over a machine. A cursor is owned by
// one run and never changes the machine.
type Cursor struct {
	fsm   *FSM
	curr  int
	steps int
}

// NewCursor Returns a cursor at the initial state with no steps taken.
func NewCursor(m *FSM) *Cursor {
	return &Cursor{fsm: m, curr: m.initial}
}

// Step Advance on bit. Any value other than 0 or 1 fails with ErrInvalidBit
// and leaves the cursor where it was.
func (c *Cursor) Step(bit int) error {
	if bit != 0 && bit != 1 {
		return invalidBitf("step %d: bit value %d is not 0 or 1", c.steps, bit)
	}
	c.curr = c.fsm.states[c.curr].Next[bit]
	c.steps++
	return nil
}

// State Returns the current state.
func (c *Cursor) State() int {
	return c.curr
}

// Steps Returns how many bits have been consumed.
func (c *Cursor) Steps() int {
	return c.steps
}

// Prob Returns the probability predicted by the current state.
func (c *Cursor) Prob() int {
	return c.fsm.states[c.curr].Prob
}

func (c *Cursor) String() string {
	if c.steps > 0 {
		return fmt.Sprintf("[step=%d] state=%d", c.steps, c.curr)
	}
	return fmt.Sprintf("FSM with %d states, initial_state = %d", c.fsm.NumStates(), c.fsm.initial)
}

// Trace Record of one run.
type Trace struct {
	Final int
	Steps int
	// State entered after each bit.
	Visited []int
	// Probability predicted for each bit, i.e. by the state the cursor was in
	// before consuming it.
	Outputs []int
}

// Run Feeds bits through m starting at the initial state.
func Run(m *FSM, bits []int) (*Trace, error) {
	c := NewCursor(m)
	trace := &Trace{
		Visited: make([]int, 0, len(bits)),
		Outputs: make([]int, 0, len(bits)),
	}
	for _, bit := range bits {
		prob := c.Prob()
		if err := c.Step(bit); err != nil {
			return nil, err
		}
		trace.Outputs = append(trace.Outputs, prob)
		trace.Visited = append(trace.Visited, c.State())
	}
	trace.Final = c.State()
	trace.Steps = c.Steps()
	return trace, nil
}

// RunStrip Runs m over bits and returns, along with the trace, the machine
// restricted to the initial state and the states the run entered. States
// reachable in principle but not visited by this run are dropped.
func RunStrip(m *FSM, bits []int) (*Trace, *FSM, error) {
	trace, err := Run(m, bits)
	if err != nil {
		return nil, nil, err
	}
	used := trace.Used(m)
	stripped, err := Restrict(m, used)
	if err != nil {
		return nil, nil, err
	}
	return trace, stripped, nil
}

// Used Returns the initial state of m together with every visited state.
func (t *Trace) Used(m *FSM) *StateSet {
	used := NewStateSet(m.NumStates())
	used.Add(m.initial)
	for _, s := range t.Visited {
		used.Add(s)
	}
	return used
}
