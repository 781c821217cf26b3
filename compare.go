package fsmbin

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

type ComparisonKind int

const (
	Equivalent             = ComparisonKind(iota) // Reachable behavior matches state for state
	ProbabilityMismatch                           // A matched pair of states predicts different probabilities
	StructuralMismatch                            // A successor pair contradicts an earlier match
	IncompatibleComparison                        // The machines use different probability scales
)

func (k ComparisonKind) String() string {
	switch k {
	case Equivalent:
		return "equivalent"
	case ProbabilityMismatch:
		return "probability mismatch"
	case StructuralMismatch:
		return "structural mismatch"
	case IncompatibleComparison:
		return "incompatible comparison"
	default:
		return fmt.Sprintf("ComparisonKind(%d)", int(k))
	}
}

// Comparison Outcome of comparing two machines. For mismatches StateA and
// StateB are the pair being examined when the difference was found, and Bit
// is the edge that failed for a StructuralMismatch (-1 otherwise).
//
// UnreachableA and UnreachableB are informational: unreachable states never
// make two machines different.
type Comparison struct {
	Kind   ComparisonKind
	StateA int
	StateB int
	Bit    int
	// Number of state pairs matched before the comparison finished.
	Matched int

	ScaleA int
	ScaleB int

	UnreachableA *StateSet
	UnreachableB *StateSet
}

// Equivalent Returns true if no difference was found.
func (c *Comparison) Equivalent() bool {
	return c.Kind == Equivalent
}

func (c *Comparison) String() string {
	switch c.Kind {
	case Equivalent:
		return fmt.Sprintf("equivalent (%d state pairs)", c.Matched)
	case ProbabilityMismatch:
		return fmt.Sprintf("different: probability mismatch between state %d and state %d", c.StateA, c.StateB)
	case StructuralMismatch:
		return fmt.Sprintf("different: structural mismatch on bit %d from state %d and state %d", c.Bit, c.StateA, c.StateB)
	case IncompatibleComparison:
		return fmt.Sprintf("different: probability scales differ (%d vs %d)", c.ScaleA, c.ScaleB)
	default:
		return fmt.Sprintf("different: %s", c.Kind)
	}
}

// Err Returns nil for equivalent machines, otherwise an error describing the
// difference. Incompatible comparisons are marked with
// ErrIncompatibleComparison.
func (c *Comparison) Err() error {
	switch c.Kind {
	case Equivalent:
		return nil
	case IncompatibleComparison:
		return errors.Mark(errors.Newf("%s", c), ErrIncompatibleComparison)
	default:
		return errors.Newf("%s", c)
	}
}

// Compare Checks whether the states reachable from the initial states of a
// and b are isomorphic with matching probabilities. Both machines are walked
// together, pairing up states; a pair is rejected if the probabilities differ
// or if a successor on either bit conflicts with a pairing made earlier.
func Compare(a, b *FSM) *Comparison {
	result := &Comparison{
		Kind:         Equivalent,
		StateA:       -1,
		StateB:       -1,
		Bit:          -1,
		ScaleA:       a.scale,
		ScaleB:       b.scale,
		UnreachableA: Unreachable(a),
		UnreachableB: Unreachable(b),
	}
	if a.scale != b.scale {
		result.Kind = IncompatibleComparison
		return result
	}

	aToB := make([]int, a.NumStates())
	bToA := make([]int, b.NumStates())
	for i := range aToB {
		aToB[i] = -1
	}
	for i := range bToA {
		bToA[i] = -1
	}

	type pair struct{ a, b int }
	workList := []pair{{a.initial, b.initial}}
	aToB[a.initial] = b.initial
	bToA[b.initial] = a.initial

	for len(workList) > 0 {
		p := workList[0]
		workList = workList[1:]
		result.Matched++

		if a.states[p.a].Prob != b.states[p.b].Prob {
			result.Kind = ProbabilityMismatch
			result.StateA, result.StateB = p.a, p.b
			return result
		}

		for bit := 0; bit < 2; bit++ {
			na := a.states[p.a].Next[bit]
			nb := b.states[p.b].Next[bit]
			ma, mb := aToB[na], bToA[nb]
			switch {
			case ma == -1 && mb == -1:
				aToB[na] = nb
				bToA[nb] = na
				workList = append(workList, pair{na, nb})
			case ma != nb || mb != na:
				result.Kind = StructuralMismatch
				result.StateA, result.StateB = p.a, p.b
				result.Bit = bit
				return result
			}
		}
	}

	return result
}

// CompareBehavior Compares the minimized forms of a and b, so two machines
// that predict the same probabilities for every bit sequence are equivalent
// even when their state graphs differ. States in the result refer to the
// minimized machines.
func CompareBehavior(a, b *FSM) (*Comparison, error) {
	ma, err := Minimize(a)
	if err != nil {
		return nil, err
	}
	mb, err := Minimize(b)
	if err != nil {
		return nil, err
	}

	result := Compare(ma, mb)
	result.UnreachableA = Unreachable(a)
	result.UnreachableB = Unreachable(b)
	return result, nil
}
