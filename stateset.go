package fsmbin

import (
	"fmt"
	"iter"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// StateSet A set of states of one machine, backed by a bitset sized to the
// machine's state count.
type StateSet struct {
	bits *bitset.BitSet
	n    int
}

func NewStateSet(numStates int) *StateSet {
	return &StateSet{
		bits: bitset.New(uint(numStates)),
		n:    numStates,
	}
}

// Add Add state to the set.
func (s *StateSet) Add(state int) {
	s.bits.Set(uint(state))
}

// Contains Returns true if state is in the set.
func (s *StateSet) Contains(state int) bool {
	return s.bits.Test(uint(state))
}

// Size How many states are in the set.
func (s *StateSet) Size() int {
	return int(s.bits.Count())
}

// Universe Returns the state count of the machine the set belongs to.
func (s *StateSet) Universe() int {
	return s.n
}

// Complement Returns the states of [0, Universe) not in this set.
func (s *StateSet) Complement() *StateSet {
	out := NewStateSet(s.n)
	for i := 0; i < s.n; i++ {
		if !s.Contains(i) {
			out.Add(i)
		}
	}
	return out
}

// Union Returns a new set holding the states of both sets.
func (s *StateSet) Union(other *StateSet) *StateSet {
	n := max(s.n, other.n)
	return &StateSet{bits: s.bits.Union(other.bits), n: n}
}

// Intersection Returns a new set holding the states in both sets.
func (s *StateSet) Intersection(other *StateSet) *StateSet {
	n := max(s.n, other.n)
	return &StateSet{bits: s.bits.Intersection(other.bits), n: n}
}

// All Iterates the states in ascending order.
func (s *StateSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
			if !yield(int(i)) {
				return
			}
		}
	}
}

// GetArray Returns the states in ascending order.
func (s *StateSet) GetArray() []int {
	states := make([]int, 0, s.Size())
	for state := range s.All() {
		states = append(states, state)
	}
	return states
}

func (s *StateSet) String() string {
	parts := make([]string, 0, s.Size())
	for state := range s.All() {
		parts = append(parts, fmt.Sprint(state))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
