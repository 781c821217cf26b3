package fsmbin

import (
	"math"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultTolerance     = 1e-12
	DefaultMaxIterations = 100000
)

// Stats Structural and statistical summary of the reachable part of a
// machine.
type Stats struct {
	// States reachable from the initial state.
	States int
	// States that Trim dropped.
	Unreachable int
	// Reachable states with a self loop on either bit.
	SelfReferential int

	MinState int
	MaxState int
	MinProb  int
	MaxProb  int
	MeanProb float64

	// Expected information per bit, in bits, of the source the machine
	// implies, weighted by the stationary distribution.
	Entropy float64
	// Stationary distribution over the trimmed states.
	Stationary []float64

	Iterations int
	Converged  bool
}

type statsOptions struct {
	tolerance     float64
	maxIterations int
}

type StatsOption func(*statsOptions)

// WithTolerance Stop the power iteration once the L1 change of the
// distribution drops below tolerance.
func WithTolerance(tolerance float64) StatsOption {
	return func(o *statsOptions) {
		o.tolerance = tolerance
	}
}

// WithMaxIterations Cap the number of power iteration steps.
func WithMaxIterations(n int) StatsOption {
	return func(o *statsOptions) {
		o.maxIterations = n
	}
}

// ComputeStats Summarizes the trimmed form of m.
//
// The probability p of a state is read as the weight of bit 0, so the state
// moves to its 0-successor with probability p/Scale and to its 1-successor
// with probability (Scale-p)/Scale. The stationary distribution of that chain
// is found by power iteration on the lazy chain (I+T)/2, started at the
// initial state. For reducible chains this is the long run distribution seen
// from the initial state.
func ComputeStats(m *FSM, opts ...StatsOption) (*Stats, error) {
	options := &statsOptions{
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(options)
	}

	t, err := Trim(m)
	if err != nil {
		return nil, err
	}

	n := t.NumStates()
	st := &Stats{
		States:          n,
		Unreachable:     m.NumStates() - n,
		SelfReferential: SelfReferential(t).Size(),
		MinState:        0,
		MaxState:        n - 1,
		MinProb:         t.states[0].Prob,
		MaxProb:         t.states[0].Prob,
	}

	sum := 0
	for _, s := range t.states {
		st.MinProb = min(st.MinProb, s.Prob)
		st.MaxProb = max(st.MaxProb, s.Prob)
		sum += s.Prob
	}
	st.MeanProb = float64(sum) / float64(n)

	st.Stationary, st.Iterations, st.Converged = stationary(t, options)
	if !st.Converged {
		log.Warnf("stats: stationary distribution did not converge after %d iterations", st.Iterations)
	} else {
		log.Debugf("stats: stationary distribution converged after %d iterations", st.Iterations)
	}

	scale := float64(t.scale)
	for s, pi := range st.Stationary {
		st.Entropy += pi * binaryEntropy(float64(t.states[s].Prob)/scale)
	}

	return st, nil
}

func stationary(m *FSM, options *statsOptions) ([]float64, int, bool) {
	n := m.NumStates()
	scale := float64(m.scale)

	pi := make([]float64, n)
	next := make([]float64, n)
	pi[m.initial] = 1

	for iter := 1; iter <= options.maxIterations; iter++ {
		for s := range next {
			next[s] = pi[s] / 2
		}
		for s, st := range m.states {
			if pi[s] == 0 {
				continue
			}
			p0 := float64(st.Prob) / scale
			next[st.Next[0]] += pi[s] / 2 * p0
			next[st.Next[1]] += pi[s] / 2 * (1 - p0)
		}

		delta := 0.0
		for s := range pi {
			delta += math.Abs(next[s] - pi[s])
		}
		pi, next = next, pi
		if delta < options.tolerance {
			return pi, iter, true
		}
	}

	return pi, options.maxIterations, false
}

// binaryEntropy Returns H(p) in bits; H(0) = H(1) = 0.
func binaryEntropy(p float64) float64 {
	if p <= 0 || p >= 1 {
		return 0
	}
	return -p*math.Log2(p) - (1-p)*math.Log2(1-p)
}
