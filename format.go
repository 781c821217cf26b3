package fsmbin

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

var tableFields = [3]string{"next_on_0", "next_on_1", "probability"}

// Parse Reads a machine in the table format: one "next_on_0,next_on_1,prob"
// line per state in index order, optionally preceded by a line holding only
// the initial state. Blank lines are ignored. Any bad line aborts the parse
// with ErrMalformedModel citing the line number and its content.
func Parse(r io.Reader, opts ...ModelOption) (*FSM, error) {
	scanner := bufio.NewScanner(r)
	states := make([]State, 0)
	rows := make([]tableRow, 0)
	initial := 0
	initialLine := 0
	first := true
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if first && len(fields) == 1 {
			first = false
			v, err := strconv.Atoi(line)
			if err != nil {
				return nil, malformedf("line %d: initial state is not an integer: %q", lineNo, raw)
			}
			initial, initialLine = v, lineNo
			continue
		}
		first = false

		if len(fields) != len(tableFields) {
			return nil, malformedf("line %d: state %d: expected next_on_0,next_on_1,probability: %q",
				lineNo, len(states), raw)
		}

		var vals [3]int
		for i, field := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, malformedf("line %d: state %d: %s is not an integer: %q",
					lineNo, len(states), tableFields[i], raw)
			}
			vals[i] = v
		}
		states = append(states, State{Next: [2]int{vals[0], vals[1]}, Prob: vals[2]})
		rows = append(rows, tableRow{line: lineNo, raw: raw})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading table at line %d", lineNo)
	}

	if err := checkRows(states, rows, initial, initialLine, newModelOptions(opts...).scale); err != nil {
		return nil, err
	}
	return NewFSM(states, initial, opts...)
}

type tableRow struct {
	line int
	raw  string
}

// checkRows Range checks every parsed row against the final state count so
// the error can cite the offending line. NewFSM still validates the result.
func checkRows(states []State, rows []tableRow, initial, initialLine, scale int) error {
	n := len(states)
	for s, st := range states {
		for bit, dest := range st.Next {
			if dest < 0 || dest >= n {
				return malformedf("line %d: state %d: next_on_%d = %d out of range [0, %d): %q",
					rows[s].line, s, bit, dest, n, rows[s].raw)
			}
		}
		if scale > 0 && (st.Prob < 0 || st.Prob > scale) {
			return malformedf("line %d: state %d: probability %d out of range [0, %d]: %q",
				rows[s].line, s, st.Prob, scale, rows[s].raw)
		}
	}
	if n > 0 && initialLine > 0 && (initial < 0 || initial >= n) {
		return malformedf("line %d: initial state %d out of range [0, %d)", initialLine, initial, n)
	}
	return nil
}

// Write Writes m in the table format. The initial state line is omitted when
// the initial state is 0.
func Write(w io.Writer, m *FSM) error {
	bw := bufio.NewWriter(w)
	if m.initial != 0 {
		fmt.Fprintf(bw, "%d\n", m.initial)
	}
	for _, st := range m.states {
		fmt.Fprintf(bw, "%d,%d,%d\n", st.Next[0], st.Next[1], st.Prob)
	}
	return bw.Flush()
}

type yamlTable struct {
	Initial int     `yaml:"initial"`
	Scale   int     `yaml:"scale,omitempty"`
	States  [][]int `yaml:"states,flow"`
}

// ParseYAML Reads a machine from its YAML form:
//
//	initial: 0
//	scale: 4095
//	states: [[0, 1, 2048], [1, 0, 1024]]
//
// A scale in the document overrides any WithScale option.
func ParseYAML(r io.Reader, opts ...ModelOption) (*FSM, error) {
	var t yamlTable
	if err := yaml.NewDecoder(r).Decode(&t); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decoding yaml table"), ErrMalformedModel)
	}

	states := make([]State, len(t.States))
	for i, row := range t.States {
		if len(row) != len(tableFields) {
			return nil, malformedf("state %d: expected [next_on_0, next_on_1, probability], got %v", i, row)
		}
		states[i] = State{Next: [2]int{row[0], row[1]}, Prob: row[2]}
	}

	if t.Scale != 0 {
		opts = append(opts, WithScale(t.Scale))
	}
	return NewFSM(states, t.Initial, opts...)
}

// WriteYAML Writes m in its YAML form.
func WriteYAML(w io.Writer, m *FSM) error {
	t := yamlTable{
		Initial: m.initial,
		Scale:   m.scale,
		States:  make([][]int, len(m.states)),
	}
	for i, st := range m.states {
		t.States[i] = []int{st.Next[0], st.Next[1], st.Prob}
	}

	enc := yaml.NewEncoder(w)
	if err := enc.Encode(&t); err != nil {
		return err
	}
	return enc.Close()
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// ReadFile Reads a machine from path, choosing the YAML parser for .yaml and
// .yml files and the table parser otherwise.
func ReadFile(path string, opts ...ModelOption) (*FSM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	var m *FSM
	if isYAML(path) {
		m, err = ParseYAML(f, opts...)
	} else {
		m, err = Parse(f, opts...)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return m, nil
}

// WriteFile Writes m to path: YAML for .yaml and .yml, a DOT graph for .dot,
// the table format otherwise.
func WriteFile(path string, m *FSM) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "closing %s", path)
		}
	}()

	switch {
	case isYAML(path):
		err = WriteYAML(f, m)
	case strings.ToLower(filepath.Ext(path)) == ".dot":
		err = WriteDot(f, m, GraphName(path))
	default:
		err = Write(f, m)
	}
	if err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
