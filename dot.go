package fsmbin

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/emicklei/dot"
)

const dotFont = "Helvetica,Arial,sans-serif"

// Graph Builds the DOT graph of m. The initial state is drawn as a cyan double
// circle, other self-referential states as magenta double circles. 0-edges
// are orange and 1-edges green.
func Graph(m *FSM, name string) *dot.Graph {
	g := dot.NewGraph(dot.Directed)
	g.ID(name)
	g.Attr("fontname", dotFont)
	g.Attr("rankdir", "LR")

	selfRef := SelfReferential(m)
	nodes := make([]dot.Node, m.NumStates())
	for s, st := range m.states {
		n := g.Node(strconv.Itoa(s))
		n.Attr("fontname", dotFont)
		n.Label(fmt.Sprintf("%d (p=%d)", s, st.Prob))
		switch {
		case s == m.initial:
			n.Attr("shape", "doublecircle")
			n.Attr("color", "cyan")
		case selfRef.Contains(s):
			n.Attr("shape", "doublecircle")
			n.Attr("color", "magenta")
		default:
			n.Attr("shape", "circle")
			n.Attr("color", "black")
		}
		nodes[s] = n
	}

	for s, st := range m.states {
		g.Edge(nodes[s], nodes[st.Next[0]], "0").Attr("color", "darkorange")
		g.Edge(nodes[s], nodes[st.Next[1]], "1").Attr("color", "green")
	}
	return g
}

// WriteDot Writes the DOT graph of m to w.
func WriteDot(w io.Writer, m *FSM, name string) error {
	_, err := io.WriteString(w, Graph(m, name).String())
	return err
}

// dotKeywords cannot be used as unquoted graph identifiers.
var dotKeywords = map[string]bool{
	"graph": true, "digraph": true, "subgraph": true,
	"node": true, "edge": true, "strict": true,
}

// GraphName Derives a DOT graph identifier from a file name.
func GraphName(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return '_'
	}, base)
	if name == "" || unicode.IsDigit(rune(name[0])) || dotKeywords[strings.ToLower(name)] {
		name = "fsm_" + name
	}
	return name
}
