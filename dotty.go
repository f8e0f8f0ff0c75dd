package stablevec

import (
	"fmt"
	"io"
)

// ToDot outputs the internal structure of a vector in Graphviz DOT format
// (for debugging purposes).
//
// Index slots are drawn as one record, cells as boxes. Solid edges lead from
// slots to cells, dashed edges follow the back-references of cells. A
// back-reference not pointing to the slot holding the cell is drawn in red.
func ToDot[T any](v *Vector[T], w io.Writer) {
	v.init()
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, "\trankdir=TB;\n")
	slots, nodelist, edgelist := "", "", ""
	for i, c := range v.idx.cells {
		if i > 0 {
			slots += "|"
		}
		slots += fmt.Sprintf("<s%d> %d", i, i)
		nodelist += fmt.Sprintf("\"c%d\" [label=\"%s\" %s];\n", i, cellLabel(c), cellDotStyles(c))
		edgelist += fmt.Sprintf("\"index\":s%d -> \"c%d\";\n", i, i)
		if c.pos != i {
			tracer().Errorf("stablevec DOT: cell at slot %d refers back to slot %d", i, c.pos)
			edgelist += fmt.Sprintf("\"c%d\" -> \"index\":s%d [style=dashed,color=red];\n", i, c.pos)
		} else {
			edgelist += fmt.Sprintf("\"c%d\" -> \"index\":s%d [style=dashed,color=gray];\n", i, c.pos)
		}
	}
	io.WriteString(w, fmt.Sprintf("\"index\" [shape=record,label=\"%s\"];\n", slots))
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func cellLabel[T any](c *cell[T]) string {
	if c.sentinel {
		return fmt.Sprintf("end\\n@%d", c.pos)
	}
	return fmt.Sprintf("%s\\n@%d", dotEscape(fmt.Sprintf("%v", c.value)), c.pos)
}

func cellDotStyles[T any](c *cell[T]) string {
	s := ",style=filled,shape=box"
	if c.sentinel {
		s += ",fillcolor=\"#CCDDFF\""
	} else {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}

func dotEscape(s string) string {
	runes := []rune(s)
	suffix := ""
	if len(runes) > 24 {
		runes, suffix = runes[:24], "…"
	}
	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		switch r {
		case '"', '\\', '{', '}', '|', '<', '>':
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out) + suffix
}
