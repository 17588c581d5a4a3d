// File: gfd.go
// Role: the "gfd" labelled-vertex format, spec.md §6: a header line, one
// "v <id> <label>" line per vertex, one "e <src> <dst> <label>" line per
// edge. Vertex labels are carried as node identifiers; edge labels become
// channel names, so two edges with different labels land in different
// channels even between the same pair of vertices.
package ioformat

import (
	"bufio"
	"io"
	"strings"

	"github.com/tnguyen-labs/submatch/errs"
	"github.com/tnguyen-labs/submatch/graph"
)

// ReadGFD parses a gfd-format graph from r into a Graph named name.
func ReadGFD(r io.Reader, name string) (*graph.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	g := graph.NewGraph(name)
	idxByDeclaredID := make(map[string]int)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "t":
			continue
		case "v":
			if len(fields) != 3 {
				return nil, errs.InputFormatf("gfd: vertex line %q: expected 3 fields", line)
			}
			declID, label := fields[1], fields[2]
			nodeID := declID + ":" + label
			idx, err := g.AddNode(nodeID)
			if err != nil {
				return nil, errs.InputFormatf("gfd: adding vertex %q: %v", nodeID, err)
			}
			idxByDeclaredID[declID] = idx
		case "e":
			if len(fields) != 4 {
				return nil, errs.InputFormatf("gfd: edge line %q: expected 4 fields", line)
			}
			srcID, dstID, label := fields[1], fields[2], fields[3]
			src, ok := idxByDeclaredID[srcID]
			if !ok {
				return nil, errs.InputFormatf("gfd: edge references unknown vertex %q", srcID)
			}
			dst, ok := idxByDeclaredID[dstID]
			if !ok {
				return nil, errs.InputFormatf("gfd: edge references unknown vertex %q", dstID)
			}
			c, ok := g.ChannelIndex(label)
			if !ok {
				var err error
				c, err = g.AddChannel(label)
				if err != nil {
					return nil, errs.InputFormatf("gfd: adding channel %q: %v", label, err)
				}
			}
			if err := g.AddEdge(c, src, dst, 1); err != nil {
				return nil, errs.InputFormatf("gfd: adding edge %s->%s: %v", srcID, dstID, err)
			}
		default:
			return nil, errs.InputFormatf("gfd: unrecognised line %q", line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errs.InputFormatf("gfd: scanning input: %v", err)
	}
	return g, nil
}
