// File: solnon.go
// Role: the "solnon" per-channel adjacency-list format, spec.md §6: first
// line n, then n lines each "<k> <succ_1> ... <succ_k>" listing the
// out-neighbours of that node (parallel edges allowed by repetition).
package ioformat

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/tnguyen-labs/submatch/errs"
	"github.com/tnguyen-labs/submatch/graph"
)

// ReadSolnon parses a single-channel solnon adjacency list from r into a
// fresh single-channel Graph named name. Node identifiers are synthesised
// as their decimal index.
func ReadSolnon(r io.Reader, name, channel string) (*graph.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	n, err := nextInt(sc)
	if err != nil {
		return nil, errs.InputFormatf("solnon: reading node count: %v", err)
	}

	g := graph.NewGraph(name)
	for i := 0; i < n; i++ {
		if _, err := g.AddNode(strconv.Itoa(i)); err != nil {
			return nil, errs.InputFormatf("solnon: adding node %d: %v", i, err)
		}
	}
	c, err := g.AddChannel(channel)
	if err != nil {
		return nil, errs.InputFormatf("solnon: adding channel %q: %v", channel, err)
	}

	for i := 0; i < n; i++ {
		line, err := nextLine(sc)
		if err != nil {
			return nil, errs.InputFormatf("solnon: reading adjacency line %d: %v", i, err)
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return nil, errs.InputFormatf("solnon: adjacency line %d is empty", i)
		}
		k, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errs.InputFormatf("solnon: adjacency line %d: bad successor count %q", i, fields[0])
		}
		if len(fields) != k+1 {
			return nil, errs.InputFormatf("solnon: adjacency line %d: declared %d successors, found %d", i, k, len(fields)-1)
		}
		for _, f := range fields[1:] {
			j, err := strconv.Atoi(f)
			if err != nil {
				return nil, errs.InputFormatf("solnon: adjacency line %d: bad successor %q", i, f)
			}
			if err := g.AddEdge(c, i, j, 1); err != nil {
				return nil, errs.InputFormatf("solnon: adding edge %d->%d: %v", i, j, err)
			}
		}
	}
	return g, nil
}
