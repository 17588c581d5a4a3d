// File: simple.go
// Role: the portable "<graph-name>/n-nodes/n-channels/..." format,
// spec.md §6.
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tnguyen-labs/submatch/errs"
	"github.com/tnguyen-labs/submatch/graph"
)

// ReadGraph parses the simple on-disk format from r:
//
//	<graph-name>
//	<n-nodes>
//	<n-channels>
//	for each channel:
//	   <channel-name>
//	   <n-directed-edge-records>
//	   for each record: "<src-idx> <dst-idx> <count>"
//
// Node identifiers are synthesised as their decimal index (0..n-1); this
// format carries no node labels, only a node count.
func ReadGraph(r io.Reader) (*graph.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	name, err := nextLine(sc)
	if err != nil {
		return nil, errs.InputFormatf("simple: reading graph name: %v", err)
	}
	nNodes, err := nextInt(sc)
	if err != nil {
		return nil, errs.InputFormatf("simple: reading node count: %v", err)
	}
	nChannels, err := nextInt(sc)
	if err != nil {
		return nil, errs.InputFormatf("simple: reading channel count: %v", err)
	}

	g := graph.NewGraph(name)
	for i := 0; i < nNodes; i++ {
		if _, err := g.AddNode(strconv.Itoa(i)); err != nil {
			return nil, errs.InputFormatf("simple: adding node %d: %v", i, err)
		}
	}

	for ci := 0; ci < nChannels; ci++ {
		chName, err := nextLine(sc)
		if err != nil {
			return nil, errs.InputFormatf("simple: reading channel %d name: %v", ci, err)
		}
		c, err := g.AddChannel(chName)
		if err != nil {
			return nil, errs.InputFormatf("simple: adding channel %q: %v", chName, err)
		}
		nEdges, err := nextInt(sc)
		if err != nil {
			return nil, errs.InputFormatf("simple: reading channel %q edge count: %v", chName, err)
		}
		for e := 0; e < nEdges; e++ {
			line, err := nextLine(sc)
			if err != nil {
				return nil, errs.InputFormatf("simple: reading edge record %d of channel %q: %v", e, chName, err)
			}
			fields := strings.Fields(line)
			if len(fields) != 3 {
				return nil, errs.InputFormatf("simple: edge record %q: expected 3 fields, got %d", line, len(fields))
			}
			src, err1 := strconv.Atoi(fields[0])
			dst, err2 := strconv.Atoi(fields[1])
			count, err3 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil || err3 != nil {
				return nil, errs.InputFormatf("simple: edge record %q: non-integer field", line)
			}
			if err := g.SetCount(c, src, dst, count); err != nil {
				return nil, errs.InputFormatf("simple: edge record %q: %v", line, err)
			}
		}
	}
	return g, nil
}

// WriteGraph serialises g to w in the simple on-disk format.
func WriteGraph(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, g.Name())
	fmt.Fprintln(bw, g.NumNodes())
	fmt.Fprintln(bw, g.NumChannels())
	for c, chName := range g.Channels() {
		fmt.Fprintln(bw, chName)
		m := g.Channel(c)
		records := flattenChannel(m)
		fmt.Fprintln(bw, len(records))
		for _, rec := range records {
			fmt.Fprintf(bw, "%d %d %d\n", rec[0], rec[1], rec[2])
		}
	}
	return bw.Flush()
}

// flattenChannel returns a deterministic, ascending-(src,dst)-ordered list
// of [src, dst, count] triples for every nonzero entry of m.
func flattenChannel(m graph.ChannelMatrix) [][3]int {
	var srcs []int
	for i := range m {
		srcs = append(srcs, i)
	}
	sortInts(srcs)

	var out [][3]int
	for _, i := range srcs {
		row := m.Row(i)
		var dsts []int
		for j := range row {
			dsts = append(dsts, j)
		}
		sortInts(dsts)
		for _, j := range dsts {
			out = append(out, [3]int{i, j, row[j]})
		}
	}
	return out
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

func nextLine(sc *bufio.Scanner) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(sc.Text()), nil
}

func nextInt(sc *bufio.Scanner) (int, error) {
	line, err := nextLine(sc)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(line)
}
