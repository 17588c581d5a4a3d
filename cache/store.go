// File: store.go
// Role: persistent per-dataset cache directory layout.
package cache

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/google/uuid"

	"github.com/tnguyen-labs/submatch/candidate"
	"github.com/tnguyen-labs/submatch/errs"
	"github.com/tnguyen-labs/submatch/graph"
)

// Store roots a per-dataset cache tree at BaseDir.
type Store struct {
	BaseDir string
}

// NewStore returns a Store rooted at baseDir. baseDir is created lazily by
// the first write, not by NewStore itself.
func NewStore(baseDir string) *Store {
	return &Store{BaseDir: baseDir}
}

// NewDataset allocates a fresh dataset directory. If slug is empty, a
// github.com/google/uuid identifier is generated; otherwise slug is used
// verbatim as the dataset ID, letting callers pin a human-readable cache
// entry (e.g. for a named regression fixture) instead of a random one.
func (s *Store) NewDataset(slug string) (string, error) {
	id := slug
	if id == "" {
		id = uuid.New().String()
	}
	dir := s.datasetDir(id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cache: creating dataset %q: %w", id, err)
	}
	return id, nil
}

func (s *Store) datasetDir(id string) string {
	return filepath.Join(s.BaseDir, id)
}

func (s *Store) roleDir(id, role string) string {
	return filepath.Join(s.datasetDir(id), role)
}

// SaveGraph writes g's node catalog, channel catalog, and per-channel
// sparse adjacency under dataset id's role subdirectory (e.g. "world" or
// "template").
func (s *Store) SaveGraph(id, role string, g *graph.Graph) error {
	dir := s.roleDir(id, role)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cache: creating %s/%s: %w", id, role, err)
	}

	if err := writeLines(filepath.Join(dir, "nodes.txt"), g.Nodes()); err != nil {
		return fmt.Errorf("cache: writing %s/%s/nodes.txt: %w", id, role, err)
	}
	if err := writeLines(filepath.Join(dir, "channels.txt"), g.Channels()); err != nil {
		return fmt.Errorf("cache: writing %s/%s/channels.txt: %w", id, role, err)
	}

	for c, name := range g.Channels() {
		path := filepath.Join(dir, "channel_"+sanitize(name)+".txt")
		if err := writeChannelMatrix(path, g.Channel(c)); err != nil {
			return fmt.Errorf("cache: writing %s/%s channel %q: %w", id, role, name, err)
		}
	}
	return nil
}

// LoadGraph reconstructs a Graph previously written by SaveGraph.
func (s *Store) LoadGraph(id, role, name string) (*graph.Graph, error) {
	dir := s.roleDir(id, role)

	nodeIDs, err := readLines(filepath.Join(dir, "nodes.txt"))
	if err != nil {
		return nil, fmt.Errorf("cache: reading %s/%s/nodes.txt: %w", id, role, err)
	}
	channelNames, err := readLines(filepath.Join(dir, "channels.txt"))
	if err != nil {
		return nil, fmt.Errorf("cache: reading %s/%s/channels.txt: %w", id, role, err)
	}

	g := graph.NewGraph(name)
	for _, nid := range nodeIDs {
		if _, err := g.AddNode(nid); err != nil {
			return nil, fmt.Errorf("cache: restoring node %q: %w", nid, err)
		}
	}
	for _, cname := range channelNames {
		c, err := g.AddChannel(cname)
		if err != nil {
			return nil, fmt.Errorf("cache: restoring channel %q: %w", cname, err)
		}
		path := filepath.Join(dir, "channel_"+sanitize(cname)+".txt")
		if err := readChannelMatrix(path, g, c); err != nil {
			return nil, fmt.Errorf("cache: restoring channel %q matrix: %w", cname, err)
		}
	}
	return g, nil
}

// SaveMatrix writes the boolean candidate matrix M as one row per line,
// each line the ascending list of set world-vertex indices.
func (s *Store) SaveMatrix(id string, m *candidate.Matrix) error {
	dir := s.datasetDir(id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cache: creating dataset %q: %w", id, err)
	}
	f, err := os.Create(filepath.Join(dir, "matrix.txt"))
	if err != nil {
		return fmt.Errorf("cache: creating matrix.txt: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "%d %d\n", m.NumTemplate(), m.NumWorld())
	for t := 0; t < m.NumTemplate(); t++ {
		row := m.Row(t)
		var sb strings.Builder
		first := true
		for i, e := row.NextSet(0); e; i, e = row.NextSet(i + 1) {
			if !first {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatUint(uint64(i), 10))
			first = false
		}
		fmt.Fprintln(bw, sb.String())
	}
	return bw.Flush()
}

// LoadMatrix reconstructs a candidate matrix previously written by
// SaveMatrix.
func (s *Store) LoadMatrix(id string) (*candidate.Matrix, error) {
	path := filepath.Join(s.datasetDir(id), "matrix.txt")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cache: opening matrix.txt: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	if !sc.Scan() {
		return nil, errs.InputFormatf("cache: matrix.txt is empty")
	}
	dims := strings.Fields(sc.Text())
	if len(dims) != 2 {
		return nil, errs.InputFormatf("cache: matrix.txt header %q malformed", sc.Text())
	}
	numTemplate, err1 := strconv.Atoi(dims[0])
	numWorld, err2 := strconv.Atoi(dims[1])
	if err1 != nil || err2 != nil {
		return nil, errs.InputFormatf("cache: matrix.txt header %q non-integer", sc.Text())
	}

	m := candidate.NewFull(numTemplate, numWorld)
	for t := 0; t < numTemplate; t++ {
		if !sc.Scan() {
			return nil, errs.InputFormatf("cache: matrix.txt missing row %d", t)
		}
		bs := bitset.New(uint(numWorld))
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			for _, f := range strings.Fields(line) {
				idx, err := strconv.Atoi(f)
				if err != nil {
					return nil, errs.InputFormatf("cache: matrix.txt row %d: bad index %q", t, f)
				}
				bs.Set(uint(idx))
			}
		}
		m.SetRow(t, bs)
	}
	return m, nil
}

func writeLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	for _, l := range lines {
		fmt.Fprintln(bw, l)
	}
	return bw.Flush()
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var out []string
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

func writeChannelMatrix(path string, m graph.ChannelMatrix) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	for i := range m {
		row := m.Row(i)
		for j, count := range row {
			fmt.Fprintf(bw, "%d %d %d\n", i, j, count)
		}
	}
	return bw.Flush()
}

func readChannelMatrix(path string, g *graph.Graph, channel int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return errs.InputFormatf("cache: channel matrix line %q malformed", line)
		}
		i, err1 := strconv.Atoi(fields[0])
		j, err2 := strconv.Atoi(fields[1])
		count, err3 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return errs.InputFormatf("cache: channel matrix line %q non-integer", line)
		}
		if err := g.SetCount(channel, i, j, count); err != nil {
			return err
		}
	}
	return sc.Err()
}

// sanitize maps a channel name to a filesystem-safe token by replacing any
// path separator with an underscore; channel names are otherwise used
// verbatim so the cache stays human-inspectable.
func sanitize(name string) string {
	return strings.NewReplacer("/", "_", string(filepath.Separator), "_").Replace(name)
}
