// File: manifest.go
// Role: source-mtime manifest, the cache's rebuild-on-change trigger.
package cache

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Touch records the current modification time of each source path against
// dataset id, overwriting any manifest previously stored for it.
func (s *Store) Touch(id string, sources ...string) error {
	dir := s.datasetDir(id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cache: creating dataset %q: %w", id, err)
	}
	f, err := os.Create(filepath.Join(dir, "manifest.txt"))
	if err != nil {
		return fmt.Errorf("cache: creating manifest: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	for _, src := range sources {
		fi, err := os.Stat(src)
		if err != nil {
			return fmt.Errorf("cache: stat %q: %w", src, err)
		}
		fmt.Fprintf(bw, "%s\t%d\n", src, fi.ModTime().UnixNano())
	}
	return bw.Flush()
}

// Fresh reports whether dataset id's recorded manifest still matches the
// current modification times of sources. A missing manifest, a missing
// source, or any mtime drift reports false, which callers should treat as
// "rebuild the cache entry".
func (s *Store) Fresh(id string, sources ...string) (bool, error) {
	path := filepath.Join(s.datasetDir(id), "manifest.txt")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("cache: opening manifest: %w", err)
	}
	defer f.Close()

	recorded := make(map[string]int64)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		ns, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			continue
		}
		recorded[parts[0]] = ns
	}
	if err := sc.Err(); err != nil {
		return false, fmt.Errorf("cache: reading manifest: %w", err)
	}

	if len(recorded) != len(sources) {
		return false, nil
	}
	for _, src := range sources {
		ns, ok := recorded[src]
		if !ok {
			return false, nil
		}
		fi, err := os.Stat(src)
		if err != nil {
			return false, nil
		}
		if fi.ModTime().UnixNano() != ns {
			return false, nil
		}
	}
	return true, nil
}
