package collection

import (
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"

	"github.com/distrowave/distrowave/pkg/errors"
)

// filePattern matches versioned package files: one or more non-digit
// characters, one or more digits, and the yaml extension. Anything else in
// the directory (collection pins, READMEs, dotfiles) is not a package file
// and is silently excluded.
var filePattern = regexp.MustCompile(`^(\D+)(\d+)\.yaml$`)

// Index is the latest-revision index: one entry per package name, holding
// the document with the highest integer revision seen for that name.
type Index map[string]*Document

// LoadLatest scans dir for versioned package files and builds the Index.
// Revisions compare as integers, so math10.yaml beats math9.yaml. Files
// whose names match but whose bodies fail to parse stay in the index with
// Err set and are reported through warn; scans treat them as empty.
//
// Returns NO_COLLECTIONS if not a single filename matches the pattern:
// either the directory is not a distro metadata checkout or the clone
// failed, and neither is recoverable within the run.
func LoadLatest(dir string, warn func(format string, args ...any)) (Index, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNoCollections, err, "read %s", dir)
	}

	type pick struct {
		revision int
		path     string
	}
	latest := make(map[string]pick)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := filePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		revision, err := strconv.Atoi(m[2])
		if err != nil {
			continue // digits too large for an int; not a real revision
		}
		name := m[1]
		if cur, ok := latest[name]; !ok || revision > cur.revision {
			latest[name] = pick{revision: revision, path: filepath.Join(dir, entry.Name())}
		}
	}

	if len(latest) == 0 {
		return nil, errors.New(errors.ErrCodeNoCollections,
			"no package files found in %s: make sure this is a distro metadata checkout", dir)
	}

	ix := make(Index, len(latest))
	for name, p := range latest {
		doc, err := Load(p.path)
		if err != nil {
			if warn != nil {
				warn("skipping %s: %v", p.path, err)
			}
			doc = &Document{Path: p.path, Err: err}
		}
		doc.Name = name
		doc.Revision = p.revision
		ix[name] = doc
	}
	return ix, nil
}

// Names returns the indexed package names in sorted order.
func (ix Index) Names() []string {
	return slices.Sorted(maps.Keys(ix))
}
