package collection

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/distrowave/distrowave/pkg/errors"
)

// Repository is one entry of a document's repositories mapping: where a
// dependency lives and which branch or tag to track.
type Repository struct {
	Type    string `yaml:"type,omitempty"`
	URL     string `yaml:"url,omitempty"`
	Version string `yaml:"version"`
}

// Document is a parsed collection file. For versioned package files, Name
// and Revision come from the filename; collection files loaded directly by
// path leave them zero.
//
// A Document with a non-nil Err failed to parse. Its Repositories map is
// nil and every scan skips it; callers decide whether a partial result is
// acceptable.
type Document struct {
	Name     string
	Revision int
	Path     string

	Repositories map[string]Repository

	Err error
}

// DependsOn reports whether the document lists pkg as a direct dependency.
// Unparseable documents depend on nothing.
func (d *Document) DependsOn(pkg string) bool {
	if d.Err != nil {
		return false
	}
	_, ok := d.Repositories[pkg]
	return ok
}

// PackageNames returns the names of all listed dependencies, sorted.
func (d *Document) PackageNames() []string {
	names := make([]string, 0, len(d.Repositories))
	for name := range d.Repositories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// body is the on-disk shape shared by package and collection files.
type body struct {
	Repositories map[string]Repository `yaml:"repositories"`
}

// Load parses the collection file at path. A YAML error is reported as a
// PARSE_ERROR; the caller may skip the document and continue.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "read %s", path)
	}

	var b body
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "parse %s", path)
	}

	return &Document{Path: path, Repositories: b.Repositories}, nil
}
