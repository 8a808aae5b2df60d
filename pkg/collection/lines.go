package collection

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/distrowave/distrowave/pkg/errors"
)

// Entry is one repository record of a collection file together with the
// line its mapping starts on. Line numbers are 1-based, as reported by the
// YAML parser, and are used to match diff hunks back to entries.
type Entry struct {
	Name    string
	URL     string
	Version string
	Line    int
}

// Entries parses the collection file at path and returns its repository
// records with line positions, in file order.
func Entries(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "read %s", path)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "parse %s", path)
	}

	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	repos := mappingValue(doc, "repositories")
	if repos == nil || repos.Kind != yaml.MappingNode {
		return nil, nil
	}

	var entries []Entry
	for i := 0; i+1 < len(repos.Content); i += 2 {
		key, val := repos.Content[i], repos.Content[i+1]
		if val.Kind != yaml.MappingNode {
			continue
		}
		e := Entry{Name: key.Value, Line: key.Line}
		if url := mappingValue(val, "url"); url != nil {
			e.URL = url.Value
		}
		if version := mappingValue(val, "version"); version != nil {
			e.Version = version.Value
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Touched returns the entries whose span covers any of the changed line
// numbers. For each changed line the match is the entry starting closest
// above it; duplicates collapse to one entry, keeping file order.
func Touched(entries []Entry, lines []int) []Entry {
	seen := make(map[string]bool)
	var out []Entry

	for _, line := range lines {
		var match *Entry
		for i := range entries {
			e := &entries[i]
			if e.Line > line {
				continue
			}
			if match == nil || e.Line > match.Line {
				match = e
			}
		}
		if match != nil && !seen[match.Name] {
			seen[match.Name] = true
			out = append(out, *match)
		}
	}
	return out
}
