package collection

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"

	"github.com/distrowave/distrowave/pkg/errors"
)

// Change is a pending rewrite of one collection file.
type Change struct {
	Path string
	Old  []byte
	New  []byte
}

// UnifiedDiff renders the change as a unified diff for preview.
func (c Change) UnifiedDiff() (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(c.Old)),
		B:        difflib.SplitLines(string(c.New)),
		FromFile: filepath.Base(c.Path),
		ToFile:   filepath.Base(c.Path),
		Context:  3,
	})
}

// PlanRewrite scans every *.yaml file under dir for documents that pin
// library at version from, and produces one Change per file rewriting the
// pin to version to. Nothing is written; pass the result to [Apply] after
// the caller confirms.
//
// The rewrite mutates only the version scalar inside the YAML node tree,
// so key order and comments survive. Files that fail to parse are skipped.
func PlanRewrite(dir, library, from, to string) ([]Change, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "glob %s", dir)
	}

	var changes []Change
	for _, path := range paths {
		old, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeParse, err, "read %s", path)
		}

		var root yaml.Node
		if err := yaml.Unmarshal(old, &root); err != nil {
			continue // malformed file; not a candidate for rewriting
		}

		if !rewriteVersion(&root, library, from, to) {
			continue
		}

		var buf bytes.Buffer
		buf.WriteString("---\n")
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(&root); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode %s", path)
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode %s", path)
		}

		changes = append(changes, Change{Path: path, Old: old, New: buf.Bytes()})
	}
	return changes, nil
}

// Apply writes every change back to disk.
func Apply(changes []Change) error {
	for _, c := range changes {
		info, err := os.Stat(c.Path)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "stat %s", c.Path)
		}
		if err := os.WriteFile(c.Path, c.New, info.Mode().Perm()); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", c.Path)
		}
	}
	return nil
}

// rewriteVersion walks the node tree to repositories.<library>.version and
// replaces its value if it equals from. Reports whether a replacement
// happened.
func rewriteVersion(root *yaml.Node, library, from, to string) bool {
	doc := root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}

	repos := mappingValue(doc, "repositories")
	if repos == nil {
		return false
	}
	entry := mappingValue(repos, library)
	if entry == nil {
		return false
	}
	version := mappingValue(entry, "version")
	if version == nil || version.Kind != yaml.ScalarNode || version.Value != from {
		return false
	}

	version.Value = to
	return true
}

// mappingValue returns the value node for key inside a mapping node, or nil.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
