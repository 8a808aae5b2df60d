package gitcli

import (
	"bytes"

	"github.com/bluekeyes/go-gitdiff/gitdiff"

	"github.com/distrowave/distrowave/pkg/errors"
)

// ChangedLines parses unified diff output into a map from file path to the
// line numbers touched on the new side of the diff. With --unified=0 the
// fragments carry no context, so every listed line is a real change.
func ChangedLines(diff []byte) (map[string][]int, error) {
	files, _, err := gitdiff.Parse(bytes.NewReader(diff))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeGitDiff, err, "parse diff")
	}

	changed := make(map[string][]int, len(files))
	for _, f := range files {
		path := f.NewName
		if path == "" {
			path = f.OldName // deletions still name the old side
		}
		var lines []int
		for _, frag := range f.TextFragments {
			for i := int64(0); i < frag.NewLines; i++ {
				lines = append(lines, int(frag.NewPosition+i))
			}
		}
		changed[path] = lines
	}
	return changed, nil
}
