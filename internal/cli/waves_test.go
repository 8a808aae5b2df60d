package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/distrowave/distrowave/pkg/errors"
)

// chainFixture writes the A1/B1/C1 chain: B depends on A, C depends on B.
func chainFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"A1.yaml": "repositories: {}\n",
		"B1.yaml": "repositories:\n  A:\n    type: git\n    url: https://example.com/A\n    version: A1\n",
		"C1.yaml": "repositories:\n  B:\n    type: git\n    url: https://example.com/B\n    version: B1\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// runWaves executes the waves command against a local source directory and
// returns everything printed to stdout.
func runWaves(t *testing.T, args ...string) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"waves"}, args...))
	execErr := root.ExecuteContext(t.Context())

	w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatal(err)
	}
	return buf.String(), execErr
}

func TestWavesCommandPrintsExplicitDependants(t *testing.T) {
	dir := chainFixture(t)

	out, err := runWaves(t, "A", "--source", dir)
	if err != nil {
		t.Fatalf("waves error: %v", err)
	}

	// The one-hop edge set is the report's explicit-dependants section:
	// B picked up A, and C is B's own direct dependant.
	if !strings.Contains(out, "Explicit dependants") {
		t.Errorf("output missing explicit dependants section:\n%s", out)
	}
	if !strings.Contains(out, "B: C") {
		t.Errorf("output missing one-hop mapping B: C:\n%s", out)
	}
	if !strings.Contains(out, "A: B") {
		t.Errorf("output missing per-target mapping A: B:\n%s", out)
	}
}

func TestWavesCommandOrdersWavesDescending(t *testing.T) {
	dir := chainFixture(t)

	out, err := runWaves(t, "A", "--source", dir)
	if err != nil {
		t.Fatalf("waves error: %v", err)
	}

	wave2 := strings.Index(out, "wave 2")
	wave1 := strings.Index(out, "wave 1")
	if wave2 < 0 || wave1 < 0 {
		t.Fatalf("output missing wave lines:\n%s", out)
	}
	if wave2 > wave1 {
		t.Errorf("wave 2 should print before wave 1:\n%s", out)
	}
}

func TestWavesCommandEmptyGraph(t *testing.T) {
	dir := chainFixture(t)

	// C has no dependants, so the edge set stays empty.
	_, err := runWaves(t, "C", "--source", dir)
	if !errors.Is(err, errors.ErrCodeEmptyGraph) {
		t.Fatalf("expected GRAPH_EMPTY, got %v", err)
	}
}
