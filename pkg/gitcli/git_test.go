package gitcli

import (
	"context"
	"os"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/distrowave/distrowave/pkg/cache"
)

func TestRemoteHeads_CacheHit(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}

	// Seed the cache; the URL is unreachable, so any miss would error.
	url := "https://invalid.invalid/distro.git"
	key := cache.RemoteHeadsKey(url)
	if err := fc.Set(ctx, key, []byte("main\nsim9"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	c := New(fc, time.Hour)
	heads, err := c.RemoteHeads(ctx, url)
	if err != nil {
		t.Fatalf("RemoteHeads() error: %v", err)
	}
	if !slices.Equal(heads, []string{"main", "sim9"}) {
		t.Errorf("RemoteHeads() = %v, want cached [main sim9]", heads)
	}

	ok, err := c.BranchExists(ctx, url, "sim9")
	if err != nil {
		t.Fatalf("BranchExists() error: %v", err)
	}
	if !ok {
		t.Error("BranchExists(sim9) = false, want true")
	}
	ok, err = c.BranchExists(ctx, url, "ghost")
	if err != nil {
		t.Fatalf("BranchExists() error: %v", err)
	}
	if ok {
		t.Error("BranchExists(ghost) = true, want false")
	}
}

func TestWorkspace(t *testing.T) {
	dir, err := Workspace()
	if err != nil {
		t.Fatalf("Workspace() error: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat workspace: %v", err)
	}
	if !info.IsDir() {
		t.Error("workspace is not a directory")
	}
	if !strings.Contains(dir, "distrowave-") {
		t.Errorf("workspace %q missing tool prefix", dir)
	}

	// Two workspaces never collide.
	other, err := Workspace()
	if err != nil {
		t.Fatalf("Workspace() error: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(other) })
	if other == dir {
		t.Error("Workspace() returned the same directory twice")
	}
}
