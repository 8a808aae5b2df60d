package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	key := RemoteHeadsKey("https://example.com/repo.git")
	if err := c.Set(ctx, key, []byte("main\nsim9"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	data, hit, err := c.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if string(data) != "main\nsim9" {
		t.Errorf("Get = %q, want stored value", data)
	}

	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, key); hit {
		t.Error("expected miss after Delete")
	}
}

func TestFileCache_Expiration(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), -time.Second); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("expired entry should be a miss")
	}
}

func TestFileCache_EntryFormat(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("main\nsim9"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.heads"))
	if err != nil || len(files) != 1 {
		t.Fatalf("expected one .heads entry, got %v (%v)", files, err)
	}
	raw, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	// Zero ttl writes a never-expiring header line before the payload.
	if string(raw) != "0\nmain\nsim9" {
		t.Errorf("entry = %q, want expiry header then payload", raw)
	}

	if _, hit, _ := c.Get(ctx, "key"); !hit {
		t.Error("zero-ttl entry should never expire")
	}
}

func TestFileCache_CorruptEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("main"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	files, _ := filepath.Glob(filepath.Join(dir, "*.heads"))
	if len(files) != 1 {
		t.Fatalf("expected one entry, got %v", files)
	}
	if err := os.WriteFile(files[0], []byte("not-a-header"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("corrupt entry should be a miss")
	}
	if _, err := os.Stat(files[0]); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed on read")
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestRemoteHeadsKey(t *testing.T) {
	k1 := RemoteHeadsKey("https://example.com/a.git")
	k2 := RemoteHeadsKey("https://example.com/b.git")

	if !strings.HasPrefix(k1, "heads:") {
		t.Errorf("key %q should carry the heads namespace", k1)
	}
	if k1 == k2 {
		t.Error("different URLs should produce different keys")
	}
}
