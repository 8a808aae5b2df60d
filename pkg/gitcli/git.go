// Package gitcli shells out to the git CLI for the few remote operations
// distrowave needs: cloning a metadata repository, listing remote branches,
// and diffing a checkout against its upstream comparison branch.
//
// The git binary is used instead of a Go git implementation so the tool
// honours whatever credentials, URL rewrites, and proxy setup the user's
// git configuration already carries.
package gitcli

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/distrowave/distrowave/pkg/cache"
	"github.com/distrowave/distrowave/pkg/errors"
)

// Client runs git commands. Remote branch listings go through the cache;
// everything else hits git directly.
type Client struct {
	cache cache.Cache
	ttl   time.Duration
}

// New creates a Client. A nil cache disables caching.
func New(c cache.Cache, ttl time.Duration) *Client {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Client{cache: c, ttl: ttl}
}

// Workspace creates a unique temporary directory for a clone.
// The caller owns the directory and should os.RemoveAll it when done.
func Workspace() (string, error) {
	dir := filepath.Join(os.TempDir(), "distrowave-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "create workspace")
	}
	return dir, nil
}

// Clone clones url into dir. Only the current tree is needed, so the
// clone is shallow.
func (c *Client) Clone(ctx context.Context, url, dir string) error {
	cmd := exec.CommandContext(ctx, "git", "clone", "--depth", "1", url, dir)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrap(errors.ErrCodeGitClone, err, "clone %s: %s", url, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// RemoteHeads returns the branch names published by the repository at url.
// Responses are cached under the URL so a validation run asks each remote
// at most once across invocations.
func (c *Client) RemoteHeads(ctx context.Context, url string) ([]string, error) {
	key := cache.RemoteHeadsKey(url)
	if data, hit, err := c.cache.Get(ctx, key); err == nil && hit {
		return splitLines(data), nil
	}

	cmd := exec.CommandContext(ctx, "git", "ls-remote", url, "refs/heads/*")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeGitRemote, err, "ls-remote %s: %s", url, strings.TrimSpace(stderr.String()))
	}

	heads := parseHeads(stdout.Bytes())
	_ = c.cache.Set(ctx, key, []byte(strings.Join(heads, "\n")), c.ttl)
	return heads, nil
}

// BranchExists reports whether the repository at url publishes branch.
func (c *Client) BranchExists(ctx context.Context, url, branch string) (bool, error) {
	heads, err := c.RemoteHeads(ctx, url)
	if err != nil {
		return false, err
	}
	for _, h := range heads {
		if h == branch {
			return true, nil
		}
	}
	return false, nil
}

// RemoteURL returns the configured URL of the named remote in the checkout
// at dir, or "" if the remote does not exist.
func (c *Client) RemoteURL(ctx context.Context, dir, remote string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "-C", dir, "config", "--get", "remote."+remote+".url")
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", nil // remote not configured
		}
		return "", errors.Wrap(errors.ErrCodeGitRemote, err, "config remote.%s.url", remote)
	}
	return strings.TrimSpace(string(out)), nil
}

// Diff returns `git diff --unified=0 <ref>` for the checkout at dir.
func (c *Client) Diff(ctx context.Context, dir, ref string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", "-C", dir, "diff", "--unified=0", ref)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeGitDiff, err, "diff against %s: %s", ref, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// parseHeads extracts branch names from ls-remote output lines of the form
// "<sha>\trefs/heads/<branch>".
func parseHeads(out []byte) []string {
	var heads []string
	for _, line := range strings.Split(string(out), "\n") {
		_, ref, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		if branch, ok := strings.CutPrefix(ref, "refs/heads/"); ok {
			heads = append(heads, branch)
		}
	}
	return heads
}

func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	return strings.Split(string(data), "\n")
}
