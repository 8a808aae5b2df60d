package cache

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// FileCache keeps one file per cached branch list under the distrowave
// cache directory. An entry is self-describing: the first line carries the
// unix expiry second (0 for no expiry), the rest is the ls-remote payload
// verbatim, so a stale list can be inspected or removed with ordinary
// shell tools. `cache clear` just deletes the directory.
type FileCache struct {
	dir string
}

// NewFileCache creates the cache directory if needed. The directory is
// flat: a metadata checkout references at most a few hundred distinct
// repositories.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Get returns the stored branch list, dropping entries that are expired
// or unreadable. A corrupt entry is a miss, never an error: the remote
// will simply be asked again.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	header, payload, ok := bytes.Cut(data, []byte("\n"))
	if !ok {
		_ = os.Remove(path)
		return nil, false, nil
	}
	expiry, err := strconv.ParseInt(string(header), 10, 64)
	if err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if expiry != 0 && time.Now().Unix() >= expiry {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return payload, true, nil
}

// Set stores a branch list. A non-positive ttl other than zero writes an
// already-expired entry, which the next Get discards.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	var expiry int64
	if ttl != 0 {
		expiry = time.Now().Add(ttl).Unix()
	}
	entry := append([]byte(strconv.FormatInt(expiry, 10)+"\n"), data...)
	return os.WriteFile(c.path(key), entry, 0o644)
}

// Delete removes the entry for key.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing; every operation already leaves the directory
// consistent.
func (c *FileCache) Close() error {
	return nil
}

// path flattens a key into a filename. Keys embed hashed repository URLs,
// but hashing once more keeps arbitrary key text out of the filesystem.
func (c *FileCache) path(key string) string {
	return filepath.Join(c.dir, Hash([]byte(key))+".heads")
}

var _ Cache = (*FileCache)(nil)
