package injury

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Cache is a disk-backed result cache keyed by a hash of a logical query
// identifier. Entries are never pruned; payloads are small and TTLs short,
// so unbounded growth is an accepted risk at this scale.
//
// Writes go through a temp file and an atomic rename so concurrent readers
// and same-key writers never observe a partial file. Any read failure
// (missing file, corrupt JSON) is treated as a miss.
type Cache struct {
	dir    string
	logger *slog.Logger
	now    func() time.Time
}

// envelope wraps a payload with the write timestamp used for age checks.
type envelope struct {
	CachedAt time.Time       `json:"cached_at"`
	Payload  json.RawMessage `json:"payload"`
}

// NewCache creates a cache rooted at dir. The directory is created lazily.
func NewCache(dir string, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{dir: dir, logger: logger, now: time.Now}
}

// Get loads the entry for identifier into out. It reports false if the entry
// is absent, unreadable, or older than maxAge.
func (c *Cache) Get(identifier string, maxAge time.Duration, out interface{}) bool {
	data, err := os.ReadFile(c.path(identifier))
	if err != nil {
		return false
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return false
	}
	if c.now().Sub(env.CachedAt) > maxAge {
		return false
	}
	if err := json.Unmarshal(env.Payload, out); err != nil {
		return false
	}
	return true
}

// Set stamps v with the current time and writes it, replacing any prior
// entry. Failures are logged, never returned: caching is best effort.
func (c *Cache) Set(identifier string, v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		c.logger.Warn("cache marshal failed", "identifier", identifier, "error", err)
		return
	}
	data, err := json.Marshal(envelope{CachedAt: c.now(), Payload: payload})
	if err != nil {
		c.logger.Warn("cache marshal failed", "identifier", identifier, "error", err)
		return
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		c.logger.Warn("cache dir create failed", "dir", c.dir, "error", err)
		return
	}

	tmp, err := os.CreateTemp(c.dir, "write-*")
	if err != nil {
		c.logger.Warn("cache temp file failed", "error", err)
		return
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		c.logger.Warn("cache write failed", "identifier", identifier, "error", err)
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		c.logger.Warn("cache close failed", "identifier", identifier, "error", err)
		return
	}
	if err := os.Rename(tmpName, c.path(identifier)); err != nil {
		os.Remove(tmpName)
		c.logger.Warn("cache rename failed", "identifier", identifier, "error", err)
	}
}

// path maps an identifier to its content-addressed file name.
func (c *Cache) path(identifier string) string {
	sum := md5.Sum([]byte(identifier))
	return filepath.Join(c.dir, fmt.Sprintf("%x.json", sum))
}
