// Package cache gives the CLI's watch mode a content-addressed token
// cache: the source text's blake2b-256 digest is the key, and a
// cbor-encoded token stream is the value, so a re-save that doesn't
// change bytes (a common editor atomic-rename-on-save artifact) skips
// scanning and compression entirely.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/cmake-tools/cmakeast/token"
)

// Digest returns the blake2b-256 digest of text, hex-encoded, used as
// the cache key.
func Digest(text string) string {
	sum := blake2b.Sum256([]byte(text))
	return fmt.Sprintf("%x", sum)
}

// Cache stores tokenized results keyed by source digest. A Cache built
// by New with an empty directory keeps entries in memory only, for the
// lifetime of the process; constructing with a directory persists them
// to disk across runs as well. The zero value is not usable: Put needs
// the map that New allocates.
type Cache struct {
	dir string

	mu  sync.RWMutex
	mem map[string][]token.Token
}

// New returns a Cache. If dir is empty, the cache is in-memory only.
func New(dir string) *Cache {
	return &Cache{dir: dir, mem: make(map[string][]token.Token)}
}

// Get looks up the token stream for digest, checking memory first and
// then, if a directory was configured, disk.
func (c *Cache) Get(digest string) ([]token.Token, bool, error) {
	c.mu.RLock()
	toks, ok := c.mem[digest]
	c.mu.RUnlock()
	if ok {
		return toks, true, nil
	}

	if c.dir == "" {
		return nil, false, nil
	}

	data, err := os.ReadFile(c.entryPath(digest))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache: reading %s: %w", digest, err)
	}

	var decoded []token.Token
	if err := cbor.Unmarshal(data, &decoded); err != nil {
		return nil, false, fmt.Errorf("cache: decoding %s: %w", digest, err)
	}

	c.mu.Lock()
	c.mem[digest] = decoded
	c.mu.Unlock()

	return decoded, true, nil
}

// Put records toks under digest, in memory and (if configured) on
// disk.
func (c *Cache) Put(digest string, toks []token.Token) error {
	c.mu.Lock()
	c.mem[digest] = toks
	c.mu.Unlock()

	if c.dir == "" {
		return nil
	}

	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return fmt.Errorf("cache: building encoder: %w", err)
	}
	data, err := encMode.Marshal(toks)
	if err != nil {
		return fmt.Errorf("cache: encoding %s: %w", digest, err)
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("cache: creating %s: %w", c.dir, err)
	}

	tmp := c.entryPath(digest) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("cache: writing %s: %w", digest, err)
	}
	return os.Rename(tmp, c.entryPath(digest))
}

func (c *Cache) entryPath(digest string) string {
	return filepath.Join(c.dir, digest+".cbor")
}
