// Package cache keeps minimization outcomes of function files on disk so
// unchanged files are not minimized again.
package cache

import (
	"crypto/md5"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	tt "github.com/gnolang/qmc/internal/types"
)

const (
	cacheFileName = "qmc_cache.gob"
	defaultMaxAge = 24 * time.Hour
)

type fileMetadata struct {
	Hash         string
	LastModified time.Time
}

// Entry is the stored result of one function file. Dependencies maps each
// dependency file to its digest when the entry was written; a missing file
// has an empty digest.
type Entry struct {
	Metadata     fileMetadata
	Dependencies map[string]string
	Outcomes     []tt.Outcome
	CreatedAt    time.Time
	LastAccessed time.Time
}

type Cache struct {
	Dir          string
	entries      map[string]Entry
	mutex        sync.Mutex
	maxAge       time.Duration
	dependencies []string
}

// New opens the cache stored in dir, creating the directory when needed.
// An entry is served only while every dependency file has the content it
// had when the entry was written, across processes as well.
func New(dir string, dependencyFiles ...string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	c := &Cache{
		Dir:     dir,
		entries: make(map[string]Entry),
		maxAge:  defaultMaxAge,
	}
	for _, f := range dependencyFiles {
		if f != "" {
			c.dependencies = append(c.dependencies, f)
		}
	}

	if err := c.load(); err != nil {
		return nil, fmt.Errorf("failed to load cache: %w", err)
	}
	return c, nil
}

func (c *Cache) path() string {
	return filepath.Join(c.Dir, cacheFileName)
}

func (c *Cache) load() error {
	file, err := os.Open(c.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open cache file: %w", err)
	}
	defer file.Close()

	if err := gob.NewDecoder(file).Decode(&c.entries); err != nil {
		return fmt.Errorf("failed to decode cache file: %w", err)
	}
	return nil
}

func (c *Cache) save() error {
	file, err := os.Create(c.path())
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(c.entries); err != nil {
		return fmt.Errorf("failed to encode cache file: %w", err)
	}
	return nil
}

// Set records the outcomes of filename together with the current state of
// the dependency files and persists the cache.
func (c *Cache) Set(filename string, outcomes []tt.Outcome) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	metadata, err := fingerprint(filename)
	if err != nil {
		return fmt.Errorf("failed to get file metadata: %w", err)
	}
	deps, err := c.snapshot()
	if err != nil {
		return err
	}

	now := time.Now()
	c.entries[filename] = Entry{
		Metadata:     metadata,
		Dependencies: deps,
		Outcomes:     outcomes,
		CreatedAt:    now,
		LastAccessed: now,
	}

	return c.save()
}

// Get returns the cached outcomes of filename if they are still valid.
// Stale entries are dropped.
func (c *Cache) Get(filename string) ([]tt.Outcome, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry, exists := c.entries[filename]
	if !exists {
		return nil, false
	}

	if !c.fresh(filename, entry) {
		delete(c.entries, filename)
		return nil, false
	}

	entry.LastAccessed = time.Now()
	c.entries[filename] = entry

	return entry.Outcomes, true
}

func (c *Cache) fresh(filename string, entry Entry) bool {
	if time.Since(entry.CreatedAt) > c.maxAge {
		return false
	}

	current, err := fingerprint(filename)
	if err != nil || current.Hash != entry.Metadata.Hash || !current.LastModified.Equal(entry.Metadata.LastModified) {
		return false
	}

	deps, err := c.snapshot()
	if err != nil || len(deps) != len(entry.Dependencies) {
		return false
	}
	for file, sum := range deps {
		stored, ok := entry.Dependencies[file]
		if !ok || stored != sum {
			return false
		}
	}
	return true
}

// snapshot digests every dependency file as it is now.
func (c *Cache) snapshot() (map[string]string, error) {
	deps := make(map[string]string, len(c.dependencies))
	for _, file := range c.dependencies {
		sum, _, err := digest(file)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			deps[file] = ""
		case err != nil:
			return nil, fmt.Errorf("failed to digest dependency %s: %w", file, err)
		default:
			deps[file] = sum
		}
	}
	return deps, nil
}

func (c *Cache) SetMaxAge(duration time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.maxAge = duration
}

// InvalidateAll drops every entry.
func (c *Cache) InvalidateAll() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries = make(map[string]Entry)
	return c.save()
}

// Len returns the number of stored entries, valid or not.
func (c *Cache) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return len(c.entries)
}

func fingerprint(filename string) (fileMetadata, error) {
	sum, info, err := digest(filename)
	if err != nil {
		return fileMetadata{}, err
	}
	return fileMetadata{Hash: sum, LastModified: info.ModTime()}, nil
}

// digest returns the hex md5 of the file content and its info.
func digest(filename string) (string, fs.FileInfo, error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", nil, err
	}
	defer file.Close()

	h := md5.New()
	if _, err := io.Copy(h, file); err != nil {
		return "", nil, fmt.Errorf("failed to hash %s: %w", filename, err)
	}
	info, err := file.Stat()
	if err != nil {
		return "", nil, fmt.Errorf("failed to stat %s: %w", filename, err)
	}
	return hex.EncodeToString(h.Sum(nil)), info, nil
}
