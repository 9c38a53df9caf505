package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Persistence is a durable key -> JSON text mapping. Values are read and
// written whole.
type Persistence interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Erase(key string) error
	Keys(ctx context.Context) []string
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		s, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		cfg = s
	}
	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		// No read cache: the cli and mcp commands write the same files from
		// other processes.
		CacheSizeMax: 0,
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Read(key string) ([]byte, error) {
	if !isRecordKey(key) {
		return nil, fmt.Errorf("store: invalid key %q", key)
	}
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return val, nil
}

func (p *persistence) Write(key string, data []byte) error {
	if !isRecordKey(key) {
		return fmt.Errorf("store: invalid key %q", key)
	}
	return p.d.Write(key, data)
}

func (p *persistence) Erase(key string) error {
	if err := p.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (p *persistence) Keys(ctx context.Context) []string {
	keys := make([]string, 0, 4)
	for key := range p.d.Keys(ctx.Done()) {
		if isRecordKey(key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// Records live flat in the base directory next to the log files, so only
// keys carrying the record prefix are treated as store entries.
func isRecordKey(key string) bool {
	return strings.HasPrefix(key, keyPrefix) && !strings.ContainsAny(key, `/\`)
}

func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: s,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
