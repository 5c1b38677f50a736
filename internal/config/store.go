package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockName is the advisory lock file guarding configuration writes.
const LockName = ".dslint.lock"

// ErrAlreadyLocked is returned when another dslint process is writing the
// configuration.
var ErrAlreadyLocked = errors.New("another dslint command is already writing the config")

// Flocker abstracts the subset of flock.Flock used for advisory locking.
type Flocker interface {
	TryLock() (bool, error)
	Unlock() error
}

// Store reads and writes the configuration file of one project root.
type Store struct {
	root       string
	newFlocker func(path string) Flocker
}

// NewStore creates a Store for the project at root.
func NewStore(root string) *Store {
	return &Store{
		root:       root,
		newFlocker: func(path string) Flocker { return flock.New(path) },
	}
}

// Path returns the configuration file path.
func (s *Store) Path() string {
	return filepath.Join(s.root, FileName)
}

// Exists reports whether the configuration file is present.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.Path())
	return err == nil && !info.IsDir()
}

// Load reads the configuration file. A missing file yields the defaults.
func (s *Store) Load() (*Config, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) {
			cfgErr.Path = s.Path()
		}
		return nil, err
	}
	return cfg, nil
}

// Save validates cfg and writes it atomically while holding the advisory
// lock. It fails fast with ErrAlreadyLocked when another writer holds it.
func (s *Store) Save(ctx context.Context, cfg *Config) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lock := s.newFlocker(filepath.Join(s.root, LockName))
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquiring lock: %w", err)
	}
	if !ok {
		return ErrAlreadyLocked
	}
	defer func() {
		if uerr := lock.Unlock(); uerr != nil && err == nil {
			err = fmt.Errorf("releasing lock: %w", uerr)
		}
	}()

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	return writeAtomic(s.Path(), data)
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".dslint-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp config: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("writing config: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
