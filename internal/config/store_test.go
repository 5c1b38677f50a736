package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"
	"github.com/google/go-cmp/cmp"
)

// mockFlocker is a test double for the Flocker interface.
type mockFlocker struct {
	tryLockResult bool
	tryLockErr    error
	unlockErr     error
	unlockCalled  bool
}

func (m *mockFlocker) TryLock() (bool, error) {
	return m.tryLockResult, m.tryLockErr
}

func (m *mockFlocker) Unlock() error {
	m.unlockCalled = true
	return m.unlockErr
}

func storeWith(t *testing.T, m *mockFlocker) *Store {
	t.Helper()
	s := NewStore(t.TempDir())
	s.newFlocker = func(string) Flocker { return m }
	return s
}

func TestStore_LoadMissingReturnsDefaults(t *testing.T) {
	s := NewStore(t.TempDir())

	cfg, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if s.Exists() {
		t.Error("Exists() = true for missing file")
	}
}

func TestStore_SaveThenLoad(t *testing.T) {
	s := NewStore(t.TempDir())
	want := Default()
	want.MinScore = 75
	want.FailOnWarnings = true

	if err := s.Save(context.Background(), want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !s.Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	info, err := os.Stat(s.Path())
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o644 {
		t.Errorf("config mode = %o, want 644", perm)
	}
}

func TestStore_LoadInvalidNamesFile(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := os.WriteFile(s.Path(), []byte("concurrency: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := s.Load()
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want *ConfigError", err)
	}
	if cfgErr.Path != s.Path() {
		t.Errorf("Path = %q, want %q", cfgErr.Path, s.Path())
	}
}

func TestStore_Save_Locking(t *testing.T) {
	errPermDenied := errors.New("permission denied")

	tests := []struct {
		name       string
		flocker    *mockFlocker
		wantErr    error
		wantUnlock bool
	}{
		{
			name:       "writes when lock is available",
			flocker:    &mockFlocker{tryLockResult: true},
			wantUnlock: true,
		},
		{
			name:    "fails fast when lock is held",
			flocker: &mockFlocker{tryLockResult: false},
			wantErr: ErrAlreadyLocked,
		},
		{
			name:    "wraps underlying flock error",
			flocker: &mockFlocker{tryLockErr: errPermDenied},
			wantErr: errPermDenied,
		},
		{
			name:       "reports unlock failure",
			flocker:    &mockFlocker{tryLockResult: true, unlockErr: errors.New("unlock failed")},
			wantErr:    nil,
			wantUnlock: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := storeWith(t, tt.flocker)

			err := s.Save(context.Background(), Default())

			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.flocker.unlockErr != nil && err == nil {
				t.Error("expected unlock failure to be reported")
			}
			if tt.wantErr == nil && tt.flocker.unlockErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.flocker.unlockCalled != tt.wantUnlock {
				t.Errorf("unlockCalled = %v, want %v", tt.flocker.unlockCalled, tt.wantUnlock)
			}
		})
	}
}

func TestStore_Save_RealLockContention(t *testing.T) {
	s := NewStore(t.TempDir())

	held := flock.New(filepath.Join(s.root, LockName))
	ok, err := held.TryLock()
	if err != nil || !ok {
		t.Fatalf("could not take lock: ok=%v err=%v", ok, err)
	}
	defer held.Unlock()

	if err := s.Save(context.Background(), Default()); !errors.Is(err, ErrAlreadyLocked) {
		t.Errorf("error = %v, want ErrAlreadyLocked", err)
	}
	if s.Exists() {
		t.Error("config must not be written while another writer holds the lock")
	}
}

func TestStore_Save_RejectsInvalidConfig(t *testing.T) {
	m := &mockFlocker{tryLockResult: true}
	s := storeWith(t, m)

	cfg := Default()
	cfg.Concurrency = 0

	var cfgErr *ConfigError
	if err := s.Save(context.Background(), cfg); !errors.As(err, &cfgErr) {
		t.Errorf("error = %v, want *ConfigError", err)
	}
	if s.Exists() {
		t.Error("invalid config must not be written")
	}
}

func TestStore_Save_CancelledContext(t *testing.T) {
	s := storeWith(t, &mockFlocker{tryLockResult: true})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Save(ctx, Default()); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
