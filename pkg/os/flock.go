package os

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// DefaultLockName is used when NewFileLock gets no path.
const DefaultLockName = "glstack.lock"

// Flock is an inter-process file lock.
type Flock struct {
	f *flock.Flock
}

// NewFileLock prepares a lock file at path or in the temp dir.
func NewFileLock(path string) (*Flock, error) {
	if path == "" {
		path = filepath.Join(os.TempDir(), DefaultLockName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0770); err != nil {
		return nil, err
	}
	return &Flock{f: flock.New(path)}, nil
}

func (f *Flock) Lock() error   { return f.f.Lock() }
func (f *Flock) Unlock() error { return f.f.Unlock() }
func (f *Flock) Path() string  { return f.f.Path() }
