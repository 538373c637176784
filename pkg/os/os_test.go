package os

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckCreateDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a", "b", "frame.png")
	if err := CheckCreateDir(file); err != nil {
		t.Fatal(err)
	}
	if !Exists(filepath.Dir(file)) {
		t.Errorf("dir is not created")
	}
	if Exists(file) {
		t.Errorf("file must not be created")
	}
}

func TestFileLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locks", "x.lock")
	l, err := NewFileLock(path)
	if err != nil {
		t.Fatal(err)
	}
	if l.Path() != path {
		t.Errorf("got %v, want %v", l.Path(), path)
	}
	if err = l.Lock(); err != nil {
		t.Fatal(err)
	}
	if _, err = os.Stat(path); err != nil {
		t.Errorf("no lock file: %v", err)
	}
	if err = l.Unlock(); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultFileLock(t *testing.T) {
	l, err := NewFileLock("")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(l.Path()) != DefaultLockName {
		t.Errorf("unexpected default path %v", l.Path())
	}
}
