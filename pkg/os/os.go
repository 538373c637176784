package os

import (
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
)

func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// CheckCreateDir makes sure the parent directory of a file path exists.
func CheckCreateDir(file string) error {
	dir := filepath.Dir(file)
	if !Exists(dir) {
		return os.MkdirAll(dir, os.ModeDir|0755)
	}
	return nil
}

// ExpectTermination returns a channel closed on SIGINT or SIGTERM.
func ExpectTermination() chan struct{} {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		<-signals
		close(done)
	}()
	return done
}
