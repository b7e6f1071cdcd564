package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/strongspace/cli/internal/log"
	"github.com/strongspace/cli/internal/paths"
)

const (
	lockSuffix       = ".lock"
	lockTimeout      = 5 * time.Second
	staleLockTimeout = 30 * time.Second
	lockPollInterval = 50 * time.Millisecond
)

// ErrLockTimeout is returned when another process holds a lock for longer
// than lockTimeout.
var ErrLockTimeout = errors.New("config: lock timeout")

// WithLock runs fn while holding the lock on ~/.strongspacerc.
func WithLock(fn func() error) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}
	return WithFileLock(configPath, fn)
}

// WithFileLock runs fn while holding <path>.lock. The credentials file
// shares this so a reauthorising run and a logout cannot interleave.
func WithFileLock(path string, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	lockPath := path + lockSuffix
	f, err := acquireLock(lockPath)
	if err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	defer releaseLock(f, lockPath)
	return fn()
}

// acquireLock creates lockPath exclusively, polling until lockTimeout.
// A lock older than staleLockTimeout belongs to a crashed process and is
// removed.
func acquireLock(lockPath string) (*os.File, error) {
	deadline := time.Now().Add(lockTimeout)
	for {
		if info, err := os.Stat(lockPath); err == nil && time.Since(info.ModTime()) > staleLockTimeout {
			log.Warn("config: removing stale lock %s", lockPath)
			_ = os.Remove(lockPath)
		}

		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
			return f, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, err
		}
		if time.Now().After(deadline) {
			return nil, ErrLockTimeout
		}
		time.Sleep(lockPollInterval)
	}
}

func releaseLock(f *os.File, lockPath string) {
	_ = f.Close()
	_ = os.Remove(lockPath)
}
