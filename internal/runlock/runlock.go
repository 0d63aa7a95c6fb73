// Package runlock serializes rankdict runs that write shared state.
//
// Build and count runs both mutate files under the data directory; the lock
// keeps a concurrent invocation from reading half-written frequency files or
// interleaving count batches.
package runlock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrHeld indicates another rankdict process holds the lock.
var ErrHeld = errors.New("another rankdict run is already in progress")

// Lock is a held file lock. Release it when the run completes.
type Lock struct {
	lock *flock.Flock
}

// Acquire takes the exclusive run lock for the given data directory, failing
// fast when another process holds it.
func Acquire(dataDir string) (*Lock, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}
	lockPath := filepath.Join(dataDir, ".rankdict.lock")

	fl := flock.New(lockPath)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock file: %s)", ErrHeld, lockPath)
	}
	return &Lock{lock: fl}, nil
}

// Release drops the lock. Safe to call on a nil Lock.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}
