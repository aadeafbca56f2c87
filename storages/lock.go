package storages

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const lockName = ".lock"

// Lock marks the root as owned by this process. The returned func releases it.
func (s *Store) Lock() (unlock func() error, err error) {
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return nil, &FileError{Op: "mkdir", Path: s.root, Err: err}
	}
	path := filepath.Join(s.root, lockName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, ErrLocked
		}
		return nil, &FileError{Op: "lock", Path: path, Err: err}
	}
	f.Close()
	return func() error {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return &FileError{Op: "unlock", Path: path, Err: err}
		}
		return nil
	}, nil
}
