package storages

import (
	"errors"
	"fmt"
)

var ErrLocked = errors.New("store is locked by another process")

// FileError reports a failed read or write of a store file.
// A write failure leaves the previous content in place.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (f *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", f.Op, f.Path, f.Err)
}

func (f *FileError) Unwrap() error {
	return f.Err
}
