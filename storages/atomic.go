package storages

import (
	"os"
	"path/filepath"
)

// WriteFileAtomic replaces path with data by writing a sibling temp file and renaming it.
func WriteFileAtomic(path string, data []byte) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if err = f.Chmod(0644); err != nil {
		f.Close()
		return &FileError{Op: "chmod", Path: path, Err: err}
	}
	if _, err = f.Write(data); err != nil {
		f.Close()
		return &FileError{Op: "write", Path: path, Err: err}
	}
	if err = f.Sync(); err != nil {
		f.Close()
		return &FileError{Op: "sync", Path: path, Err: err}
	}
	if err = f.Close(); err != nil {
		return &FileError{Op: "close", Path: path, Err: err}
	}
	if err = os.Rename(tmp, path); err != nil {
		return &FileError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
