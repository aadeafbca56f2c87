package storages

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/reusee/logos/addrs"
)

// Scratch is the file id reserved for the scratch file. Addresses never resolve to it.
const Scratch = 0

const ext = ".txt"

// Store keeps numbered files of three-cell lines under a root directory.
// A mutation writes each file it touches once, atomically.
// Store is not safe for concurrent mutation.
type Store struct {
	root    string
	scratch string
}

func New(root string, scratch string) *Store {
	if scratch == "" {
		scratch = "temp_line" + ext
	}
	return &Store{
		root:    root,
		scratch: scratch,
	}
}

func (s *Store) Root() string {
	return s.root
}

func (s *Store) Path(id int) string {
	if id == Scratch {
		return filepath.Join(s.root, s.scratch)
	}
	return filepath.Join(s.root, strconv.Itoa(id)+ext)
}

func (s *Store) Exists(id int) bool {
	_, err := os.Stat(s.Path(id))
	return err == nil
}

func (s *Store) ReadLines(id int) ([]Line, error) {
	path := s.Path(id)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &FileError{Op: "read", Path: path, Err: err}
	}
	return parseLines(string(content)), nil
}

func (s *Store) WriteLines(id int, lines []Line) error {
	return WriteFileAtomic(s.Path(id), formatLines(lines))
}

// EnsureFile creates the file with one empty line if it is absent.
func (s *Store) EnsureFile(id int) error {
	if s.Exists(id) {
		return nil
	}
	return s.WriteLines(id, []Line{{}})
}

// CreateFile creates the file with one empty line. It fails if the file exists.
func (s *Store) CreateFile(id int) (bool, error) {
	if s.Exists(id) {
		return false, nil
	}
	if err := s.WriteLines(id, []Line{{}}); err != nil {
		return false, err
	}
	return true, nil
}

// Update reads the file, passes its lines to fn and writes the result once if fn reports ok.
// A missing file is not ok.
func (s *Store) Update(id int, fn func([]Line) ([]Line, bool)) (bool, error) {
	if !s.Exists(id) {
		return false, nil
	}
	lines, err := s.ReadLines(id)
	if err != nil {
		return false, err
	}
	lines, ok := fn(lines)
	if !ok {
		return false, nil
	}
	if err := s.WriteLines(id, lines); err != nil {
		return false, err
	}
	return true, nil
}

func validCell(addr addrs.Address, numLines int) bool {
	return addr.IsCell() && addr.Line <= numLines && addr.Cell <= Arity
}

// GetCell returns the value at a cell address. Addresses of other granularity are not ok.
func (s *Store) GetCell(addr addrs.Address) (Cell, bool, error) {
	if !addr.IsCell() {
		return Empty, false, nil
	}
	lines, err := s.ReadLines(addr.File)
	if err != nil {
		return Empty, false, err
	}
	if !validCell(addr, len(lines)) {
		return Empty, false, nil
	}
	return lines[addr.Line-1][addr.Cell-1], true, nil
}

func (s *Store) SetCell(addr addrs.Address, value Cell) (bool, error) {
	if !addr.IsCell() {
		return false, nil
	}
	return s.Batch([]int{addr.File}, func(files Files) bool {
		return files.SetCell(addr, value)
	})
}

// GetLine returns the line at a 1-based index.
func (s *Store) GetLine(id, line int) (Line, bool, error) {
	lines, err := s.ReadLines(id)
	if err != nil {
		return Line{}, false, err
	}
	if line < 1 || line > len(lines) {
		return Line{}, false, nil
	}
	return lines[line-1], true, nil
}

// SetLine replaces the line at a 1-based index.
func (s *Store) SetLine(id, line int, value Line) (bool, error) {
	return s.Batch([]int{id}, func(files Files) bool {
		return files.SetLine(id, line, value)
	})
}

func (s *Store) DeleteLine(addr addrs.Address) (bool, error) {
	if !addr.IsLine() {
		return false, nil
	}
	return s.Update(addr.File, func(lines []Line) ([]Line, bool) {
		if addr.Line > len(lines) {
			return nil, false
		}
		return slices.Delete(lines, addr.Line-1, addr.Line), true
	})
}

func (s *Store) DeleteFile(addr addrs.Address) (bool, error) {
	if addr.Level() != addrs.LevelFile {
		return false, nil
	}
	path := s.Path(addr.File)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, &FileError{Op: "remove", Path: path, Err: err}
	}
	return true, nil
}

// InsertLinesAfter inserts newLines after the 1-based line index. Index 0 inserts at the top.
func (s *Store) InsertLinesAfter(id, line int, newLines []Line) (bool, error) {
	return s.Batch([]int{id}, func(files Files) bool {
		return files.InsertLinesAfter(id, line, newLines)
	})
}

// FileIDs returns the ids of the numbered files under root, ascending.
func (s *Store) FileIDs() ([]int, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &FileError{Op: "list", Path: s.root, Err: err}
	}
	var ids []int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name, ok := strings.CutSuffix(entry.Name(), ext)
		if !ok || !isDigits(name) {
			continue
		}
		id, err := strconv.Atoi(name)
		if err != nil || id <= 0 {
			continue
		}
		// "07.txt" is not the file of id 7
		if strconv.Itoa(id) != name {
			continue
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
