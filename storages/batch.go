package storages

import (
	"slices"

	"github.com/reusee/logos/addrs"
)

// Files holds the lines of the files taken by one Batch, by id.
type Files map[int][]Line

func (f Files) SetCell(addr addrs.Address, value Cell) bool {
	lines, ok := f[addr.File]
	if !ok || !value.Storable() || !validCell(addr, len(lines)) {
		return false
	}
	lines[addr.Line-1][addr.Cell-1] = value
	return true
}

func (f Files) SetLine(id, line int, value Line) bool {
	lines, ok := f[id]
	if !ok || !value.Storable() || line < 1 || line > len(lines) {
		return false
	}
	lines[line-1] = value
	return true
}

func (f Files) InsertLinesAfter(id, line int, newLines []Line) bool {
	lines, ok := f[id]
	if !ok || line < 0 || line > len(lines) {
		return false
	}
	for _, l := range newLines {
		if !l.Storable() {
			return false
		}
	}
	f[id] = slices.Insert(lines, line, newLines...)
	return true
}

// Batch reads each listed file once and passes them to fn.
// If fn reports ok, every file is written back once, in listing order; otherwise nothing is written.
// A missing file is not ok.
func (s *Store) Batch(ids []int, fn func(Files) bool) (bool, error) {
	files := make(Files, len(ids))
	var order []int
	for _, id := range ids {
		if _, ok := files[id]; ok {
			continue
		}
		if !s.Exists(id) {
			return false, nil
		}
		lines, err := s.ReadLines(id)
		if err != nil {
			return false, err
		}
		files[id] = lines
		order = append(order, id)
	}
	if !fn(files) {
		return false, nil
	}
	for _, id := range order {
		if err := s.WriteLines(id, files[id]); err != nil {
			return false, err
		}
	}
	return true, nil
}
