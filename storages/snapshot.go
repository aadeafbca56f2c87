package storages

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"go.yaml.in/yaml/v3"
)

// Snapshot holds the encoded lines of every numbered file.
type Snapshot struct {
	Files map[int][]string `msgpack:"files" yaml:"files"`
}

// Format is a snapshot encoding.
type Format string

const (
	FormatMsgpack Format = "msgpack"
	FormatYAML    Format = "yaml"
)

// FormatOf picks the format by file extension. msgpack is the default.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatMsgpack
}

func (s *Store) Snapshot() (*Snapshot, error) {
	ids, err := s.FileIDs()
	if err != nil {
		return nil, err
	}
	snapshot := &Snapshot{
		Files: make(map[int][]string, len(ids)),
	}
	for _, id := range ids {
		lines, err := s.ReadLines(id)
		if err != nil {
			return nil, err
		}
		texts := make([]string, 0, len(lines))
		for _, line := range lines {
			texts = append(texts, line.String())
		}
		snapshot.Files[id] = texts
	}
	return snapshot, nil
}

func (s *Store) Dump(w io.Writer, format Format) error {
	snapshot, err := s.Snapshot()
	if err != nil {
		return err
	}
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(snapshot); err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}
		return enc.Close()
	case FormatMsgpack:
		if err := msgpack.NewEncoder(w).Encode(snapshot); err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown snapshot format: %s", format)
}

// Load writes every file of a snapshot into the store and returns how many were written.
// Files not in the snapshot are left alone.
func (s *Store) Load(r io.Reader, format Format) (int, error) {
	var snapshot Snapshot
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&snapshot); err != nil {
			return 0, fmt.Errorf("decode snapshot: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.NewDecoder(r).Decode(&snapshot); err != nil {
			return 0, fmt.Errorf("decode snapshot: %w", err)
		}
	default:
		return 0, fmt.Errorf("unknown snapshot format: %s", format)
	}

	ids := make([]int, 0, len(snapshot.Files))
	for id := range snapshot.Files {
		if id <= 0 {
			return 0, fmt.Errorf("bad file id in snapshot: %d", id)
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for i, id := range ids {
		texts := snapshot.Files[id]
		lines := make([]Line, 0, len(texts))
		for _, text := range texts {
			lines = append(lines, ParseLine(text))
		}
		if err := s.WriteLines(id, lines); err != nil {
			return i, err
		}
	}
	return len(ids), nil
}
