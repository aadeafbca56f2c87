package storages

import (
	"strings"
	"testing"

	"github.com/reusee/logos/addrs"
)

func readStrings(t *testing.T, store *Store, id int) string {
	t.Helper()
	lines, err := store.ReadLines(id)
	if err != nil {
		t.Fatal(err)
	}
	var parts []string
	for _, line := range lines {
		parts = append(parts, line.String())
	}
	return strings.Join(parts, "\n")
}

func TestBatch(t *testing.T) {
	store := New(t.TempDir(), "")
	if err := store.WriteLines(1, []Line{NewLine("a", "b")}); err != nil {
		t.Fatal(err)
	}
	if err := store.WriteLines(2, []Line{NewLine("x")}); err != nil {
		t.Fatal(err)
	}

	ok, err := store.Batch([]int{1, 2, 1}, func(files Files) bool {
		if len(files) != 2 {
			t.Fatalf("got %d files", len(files))
		}
		return files.SetCell(addrs.Cell(1, 1, 1), Empty) &&
			files.SetCell(addrs.Cell(1, 1, 2), Text("ab")) &&
			files.InsertLinesAfter(2, 1, []Line{NewLine("y")})
	})
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("should be ok")
	}
	if str := readStrings(t, store, 1); str != "null*ab*null" {
		t.Fatalf("got %s", str)
	}
	if str := readStrings(t, store, 2); str != "x*null*null\ny*null*null" {
		t.Fatalf("got %s", str)
	}
}

func TestBatchAllOrNothing(t *testing.T) {
	store := New(t.TempDir(), "")
	if err := store.WriteLines(1, []Line{NewLine("a", "b", "c")}); err != nil {
		t.Fatal(err)
	}

	// the second change is refused, so the first one is dropped too
	ok, err := store.Batch([]int{1}, func(files Files) bool {
		return files.SetCell(addrs.Cell(1, 1, 1), Empty) &&
			files.InsertLinesAfter(1, 1, []Line{NewLine("m*n")})
	})
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("should not be ok")
	}
	if str := readStrings(t, store, 1); str != "a*b*c" {
		t.Fatalf("got %s", str)
	}

	ok, err = store.Batch([]int{1}, func(files Files) bool {
		return files.SetLine(1, 2, NewLine("z"))
	})
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("should not be ok")
	}
}

func TestBatchMissingFile(t *testing.T) {
	store := New(t.TempDir(), "")
	if err := store.WriteLines(1, []Line{{}}); err != nil {
		t.Fatal(err)
	}
	called := false
	ok, err := store.Batch([]int{1, 2}, func(Files) bool {
		called = true
		return true
	})
	if err != nil {
		t.Fatal(err)
	}
	if ok || called {
		t.Fatalf("got %v %v", ok, called)
	}
}
