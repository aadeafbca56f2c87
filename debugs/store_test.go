package debugs

import (
	"errors"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/logos/logosconfigs"
	"github.com/reusee/logos/logosvm"
	"github.com/reusee/logos/modes"
	"github.com/reusee/logos/storages"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

func TestStoreGlobals(t *testing.T) {
	store := storages.New(t.TempDir(), "")
	if err := store.WriteLines(1, []storages.Line{
		storages.ParseLine("CreateFile*2"),
		storages.ParseLine("a*b*c"),
	}); err != nil {
		t.Fatal(err)
	}
	engine := logosvm.NewEngine(store, nil)

	predeclared := make(starlark.StringDict)
	for name, value := range StoreGlobals(t.Context(), store, engine) {
		predeclared[name] = toStarlarkValue(value)
	}
	thread := &starlark.Thread{
		Name: "test",
	}
	globals, err := starlark.ExecFileOptions(&syntax.FileOptions{}, thread, "test.star", `
cell = get("1-2-2")
line = get("1-2")
all = get("1")
missing = get("1-9-1")
set_ok = set("1-2-3", "z")
set_missing = set("1-9-1", "z")
set("1-2-1", None)
after = lines(1)
trace = click(1, 1)
ids = files()
`, predeclared)
	if err != nil {
		t.Fatal(err)
	}

	expect := func(name string, want starlark.Value) {
		t.Helper()
		got := globals[name]
		equal, err := starlark.Equal(got, want)
		if err != nil {
			t.Fatal(err)
		}
		if !equal {
			t.Fatalf("%s: got %v, want %v", name, got, want)
		}
	}
	expect("cell", starlark.String("b"))
	expect("line", starlark.String("a*b*c"))
	expect("all", starlark.NewList([]starlark.Value{
		starlark.String("CreateFile*2*null"),
		starlark.String("a*b*c"),
	}))
	expect("missing", starlark.None)
	expect("set_ok", starlark.True)
	expect("set_missing", starlark.False)
	expect("after", starlark.NewList([]starlark.Value{
		starlark.String("CreateFile*2*null"),
		starlark.String("null*b*z"),
	}))
	expect("ids", starlark.NewList([]starlark.Value{
		starlark.MakeInt(1),
		starlark.MakeInt(2),
	}))

	trace, ok := globals["trace"].(*starlark.Dict)
	if !ok {
		t.Fatalf("got %T", globals["trace"])
	}
	steps, found, err := trace.Get(starlark.String("Steps"))
	if err != nil || !found {
		t.Fatalf("got %v %v", found, err)
	}
	if steps.(*starlark.List).Len() != 1 {
		t.Fatalf("got %v", steps)
	}
	if !store.Exists(2) {
		t.Fatal("click should run")
	}
}

func TestStoreGlobalsBadAddress(t *testing.T) {
	store := storages.New(t.TempDir(), "")
	predeclared := make(starlark.StringDict)
	for name, value := range StoreGlobals(t.Context(), store, logosvm.NewEngine(store, nil)) {
		predeclared[name] = toStarlarkValue(value)
	}
	thread := &starlark.Thread{
		Name: "test",
	}
	for _, src := range []string{
		`get("x")`,
		`set("1-1", "v")`,
		`lines("a")`,
	} {
		if _, err := starlark.ExecFileOptions(&syntax.FileOptions{}, thread, "test.star", src, predeclared); err == nil {
			t.Fatalf("%s: should fail", src)
		}
	}
}

func TestStoreTap(t *testing.T) {
	dir := t.TempDir()
	dscope.New(
		new(Module),
		new(logosvm.Module),
		modes.ForTest(t),
	).Fork(
		func() logosconfigs.RootDir {
			return logosconfigs.RootDir(dir)
		},
	).Call(func(
		tap StoreTap,
		store *storages.Store,
	) {
		if err := tap(t.Context()); err != nil {
			t.Fatal(err)
		}

		// released on return
		unlock, err := store.Lock()
		if err != nil {
			t.Fatal(err)
		}
		if err := tap(t.Context()); !errors.Is(err, storages.ErrLocked) {
			t.Fatalf("got %v", err)
		}
		if err := unlock(); err != nil {
			t.Fatal(err)
		}
	})
}
