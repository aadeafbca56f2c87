package debugs

import (
	"context"
	"fmt"

	"github.com/reusee/logos/addrs"
	"github.com/reusee/logos/logosvm"
	"github.com/reusee/logos/storages"
	"go.starlark.net/starlark"
)

// StoreGlobals exposes a store and its engine to starlark:
//
//	get(addr)            cell value, encoded line or list of encoded lines
//	set(addr, value)     set a cell, None empties it
//	lines(id)            encoded lines of a file
//	files()              ids of numbered files
//	click(file, line)    run a chain and return its trace
func StoreGlobals(
	ctx context.Context,
	store *storages.Store,
	engine *logosvm.Engine,
) map[string]any {

	get := starlark.NewBuiltin("get", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var text string
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &text); err != nil {
			return nil, err
		}
		addr, ok := addrs.Parse(text)
		if !ok {
			return nil, fmt.Errorf("bad address: %s", text)
		}
		switch addr.Level() {
		case addrs.LevelCell:
			cell, ok, err := store.GetCell(addr)
			if err != nil {
				return nil, err
			}
			if !ok || cell.IsEmpty() {
				return starlark.None, nil
			}
			return starlark.String(cell.String()), nil
		case addrs.LevelLine:
			line, ok, err := store.GetLine(addr.File, addr.Line)
			if err != nil {
				return nil, err
			}
			if !ok {
				return starlark.None, nil
			}
			return starlark.String(line.String()), nil
		}
		return encodedLines(store, addr.File)
	})

	set := starlark.NewBuiltin("set", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var text string
		var value starlark.Value
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &text, "value", &value); err != nil {
			return nil, err
		}
		addr, ok := addrs.Parse(text)
		if !ok || !addr.IsCell() {
			return nil, fmt.Errorf("need cell address: %s", text)
		}
		cell := storages.Empty
		switch value := value.(type) {
		case starlark.NoneType:
		case starlark.String:
			cell = storages.Text(string(value))
		default:
			cell = storages.Text(value.String())
		}
		ok, err := store.SetCell(addr, cell)
		if err != nil {
			return nil, err
		}
		return starlark.Bool(ok), nil
	})

	lines := starlark.NewBuiltin("lines", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var id int
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "id", &id); err != nil {
			return nil, err
		}
		return encodedLines(store, id)
	})

	files := starlark.NewBuiltin("files", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
			return nil, err
		}
		ids, err := store.FileIDs()
		if err != nil {
			return nil, err
		}
		return toStarlarkValue(ids), nil
	})

	click := starlark.NewBuiltin("click", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var file, line int
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "file", &file, "line", &line); err != nil {
			return nil, err
		}
		trace, err := engine.Click(ctx, file, line)
		if err != nil {
			return nil, err
		}
		return toStarlarkValue(trace), nil
	})

	return map[string]any{
		"get":   get,
		"set":   set,
		"lines": lines,
		"files": files,
		"click": click,
	}
}

func encodedLines(store *storages.Store, id int) (starlark.Value, error) {
	lines, err := store.ReadLines(id)
	if err != nil {
		return nil, err
	}
	elems := make([]starlark.Value, 0, len(lines))
	for _, line := range lines {
		elems = append(elems, starlark.String(line.String()))
	}
	return starlark.NewList(elems), nil
}

// StoreTap opens a tap session over the store, holding the store lock until it ends.
type StoreTap func(ctx context.Context) error

func (Module) StoreTap(
	tap Tap,
	store *storages.Store,
	engine *logosvm.Engine,
) StoreTap {
	return func(ctx context.Context) (err error) {
		unlock, err := store.Lock()
		if err != nil {
			return err
		}
		defer func() {
			if e := unlock(); e != nil && err == nil {
				err = e
			}
		}()
		tap(ctx, store.Root(), StoreGlobals(ctx, store, engine))
		return nil
	}
}
