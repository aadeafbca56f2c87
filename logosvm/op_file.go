package logosvm

import (
	"context"
	"strconv"
	"strings"

	"github.com/reusee/logos/addrs"
	"github.com/reusee/logos/instructions"
	"github.com/reusee/logos/storages"
)

const maxBlankLines = 1 << 20

func (e *Engine) createFile(_ context.Context, inst instructions.Instruction) (Effect, error) {
	id, ok := addrs.ParseID(inst.Param1.String())
	if !ok {
		return failure("bad file id %q", inst.Param1), nil
	}
	ok, err := e.Store.CreateFile(id)
	return done(ok, err, "file %d exists", id)
}

func (e *Engine) deleteAddress(_ context.Context, inst instructions.Instruction) (Effect, error) {
	addr, ok := addrs.Parse(inst.Param1.String())
	if !ok {
		return failure("bad address %q", inst.Param1), nil
	}
	var err error
	switch addr.Level() {
	case addrs.LevelCell:
		ok, err = e.Store.SetCell(addr, storages.Empty)
	case addrs.LevelLine:
		ok, err = e.Store.DeleteLine(addr)
	default:
		ok, err = e.Store.DeleteFile(addr)
	}
	return done(ok, err, "%v not found", addr)
}

func (e *Engine) insertBlankLines(_ context.Context, inst instructions.Instruction) (Effect, error) {
	addr, ok := addrs.Parse(inst.Param1.String())
	if !ok || !addr.IsLine() {
		return failure("need line address, got %q", inst.Param1), nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(inst.Param2.String()))
	if err != nil || n <= 0 || n > maxBlankLines {
		return failure("bad line count %q", inst.Param2), nil
	}
	ok, err = e.Store.InsertLinesAfter(addr.File, addr.Line, make([]storages.Line, n))
	return done(ok, err, "%v not found", addr)
}
