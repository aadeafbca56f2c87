package logosvm

import (
	"context"
	"strconv"

	"github.com/reusee/logos/addrs"
	"github.com/reusee/logos/instructions"
	"github.com/reusee/logos/storages"
)

func cellParam(cell storages.Cell) (addrs.Address, bool) {
	addr, ok := addrs.Parse(cell.String())
	return addr, ok && addr.IsCell()
}

func lineParam(cell storages.Cell) (addrs.Address, bool) {
	addr, ok := addrs.Parse(cell.String())
	return addr, ok && addr.IsLine()
}

func (e *Engine) copyCell(_ context.Context, inst instructions.Instruction) (Effect, error) {
	src, ok1 := cellParam(inst.Param1)
	dst, ok2 := cellParam(inst.Param2)
	if !ok1 || !ok2 {
		return failure("need cell addresses, got %q %q", inst.Param1, inst.Param2), nil
	}
	value, ok, err := e.Store.GetCell(src)
	if err != nil {
		return Effect{}, err
	}
	if !ok {
		return failure("%v not found", src), nil
	}
	ok, err = e.Store.SetCell(dst, value)
	return done(ok, err, "%v not found", dst)
}

func (e *Engine) mergeCells(_ context.Context, inst instructions.Instruction) (Effect, error) {
	a, ok1 := cellParam(inst.Param1)
	b, ok2 := cellParam(inst.Param2)
	if !ok1 || !ok2 {
		return failure("need cell addresses, got %q %q", inst.Param1, inst.Param2), nil
	}
	va, ok, err := e.Store.GetCell(a)
	if err != nil {
		return Effect{}, err
	}
	if !ok {
		return failure("%v not found", a), nil
	}
	vb, ok, err := e.Store.GetCell(b)
	if err != nil {
		return Effect{}, err
	}
	if !ok {
		return failure("%v not found", b), nil
	}
	result := storages.Concat(va, vb)
	if !result.Storable() {
		return failure("merged value %q cannot be stored", result), nil
	}
	// sources and the issuing line may share files
	rewritten := inst.WithParams(result, storages.Empty).Line()
	ok, err = e.Store.Batch(
		[]int{a.File, b.File, inst.SourceFile},
		func(files storages.Files) bool {
			return files.SetCell(a, storages.Empty) &&
				files.SetCell(b, storages.Empty) &&
				files.SetLine(inst.SourceFile, inst.SourceLine, rewritten)
		},
	)
	return done(ok, err, "issuing line %d-%d is gone", inst.SourceFile, inst.SourceLine)
}

func (e *Engine) splitCell(_ context.Context, inst instructions.Instruction) (Effect, error) {
	src, ok := cellParam(inst.Param1)
	if !ok {
		return failure("need cell address, got %q", inst.Param1), nil
	}
	out, ok := lineParam(inst.Param2)
	if !ok {
		return failure("need line address, got %q", inst.Param2), nil
	}
	value, ok, err := e.Store.GetCell(src)
	if err != nil {
		return Effect{}, err
	}
	if !ok {
		return failure("%v not found", src), nil
	}
	if _, ok, err := e.Store.GetLine(out.File, out.Line); err != nil {
		return Effect{}, err
	} else if !ok {
		return failure("output %v not found", out), nil
	}

	marker := storages.Text(e.Markers.Split)
	if !marker.Storable() {
		return failure("split marker %q cannot be stored", e.Markers.Split), nil
	}
	var lines []storages.Line
	i := 0
	for _, r := range value.String() {
		i++
		lines = append(lines, storages.Line{
			marker,
			storages.Text(string(r)),
			storages.Text(strconv.Itoa(i)),
		})
	}

	ok, err = e.Store.Batch(
		[]int{src.File, out.File},
		func(files storages.Files) bool {
			return files.SetCell(src, storages.Empty) &&
				files.InsertLinesAfter(out.File, out.Line, lines)
		},
	)
	return done(ok, err, "output %v not found", out)
}
