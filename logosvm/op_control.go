package logosvm

import (
	"context"

	"github.com/reusee/logos/instructions"
	"github.com/reusee/logos/storages"
)

// detectAssert clicks the next line when the cell holds the literal.
func (e *Engine) detectAssert(_ context.Context, inst instructions.Instruction) (Effect, error) {
	addr, ok := cellParam(inst.Param1)
	if !ok {
		return failure("need cell address, got %q", inst.Param1), nil
	}
	value, ok, err := e.Store.GetCell(addr)
	if err != nil {
		return Effect{}, err
	}
	if !ok {
		value = storages.Empty
	}
	if value != inst.Param2 {
		return failure("%v is %q, want %q", addr, value.Encode(), inst.Param2.Encode()), nil
	}
	file, line := inst.Next()
	return Effect{
		OK: true,
		Clicks: []Target{
			{File: file, Line: line},
		},
	}, nil
}

func (e *Engine) clickAddress(_ context.Context, inst instructions.Instruction) (Effect, error) {
	addr, ok := lineParam(inst.Param1)
	if !ok {
		return failure("need line address, got %q", inst.Param1), nil
	}
	if _, ok, err := e.Store.GetLine(addr.File, addr.Line); err != nil {
		return Effect{}, err
	} else if !ok {
		return failure("%v not found", addr), nil
	}
	return Effect{
		OK: true,
		Clicks: []Target{
			{File: addr.File, Line: addr.Line},
		},
	}, nil
}
