package logosvm

import (
	"context"

	"github.com/reusee/logos/addrs"
	"github.com/reusee/logos/instructions"
	"github.com/reusee/logos/storages"
)

// addressArithmetic rewrites its own first parameter to the adjusted address.
// The modifier in the second parameter is kept so the line can run again.
func (e *Engine) addressArithmetic(_ context.Context, inst instructions.Instruction) (Effect, error) {
	src, ok := cellParam(inst.Param1)
	if !ok {
		return failure("need cell address, got %q", inst.Param1), nil
	}
	mod, ok := addrs.ParseModifier(inst.Param2.String())
	if !ok {
		return failure("bad modifier %q", inst.Param2), nil
	}
	addr, ok := mod.Apply(src)
	if !ok {
		return failure("%v %v leaves the address space", src, mod), nil
	}
	return Effect{
		OK:      true,
		Rewrite: &[2]storages.Cell{storages.Text(addr.String()), inst.Param2},
	}, nil
}
