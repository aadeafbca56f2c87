package logosvm

import (
	"context"
	"fmt"

	"github.com/reusee/logos/instructions"
	"github.com/reusee/logos/storages"
)

// Handler executes one instruction. Ordinary failures are reported by Effect.OK;
// a returned error aborts the whole chain.
type Handler func(ctx context.Context, inst instructions.Instruction) (Effect, error)

type Target struct {
	File int
	Line int
}

// Effect is what the engine applies after a handler returns.
type Effect struct {
	OK bool
	// Rewrite replaces the parameters of the issuing line.
	Rewrite *[2]storages.Cell
	// Clicks run before the continuation, in order.
	Clicks []Target
	Reason string
}

func success() Effect {
	return Effect{OK: true}
}

func failure(format string, args ...any) Effect {
	return Effect{
		Reason: fmt.Sprintf(format, args...),
	}
}

// done converts a store result into an effect.
func done(ok bool, err error, format string, args ...any) (Effect, error) {
	if err != nil {
		return Effect{}, err
	}
	if !ok {
		return failure(format, args...), nil
	}
	return success(), nil
}
