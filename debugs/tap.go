package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/logos/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens an interactive starlark session on stdin with globals predeclared.
// It returns when stdin is closed.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap",
			"what", what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end",
				"what", what,
			)
		}()

		mappings := make(starlark.StringDict)
		for name, value := range globals {
			mappings[name] = toStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: "tap: " + what,
			Print: func(_ *starlark.Thread, msg string) {
				logger.InfoContext(ctx, msg, "tap", what)
			},
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}
