package logosvm

import (
	"github.com/reusee/dscope"
	"github.com/reusee/logos/logosconfigs"
	"github.com/reusee/logos/logs"
	"github.com/reusee/logos/storages"
)

type Module struct {
	dscope.Module
	Configs logosconfigs.Module
}

func (Module) Store(
	root logosconfigs.RootDir,
	scratch logosconfigs.ScratchName,
) *storages.Store {
	return storages.New(string(root), string(scratch))
}

func (Module) Engine(
	store *storages.Store,
	logger logs.Logger,
	newSpan logs.NewSpan,
	maxDepth logosconfigs.MaxDepth,
	split logosconfigs.SplitMarker,
	result logosconfigs.ResultMarker,
) *Engine {
	engine := NewEngine(store, logger)
	engine.NewSpan = newSpan
	engine.MaxDepth = int(maxDepth)
	engine.Markers = Markers{
		Split:  string(split),
		Result: string(result),
	}
	return engine
}
