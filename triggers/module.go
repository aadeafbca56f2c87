package triggers

import (
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/logos/logosconfigs"
	"github.com/reusee/logos/logosvm"
	"github.com/reusee/logos/logs"
	"github.com/reusee/logos/storages"
)

type Module struct {
	dscope.Module
	VM logosvm.Module
}

func (Module) Source(
	store *storages.Store,
	engine *logosvm.Engine,
	logger logs.Logger,
	monitor logosconfigs.MonitorPath,
	interval logosconfigs.PollInterval,
	watch logosconfigs.Watch,
) *Source {
	return &Source{
		Store:    store,
		Engine:   engine,
		Logger:   logger,
		Monitor:  string(monitor),
		Interval: time.Duration(interval),
		Watch:    bool(watch),
	}
}
