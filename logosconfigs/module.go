package logosconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/logos/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
