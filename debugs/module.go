package debugs

import "github.com/reusee/dscope"

// Module expects a logger, a store and an engine from the enclosing scope.
type Module struct {
	dscope.Module
}
