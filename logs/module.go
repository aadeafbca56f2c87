package logs

import (
	"io"
	"os"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Writer receives text logs when not running as a systemd service.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
