package logosconfigs

import (
	"path/filepath"
	"time"

	"github.com/reusee/logos/cmds"
	"github.com/reusee/logos/configs"
	"github.com/reusee/logos/vars"
)

// RootDir holds the numbered store files.
type RootDir string

var rootFlag = cmds.Var[string]("-root", "directory of the numbered files")

func (Module) RootDir(
	loader configs.Loader,
) RootDir {
	root := vars.FirstNonZero(
		*rootFlag,
		configs.First[string](loader, "root"),
		".",
	)
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return RootDir(root)
}

// MonitorPath is the file polled for top-level instructions.
type MonitorPath string

var monitorFlag = cmds.Var[string]("-monitor", "monitor file, relative to the root")

func (Module) MonitorPath(
	loader configs.Loader,
	root RootDir,
) MonitorPath {
	monitor := vars.FirstNonZero(
		*monitorFlag,
		configs.First[string](loader, "monitor"),
		"monitor.txt",
	)
	if !filepath.IsAbs(monitor) {
		monitor = filepath.Join(string(root), monitor)
	}
	return MonitorPath(monitor)
}

type PollInterval time.Duration

var intervalFlag = cmds.Var[time.Duration]("-interval", "poll interval, bare numbers are milliseconds")

func (Module) PollInterval(
	loader configs.Loader,
) PollInterval {
	if *intervalFlag > 0 {
		return PollInterval(*intervalFlag)
	}
	ms := configs.FirstOr(loader, "interval_ms", 1000)
	return PollInterval(time.Duration(ms) * time.Millisecond)
}

// MaxDepth bounds the number of steps one chain may execute.
type MaxDepth int

var maxDepthFlag = cmds.Var[int]("-max-depth", "step limit of one chain")

func (Module) MaxDepth(
	loader configs.Loader,
) MaxDepth {
	return MaxDepth(vars.FirstNonZero(
		max(*maxDepthFlag, 0),
		configs.First[int](loader, "max_depth"),
		4096,
	))
}

// ScratchName is the file name, relative to the root, that holds the instruction being triggered.
type ScratchName string

func (Module) ScratchName(
	loader configs.Loader,
) ScratchName {
	return ScratchName(configs.FirstOr(loader, "scratch", "temp_line.txt"))
}

// SplitMarker heads lines produced by SplitCell.
type SplitMarker string

func (Module) SplitMarker(
	loader configs.Loader,
) SplitMarker {
	return SplitMarker(configs.FirstOr(loader, "split_marker", "分解"))
}

// ResultMarker is the middle cell of lines produced by SearchRange.
type ResultMarker string

func (Module) ResultMarker(
	loader configs.Loader,
) ResultMarker {
	return ResultMarker(configs.FirstOr(loader, "result_marker", "搜索结果"))
}

// Watch enables file system notifications on the monitor file in addition to polling.
type Watch bool

var watchFlag = cmds.Switch("-watch", "wake on monitor changes")

func (Module) Watch(
	loader configs.Loader,
) Watch {
	return Watch(*watchFlag || configs.First[bool](loader, "watch"))
}
