package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/reusee/dscope"
	"github.com/reusee/logos/cmds"
	"github.com/reusee/logos/debugs"
	"github.com/reusee/logos/logosvm"
	"github.com/reusee/logos/logs"
	"github.com/reusee/logos/modes"
	"github.com/reusee/logos/storages"
	"github.com/reusee/logos/triggers"
)

type action func(ctx context.Context, scope dscope.Scope) error

var run action = serve

func init() {
	cmds.Define("click", cmds.Func(func(file int, line int) {
		run = func(ctx context.Context, scope dscope.Scope) error {
			return clickOnce(ctx, scope, file, line)
		}
	}).Desc("execute the instruction at <file> <line> and exit"))

	cmds.Define("dump", cmds.Func(func(path string) {
		run = func(ctx context.Context, scope dscope.Scope) error {
			return dump(scope, path)
		}
	}).Desc("write a snapshot of the store to <path>, yaml for .yaml and .yml, msgpack otherwise"))

	cmds.Define("load", cmds.Func(func(path string) {
		run = func(ctx context.Context, scope dscope.Scope) error {
			return load(scope, path)
		}
	}).Desc("restore a snapshot from <path> into the store"))

	cmds.Define("tap", cmds.Func(func() {
		run = func(ctx context.Context, scope dscope.Scope) (err error) {
			scope.Call(func(tap debugs.StoreTap) {
				err = tap(ctx)
			})
			return
		}
	}).Desc("open a starlark session over the store"))
}

func main() {
	cmds.Execute(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scope := dscope.New(
		new(triggers.Module),
		new(debugs.Module),
		modes.ForProduction(),
	)

	if err := run(ctx, scope); err != nil {
		scope.Call(func(logger logs.Logger) {
			logger.Error("exit", "error", err)
		})
		stop()
		os.Exit(1)
	}
}

func serve(ctx context.Context, scope dscope.Scope) (err error) {
	scope.Call(func(source *triggers.Source) {
		err = source.Run(ctx)
	})
	return
}

func clickOnce(ctx context.Context, scope dscope.Scope, file, line int) (err error) {
	scope.Call(func(
		store *storages.Store,
		engine *logosvm.Engine,
	) {
		var unlock func() error
		unlock, err = store.Lock()
		if err != nil {
			return
		}
		defer unlock()

		var trace logosvm.Trace
		trace, err = engine.Click(ctx, file, line)
		for _, step := range trace.Steps {
			status := "ok"
			if !step.OK {
				status = "failed: " + step.Reason
			}
			fmt.Printf("%d-%d\t%s\t%s\n", step.File, step.Line, step.Opcode, status)
		}
	})
	return
}

func dump(scope dscope.Scope, path string) (err error) {
	scope.Call(func(store *storages.Store) {
		var f *os.File
		f, err = os.Create(path)
		if err != nil {
			return
		}
		defer func() {
			if e := f.Close(); e != nil && err == nil {
				err = e
			}
		}()
		err = store.Dump(f, storages.FormatOf(path))
	})
	return
}

func load(scope dscope.Scope, path string) (err error) {
	scope.Call(func(
		store *storages.Store,
		logger logs.Logger,
	) {
		var f *os.File
		f, err = os.Open(path)
		if err != nil {
			return
		}
		defer f.Close()

		var unlock func() error
		unlock, err = store.Lock()
		if err != nil {
			return
		}
		defer unlock()

		var n int
		n, err = store.Load(f, storages.FormatOf(path))
		if err != nil {
			return
		}
		logger.Info("loaded", "files", n, "root", store.Root())
	})
	return
}
