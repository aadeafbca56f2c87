package logosvm

import (
	"context"
	"fmt"

	"github.com/reusee/logos/instructions"
	"github.com/reusee/logos/logs"
	"github.com/reusee/logos/procs"
	"github.com/reusee/logos/storages"
	"github.com/reusee/logos/syncs"
)

const DefaultMaxDepth = 4096

type Markers struct {
	// Split heads every line inserted by SplitCell.
	Split string
	// Result is the middle cell of every line inserted by SearchRange.
	Result string
}

var DefaultMarkers = Markers{
	Split:  "分解",
	Result: "搜索结果",
}

// Engine executes instructions stored in a Store. At most one chain runs at a time.
type Engine struct {
	Store    *storages.Store
	Logger   logs.Logger
	NewSpan  logs.NewSpan
	MaxDepth int
	Markers  Markers

	handlers map[instructions.Opcode]Handler
	sem      syncs.Semaphore
}

func NewEngine(store *storages.Store, logger logs.Logger) *Engine {
	e := &Engine{
		Store:    store,
		Logger:   logger,
		MaxDepth: DefaultMaxDepth,
		Markers:  DefaultMarkers,
		sem:      syncs.NewSemaphore(1),
	}
	e.handlers = map[instructions.Opcode]Handler{
		instructions.CreateFile:        e.createFile,
		instructions.DeleteAddress:     e.deleteAddress,
		instructions.CopyCell:          e.copyCell,
		instructions.MergeCells:        e.mergeCells,
		instructions.SplitCell:         e.splitCell,
		instructions.AddressArithmetic: e.addressArithmetic,
		instructions.DetectAssert:      e.detectAssert,
		instructions.SearchRange:       e.searchRange,
		instructions.InsertBlankLines:  e.insertBlankLines,
		instructions.ClickAddress:      e.clickAddress,
	}
	return e
}

type run struct {
	ctx   context.Context
	trace *Trace
	steps int
	root  Target
}

type click struct {
	engine *Engine
	target Target
}

var _ procs.Proc[*run] = click{}

func (c click) Run(r *run) (procs.Proc[*run], error) {
	return c.engine.step(r, c.target)
}

// Click executes the instruction at file/line and everything it chains to.
// The returned error is fatal: the depth limit, a store failure or ctx cancellation.
func (e *Engine) Click(ctx context.Context, file, line int) (trace Trace, err error) {
	if err := e.sem.AcquireContext(ctx); err != nil {
		return trace, err
	}
	defer e.sem.Release()

	if e.NewSpan != nil {
		ctx, _ = e.NewSpan(ctx, "", "file", file, "line", line)
	}
	root := Target{File: file, Line: line}
	r := &run{
		ctx:   ctx,
		trace: &trace,
		root:  root,
	}
	if err := procs.Drive[*run](r, click{engine: e, target: root}); err != nil {
		return trace, logs.WrapSpan(ctx, err)
	}
	return trace, nil
}

func (e *Engine) step(r *run, target Target) (procs.Proc[*run], error) {
	if err := r.ctx.Err(); err != nil {
		return nil, err
	}
	r.steps++
	if r.steps > e.MaxDepth {
		return nil, fmt.Errorf("%w: limit %d, chain from %d-%d",
			ErrMaxDepth, e.MaxDepth, r.root.File, r.root.Line)
	}

	stored, ok, err := e.Store.GetLine(target.File, target.Line)
	if err != nil {
		return nil, err
	}
	if !ok {
		e.record(r, Step{
			File:   target.File,
			Line:   target.Line,
			Reason: "no such line",
		})
		return nil, nil
	}

	inst := instructions.Parse(stored, target.File, target.Line)
	handler, ok := e.handlers[inst.Opcode]
	if !inst.Known || !ok {
		e.record(r, Step{
			File:   target.File,
			Line:   target.Line,
			Opcode: inst.Opcode,
			Reason: "unknown opcode",
		})
		return nil, nil
	}

	effect, err := handler(r.ctx, inst)
	if err != nil {
		return nil, fmt.Errorf("%s at %d-%d: %w", inst.Opcode, target.File, target.Line, err)
	}

	if effect.OK && effect.Rewrite != nil {
		rewritten := inst.WithParams(effect.Rewrite[0], effect.Rewrite[1])
		ok, err := e.Store.SetLine(target.File, target.Line, rewritten.Line())
		if err != nil {
			return nil, err
		}
		if !ok {
			effect = failure("issuing line is gone")
		}
	}

	e.record(r, Step{
		File:   target.File,
		Line:   target.Line,
		Opcode: inst.Opcode,
		OK:     effect.OK,
		Reason: effect.Reason,
	})
	if !effect.OK {
		return nil, nil
	}

	var next procs.Procs[*run]
	for _, t := range effect.Clicks {
		next = append(next, click{engine: e, target: t})
	}
	if inst.Continuation {
		file, line := inst.Next()
		next = append(next, click{engine: e, target: Target{File: file, Line: line}})
	}
	if len(next) == 0 {
		return nil, nil
	}
	return next, nil
}

func (e *Engine) record(r *run, step Step) {
	r.trace.Steps = append(r.trace.Steps, step)
	if e.Logger == nil {
		return
	}
	args := []any{
		"file", step.File,
		"line", step.Line,
		"opcode", step.Opcode,
		"ok", step.OK,
	}
	if step.Reason != "" {
		args = append(args, "reason", step.Reason)
	}
	e.Logger.DebugContext(r.ctx, "step", args...)
}
