package triggers

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/reusee/logos/logosvm"
	"github.com/reusee/logos/logs"
	"github.com/reusee/logos/storages"
	"golang.org/x/sync/errgroup"
)

const defaultInterval = time.Second

// Source feeds lines of the monitor file to the engine, one at a time, oldest first.
type Source struct {
	Store    *storages.Store
	Engine   *logosvm.Engine
	Logger   logs.Logger
	Monitor  string
	Interval time.Duration
	// Watch wakes the poller on monitor changes instead of waiting for the next tick.
	Watch bool
}

// Take removes the first line of the monitor file and returns it.
// ok is false when the file is missing or empty.
// The rest is written back by rename, so a line appended between the read and the rename is lost.
// Writers that may race a running trigger should append to a spool file and rename it onto the monitor when it is empty.
func (s *Source) Take() (text string, ok bool, err error) {
	content, err := os.ReadFile(s.Monitor)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, &storages.FileError{Op: "read", Path: s.Monitor, Err: err}
	}
	if len(content) == 0 {
		return "", false, nil
	}
	first, rest, _ := strings.Cut(string(content), "\n")
	if err := storages.WriteFileAtomic(s.Monitor, []byte(rest)); err != nil {
		return "", false, err
	}
	return strings.TrimSuffix(first, "\r"), true, nil
}

// Dispatch writes text to the scratch file and clicks it.
// Only store failures and cancellation are returned; everything else is logged.
func (s *Source) Dispatch(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		s.Logger.DebugContext(ctx, "skip blank monitor line")
		return nil
	}
	if err := s.Store.WriteLines(storages.Scratch, []storages.Line{
		storages.ParseLine(text),
	}); err != nil {
		return err
	}

	trace, err := s.Engine.Click(ctx, storages.Scratch, 1)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		var fileErr *storages.FileError
		if errors.As(err, &fileErr) {
			return err
		}
		s.Logger.ErrorContext(ctx, "chain aborted",
			"line", text,
			"error", err,
		)
		return nil
	}

	if trace.OK() {
		s.Logger.InfoContext(ctx, "executed",
			"line", text,
			"steps", len(trace.Steps),
			"failed", trace.Failed(),
		)
	} else {
		reason := ""
		if len(trace.Steps) > 0 {
			reason = trace.Steps[0].Reason
		}
		s.Logger.WarnContext(ctx, "instruction failed",
			"line", text,
			"reason", reason,
		)
	}
	return nil
}

// Tick takes one monitor line and executes it. ok reports whether a line was taken.
func (s *Source) Tick(ctx context.Context) (ok bool, err error) {
	text, ok, err := s.Take()
	if err != nil || !ok {
		return false, err
	}
	return true, s.Dispatch(ctx, text)
}

// Run polls the monitor until ctx is done or the store fails.
func (s *Source) Run(ctx context.Context) error {
	unlock, err := s.Store.Lock()
	if err != nil {
		return err
	}
	defer func() {
		if err := unlock(); err != nil {
			s.Logger.Error("unlock store", "error", err)
		}
	}()

	dir := filepath.Dir(s.Monitor)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &storages.FileError{Op: "mkdir", Path: dir, Err: err}
	}

	s.Logger.Info("start",
		"root", s.Store.Root(),
		"monitor", s.Monitor,
		"interval", s.interval(),
		"watch", s.Watch,
	)

	g, gctx := errgroup.WithContext(ctx)

	var wake <-chan struct{}
	if s.Watch {
		wake, err = s.watch(gctx, g)
		if err != nil {
			// polling still works
			s.Logger.Warn("watch monitor", "error", err)
		}
	}

	lines := make(chan string)
	g.Go(func() error {
		return s.poll(gctx, lines, wake)
	})
	g.Go(func() error {
		return s.execute(gctx, lines)
	})

	err = g.Wait()
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		s.Logger.Info("stop")
		return nil
	}
	return err
}

func (s *Source) interval() time.Duration {
	if s.Interval <= 0 {
		return defaultInterval
	}
	return s.Interval
}

func (s *Source) poll(ctx context.Context, out chan<- string, wake <-chan struct{}) error {
	ticker := time.NewTicker(s.interval())
	defer ticker.Stop()
	for {
		text, ok, err := s.Take()
		if err != nil {
			return err
		}
		if ok {
			select {
			case out <- text:
			case <-ctx.Done():
				s.Logger.Warn("monitor line dropped", "line", text)
				return ctx.Err()
			}
		}

		select {
		case <-ticker.C:
		case <-wake:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Source) execute(ctx context.Context, in <-chan string) error {
	for {
		select {
		case text := <-in:
			if err := s.Dispatch(ctx, text); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Source) watch(ctx context.Context, g *errgroup.Group) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// the monitor is replaced by rename, so watch its directory
	if err := watcher.Add(filepath.Dir(s.Monitor)); err != nil {
		watcher.Close()
		return nil, err
	}
	monitor := filepath.Clean(s.Monitor)

	wake := make(chan struct{}, 1)
	g.Go(func() error {
		defer watcher.Close()
		for {
			select {

			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != monitor {
					continue
				}
				if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
					continue
				}
				select {
				case wake <- struct{}{}:
				default:
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				s.Logger.Warn("watch monitor", "error", err)

			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	return wake, nil
}
