package logosvm

import (
	"context"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/reusee/logos/addrs"
	"github.com/reusee/logos/instructions"
	"github.com/reusee/logos/storages"
)

// parseSearchTarget parses "start-end#out".
func parseSearchTarget(s string) (start, end int, out addrs.Address, ok bool) {
	rangePart, outPart, found := strings.Cut(s, "#")
	if !found {
		return
	}
	parts := strings.Split(rangePart, addrs.Sep)
	if len(parts) != 2 {
		return
	}
	if start, ok = parseBound(parts[0]); !ok {
		return
	}
	if end, ok = parseBound(parts[1]); !ok {
		return
	}
	out, ok = addrs.Parse(outPart)
	if !ok || !out.IsLine() {
		return 0, 0, addrs.Address{}, false
	}
	return start, end, out, true
}

func parseBound(s string) (int, bool) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	ret, err := safecast.Conv[int](n)
	return ret, err == nil
}

func (e *Engine) searchRange(_ context.Context, inst instructions.Instruction) (Effect, error) {
	literal := inst.Param1
	start, end, out, ok := parseSearchTarget(inst.Param2.String())
	if !ok {
		return failure("bad search target %q", inst.Param2), nil
	}
	if _, ok, err := e.Store.GetLine(out.File, out.Line); err != nil {
		return Effect{}, err
	} else if !ok {
		return failure("output %v not found", out), nil
	}

	ids, err := e.Store.FileIDs()
	if err != nil {
		return Effect{}, err
	}
	marker := storages.Text(e.Markers.Result)
	if !marker.Storable() {
		return failure("result marker %q cannot be stored", e.Markers.Result), nil
	}
	var results []storages.Line
	for _, id := range ids {
		if id < start || id > end {
			continue
		}
		lines, err := e.Store.ReadLines(id)
		if err != nil {
			return Effect{}, err
		}
		for i, line := range lines {
			for j, cell := range line {
				if cell != literal {
					continue
				}
				results = append(results, storages.Line{
					literal,
					marker,
					storages.Text(addrs.Cell(id, i+1, j+1).String()),
				})
			}
		}
	}

	ok, err = e.Store.InsertLinesAfter(out.File, out.Line, results)
	return done(ok, err, "output %v not found", out)
}
