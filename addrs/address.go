package addrs

import (
	"strconv"
	"strings"
)

// Sep separates address segments.
const Sep = "-"

const MaxCell = 3

type Level int

const (
	LevelInvalid Level = iota
	LevelFile
	LevelLine
	LevelCell
)

func (l Level) String() string {
	switch l {
	case LevelFile:
		return "file"
	case LevelLine:
		return "line"
	case LevelCell:
		return "cell"
	}
	return "invalid"
}

// Address refers to a file, a line of a file, or a cell of a line.
// Zero Line or Cell means the segment is absent.
type Address struct {
	File int
	Line int
	Cell int
}

func File(file int) Address {
	return Address{File: file}
}

func Line(file, line int) Address {
	return Address{File: file, Line: line}
}

func Cell(file, line, cell int) Address {
	return Address{File: file, Line: line, Cell: cell}
}

func (a Address) Level() Level {
	switch {
	case a.File <= 0:
		return LevelInvalid
	case a.Line == 0 && a.Cell == 0:
		return LevelFile
	case a.Line <= 0:
		return LevelInvalid
	case a.Cell == 0:
		return LevelLine
	case a.Cell >= 1 && a.Cell <= MaxCell:
		return LevelCell
	}
	return LevelInvalid
}

func (a Address) IsCell() bool {
	return a.Level() == LevelCell
}

func (a Address) IsLine() bool {
	return a.Level() == LevelLine
}

// LineOf drops the cell segment.
func (a Address) LineOf() Address {
	return Address{File: a.File, Line: a.Line}
}

func (a Address) String() string {
	switch a.Level() {
	case LevelFile:
		return strconv.Itoa(a.File)
	case LevelLine:
		return strconv.Itoa(a.File) + Sep + strconv.Itoa(a.Line)
	case LevelCell:
		return strconv.Itoa(a.File) + Sep + strconv.Itoa(a.Line) + Sep + strconv.Itoa(a.Cell)
	}
	return "<invalid>"
}

// Parse parses "file", "file-line" or "file-line-cell".
func Parse(text string) (ret Address, ok bool) {
	parts := strings.Split(text, Sep)
	if len(parts) > 3 {
		return
	}
	nums := make([]int, len(parts))
	for i, part := range parts {
		n, ok := parseNatural(part)
		if !ok {
			return ret, false
		}
		nums[i] = n
	}
	ret.File = nums[0]
	if len(nums) > 1 {
		ret.Line = nums[1]
	}
	if len(nums) > 2 {
		ret.Cell = nums[2]
	}
	if ret.Level() == LevelInvalid {
		return Address{}, false
	}
	return ret, true
}

// parseNatural accepts a positive decimal integer without sign.
func parseNatural(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// ParseID parses a positive file id.
func ParseID(s string) (int, bool) {
	return parseNatural(strings.TrimSpace(s))
}
