package addrs

import (
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// Adjust changes one address segment.
// "#n" sets the segment to n; "_n" subtracts n; "+n" and "n" add n.
type Adjust struct {
	Absolute bool
	Value    int64
}

func ParseAdjust(s string) (ret Adjust, ok bool) {
	if s == "" {
		return
	}
	var digits string
	switch s[0] {
	case '#':
		ret.Absolute = true
		digits = s[1:]
	case '_':
		digits = s[1:]
	case '+':
		digits = s[1:]
	default:
		digits = s
	}
	if digits == "" {
		return ret, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return ret, false
		}
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return ret, false
	}
	if s[0] == '_' {
		n = -n
	}
	ret.Value = n
	return ret, true
}

func (a Adjust) apply(orig int) (int, bool) {
	if a.Absolute {
		n, err := safecast.Conv[int](a.Value)
		return n, err == nil
	}
	base := int64(orig)
	if (a.Value > 0 && base > (1<<63-1)-a.Value) ||
		(a.Value < 0 && base < (-1<<63)-a.Value) {
		return 0, false
	}
	n, err := safecast.Conv[int](base + a.Value)
	return n, err == nil
}

func (a Adjust) String() string {
	switch {
	case a.Absolute:
		return "#" + strconv.FormatInt(a.Value, 10)
	case a.Value < 0:
		return "_" + strconv.FormatInt(-a.Value, 10)
	}
	return "+" + strconv.FormatInt(a.Value, 10)
}

// Modifier adjusts the file, line and cell of a cell address.
type Modifier [3]Adjust

func ParseModifier(text string) (ret Modifier, ok bool) {
	parts := strings.Split(text, Sep)
	if len(parts) != 3 {
		return
	}
	for i, part := range parts {
		adj, ok := ParseAdjust(part)
		if !ok {
			return ret, false
		}
		ret[i] = adj
	}
	return ret, true
}

// Apply returns the adjusted address. The result must be a valid cell address.
func (m Modifier) Apply(addr Address) (ret Address, ok bool) {
	if ret.File, ok = m[0].apply(addr.File); !ok {
		return
	}
	if ret.Line, ok = m[1].apply(addr.Line); !ok {
		return
	}
	if ret.Cell, ok = m[2].apply(addr.Cell); !ok {
		return
	}
	if !ret.IsCell() {
		return Address{}, false
	}
	return ret, true
}

func (m Modifier) String() string {
	return m[0].String() + Sep + m[1].String() + Sep + m[2].String()
}
