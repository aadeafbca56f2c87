package storages

// Null is the on-disk spelling of an empty cell.
const Null = "null"

// Cell is a stored value. The zero Cell is empty.
type Cell struct {
	value   string
	present bool
}

var Empty Cell

func Text(s string) Cell {
	return Cell{
		value:   s,
		present: true,
	}
}

func (c Cell) IsEmpty() bool {
	return !c.present
}

// String returns the value, or "" for an empty cell.
func (c Cell) String() string {
	return c.value
}

// Encode returns the field as written to disk.
func (c Cell) Encode() string {
	if !c.present {
		return Null
	}
	return c.value
}

func DecodeCell(field string) Cell {
	if field == Null {
		return Empty
	}
	return Text(field)
}

// Storable reports whether the value survives an encode/decode round trip
// without breaking line or field alignment.
func (c Cell) Storable() bool {
	if !c.present {
		return true
	}
	if c.value == Null {
		return false
	}
	for _, r := range c.value {
		switch r {
		case Separator, '\n', '\r':
			return false
		}
	}
	return true
}

// Concat joins two cells. Two empty cells stay empty.
func Concat(a, b Cell) Cell {
	if a.IsEmpty() && b.IsEmpty() {
		return Empty
	}
	return Text(a.value + b.value)
}
