package storages

import "strings"

const (
	Separator = '*'
	Arity     = 3
)

type Line [Arity]Cell

// ParseLine decodes one text line. Missing fields are empty, extra fields are dropped.
func ParseLine(text string) (ret Line) {
	fields := strings.Split(text, string(Separator))
	for i := 0; i < Arity && i < len(fields); i++ {
		ret[i] = DecodeCell(fields[i])
	}
	return
}

func (l Line) String() string {
	var b strings.Builder
	for i, cell := range l {
		if i > 0 {
			b.WriteByte(Separator)
		}
		b.WriteString(cell.Encode())
	}
	return b.String()
}

func (l Line) Storable() bool {
	for _, cell := range l {
		if !cell.Storable() {
			return false
		}
	}
	return true
}

func NewLine(cells ...string) (ret Line) {
	for i := 0; i < Arity && i < len(cells); i++ {
		ret[i] = Text(cells[i])
	}
	return
}

func parseLines(content string) []Line {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	texts := strings.Split(content, "\n")
	lines := make([]Line, 0, len(texts))
	for _, text := range texts {
		lines = append(lines, ParseLine(strings.TrimSuffix(text, "\r")))
	}
	return lines
}

func formatLines(lines []Line) []byte {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line.String())
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
