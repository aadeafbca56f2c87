package instructions

import (
	"strings"

	"github.com/reusee/logos/storages"
)

// ContinuationMarker suffixes an opcode name to run the next line after success.
const ContinuationMarker = "&"

// Instruction is a view of a stored line.
type Instruction struct {
	// Head is the first cell as stored, marker included.
	Head         storages.Cell
	Name         string
	Opcode       Opcode
	Known        bool
	Continuation bool
	Param1       storages.Cell
	Param2       storages.Cell
	SourceFile   int
	SourceLine   int
}

func Parse(line storages.Line, sourceFile, sourceLine int) Instruction {
	head := line[0]
	name, cont := strings.CutSuffix(head.String(), ContinuationMarker)
	op, known := Lookup(name)
	if op == DetectAssert {
		// forward progression of an assertion depends on its outcome
		cont = false
	}
	return Instruction{
		Head:         head,
		Name:         name,
		Opcode:       op,
		Known:        known,
		Continuation: cont,
		Param1:       line[1],
		Param2:       line[2],
		SourceFile:   sourceFile,
		SourceLine:   sourceLine,
	}
}

// Line encodes the instruction back, keeping the stored head.
func (i Instruction) Line() storages.Line {
	return storages.Line{i.Head, i.Param1, i.Param2}
}

func (i Instruction) WithParams(param1, param2 storages.Cell) Instruction {
	i.Param1 = param1
	i.Param2 = param2
	return i
}

// Next is the line run by continuation.
func (i Instruction) Next() (file, line int) {
	return i.SourceFile, i.SourceLine + 1
}
