package logosvm

import "github.com/reusee/logos/instructions"

type Step struct {
	File   int
	Line   int
	Opcode instructions.Opcode
	OK     bool
	Reason string
}

// Trace lists executed steps in execution order.
type Trace struct {
	Steps []Step
}

// OK reports whether the clicked instruction itself succeeded.
func (t Trace) OK() bool {
	return len(t.Steps) > 0 && t.Steps[0].OK
}

func (t Trace) Failed() int {
	n := 0
	for _, step := range t.Steps {
		if !step.OK {
			n++
		}
	}
	return n
}
