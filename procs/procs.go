package procs

// Procs runs its elements in order. A running element is replaced by the proc it returns,
// so nested Procs run depth first.
type Procs[C any] []Proc[C]

var _ Proc[any] = Procs[any]{}

func (p Procs[C]) Run(ctx C) (Proc[C], error) {
	if len(p) == 0 {
		return nil, nil
	}
	proc, err := p[0].Run(ctx)
	if err != nil {
		return nil, err
	}
	if proc == nil {
		if len(p) == 1 {
			return nil, nil
		}
		return p[1:], nil
	}
	if len(p) == 1 {
		// tail position, no need to keep the wrapper
		return proc, nil
	}
	p[0] = proc
	return p, nil
}
