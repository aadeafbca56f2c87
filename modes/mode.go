package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// Mode selects environment dependent behavior: config discovery, log handlers and levels.
type Mode string

const (
	ModeProduction  Mode = "production"
	ModeDevelopment Mode = "development"
)

func (m Mode) IsProduction() bool {
	return m == ModeProduction
}

type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}

// ModuleForTest keeps a scope hermetic: no config files outside the test, no journal.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
