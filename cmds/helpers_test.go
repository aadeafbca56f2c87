package cmds

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestVar(t *testing.T) {
	a := Var[int]("TestVarInt")
	b := Var[string]("TestVarString")
	GlobalExecutor.MustExecute([]string{
		"TestVarInt", "42",
		"TestVarString", "bar",
	})
	if *a != 42 {
		t.Fatalf("got %v", *a)
	}
	if *b != "bar" {
		t.Fatalf("got %v", *b)
	}
	GlobalExecutor.MustExecute([]string{
		"TestVarInt.",
	})
	if *a != 0 {
		t.Fatalf("got %v", *a)
	}
}

func TestDurationVar(t *testing.T) {
	d := Var[time.Duration]("TestDurationVar")
	GlobalExecutor.MustExecute([]string{
		"TestDurationVar", "250",
	})
	if *d != 250*time.Millisecond {
		t.Fatalf("got %v", *d)
	}
}

func TestSwitch(t *testing.T) {
	foo := Switch("TestSwitch")
	GlobalExecutor.MustExecute([]string{
		"TestSwitch",
	})
	if !*foo {
		t.Fatal("should be on")
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *foo {
		t.Fatal("should be off")
	}
}

func TestCollect(t *testing.T) {
	list := Collect[string]("TestCollect")
	GlobalExecutor.MustExecute([]string{
		"TestCollect", "a",
		"TestCollect", "b",
	})
	if str := fmt.Sprintf("%v", *list); str != "[a b]" {
		t.Fatalf("got %s", str)
	}
}

func TestTypedVar(t *testing.T) {
	type Root string
	v := Var[Root]("TestTypedVar")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "/srv",
	})
	if *v != "/srv" {
		t.Fatalf("got %v", *v)
	}
}

func TestHelperUsage(t *testing.T) {
	Var[string]("TestUsageVar", "store", "directory")
	Switch("TestUsageSwitch", "watch it")
	buf := new(bytes.Buffer)
	GlobalExecutor.WriteUsage(buf)
	out := buf.String()
	if !strings.Contains(out, "TestUsageVar <string>\tstore directory\n") {
		t.Fatalf("got\n%s", out)
	}
	if !strings.Contains(out, "TestUsageSwitch\twatch it\n") {
		t.Fatalf("got\n%s", out)
	}
	if strings.Contains(out, "TestUsageVar.") || strings.Contains(out, "!TestUsageSwitch") {
		t.Fatalf("helpers should be hidden\n%s", out)
	}
}
