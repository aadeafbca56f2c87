package logosconfigs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/logos/configs"
	"github.com/reusee/logos/modes"
)

func TestValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logos.cue")
	if err := os.WriteFile(path, []byte(`
root: "/srv/logos"
monitor: "in/monitor.txt"
interval_ms: 250
max_depth: 16
split_marker: "char"
result_marker: "found"
watch: true
`), 0644); err != nil {
		t.Fatal(err)
	}

	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() configs.Loader {
			return configs.NewLoader([]string{path}, schema)
		},
	).Call(func(
		root RootDir,
		monitor MonitorPath,
		interval PollInterval,
		depth MaxDepth,
		scratch ScratchName,
		split SplitMarker,
		result ResultMarker,
		watch Watch,
	) {
		if root != "/srv/logos" {
			t.Fatalf("got %v", root)
		}
		if monitor != MonitorPath(filepath.Join("/srv/logos", "in", "monitor.txt")) {
			t.Fatalf("got %v", monitor)
		}
		if time.Duration(interval) != 250*time.Millisecond {
			t.Fatalf("got %v", interval)
		}
		if depth != 16 {
			t.Fatalf("got %v", depth)
		}
		if scratch != "temp_line.txt" {
			t.Fatalf("got %v", scratch)
		}
		if split != "char" || result != "found" {
			t.Fatalf("got %v %v", split, result)
		}
		if !watch {
			t.Fatal("should watch")
		}
	})
}

func TestDefaults(t *testing.T) {
	dscope.New(new(Module), modes.ForTest(t)).Call(func(
		interval PollInterval,
		depth MaxDepth,
		split SplitMarker,
		result ResultMarker,
		root RootDir,
		monitor MonitorPath,
	) {
		if time.Duration(interval) != time.Second {
			t.Fatalf("got %v", interval)
		}
		if depth != 4096 {
			t.Fatalf("got %v", depth)
		}
		if split != "分解" || result != "搜索结果" {
			t.Fatalf("got %v %v", split, result)
		}
		if !filepath.IsAbs(string(root)) {
			t.Fatalf("got %v", root)
		}
		if monitor != MonitorPath(filepath.Join(string(root), "monitor.txt")) {
			t.Fatalf("got %v", monitor)
		}
	})
}

func TestSchemaRejectsBadInterval(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logos.cue")
	if err := os.WriteFile(path, []byte("interval_ms: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	loader := configs.NewLoader([]string{path}, schema)
	var ms int
	if err := loader.AssignFirst("interval_ms", &ms); err == nil {
		t.Fatal("should error")
	}
}

func TestSchemaRejectsBadMarker(t *testing.T) {
	for _, content := range []string{
		`split_marker: "a*b"`,
		`result_marker: "null"`,
		`split_marker: "a\nb"`,
	} {
		dir := t.TempDir()
		path := filepath.Join(dir, "logos.cue")
		if err := os.WriteFile(path, []byte(content+"\n"), 0644); err != nil {
			t.Fatal(err)
		}
		loader := configs.NewLoader([]string{path}, schema)
		var marker string
		if err := loader.AssignFirst("split_marker", &marker); err == nil {
			t.Fatalf("%s: should error", content)
		}
	}
}
