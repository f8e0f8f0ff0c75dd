package stablevec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDumpPlain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stablevec")
	defer teardown()

	v := FromSlice([]string{"a", "b"})
	var buf bytes.Buffer
	Dump(v, &buf)
	out := buf.String()
	t.Logf("\n%s", out)
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("dump to a buffer must not contain escape sequences")
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 slot lines, got %d", len(lines))
	}
	if !strings.HasSuffix(lines[3], "end") {
		t.Fatalf("last slot should be the sentinel: %q", lines[3])
	}
}

func TestDumpMarksInconsistentCells(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stablevec")
	defer teardown()

	v := FromSlice([]int{1, 2, 3})
	v.idx.cells[1].pos = 7 // corrupt a back-reference
	if err := v.Check(); err == nil {
		t.Fatalf("Check should detect the corrupted back-reference")
	}
	var buf bytes.Buffer
	palette := DumpPalette{
		OK:       color.New(color.FgGreen),
		Broken:   color.New(color.FgRed),
		Sentinel: color.New(color.FgBlue),
	}
	FdumpPalette(v, &buf, palette, true)
	out := buf.String()
	if !strings.Contains(out, "inconsistent") {
		t.Fatalf("expected inconsistent cell to be marked:\n%s", out)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected colored output")
	}
}

func TestToDot(t *testing.T) {
	v := FromSlice([]string{"x", "a\"b"})
	var buf bytes.Buffer
	ToDot(v, &buf)
	out := buf.String()
	t.Logf("\n%s", out)
	if !strings.HasPrefix(out, "strict digraph {") || !strings.HasSuffix(out, "}\n") {
		t.Fatalf("not a DOT graph")
	}
	if !strings.Contains(out, `a\"b`) {
		t.Fatalf("expected escaped label")
	}
	if strings.Count(out, "style=dashed") != 3 {
		t.Fatalf("expected one back-reference edge per slot")
	}
	if strings.Contains(out, "color=red") {
		t.Fatalf("consistent vector should not have red edges")
	}
}
