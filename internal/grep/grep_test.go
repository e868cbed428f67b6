package grep

import (
	"os"
	"path/filepath"
	"testing"

	"strview/pkg/json"
)

var sample = []byte("hello world\n  needle here\nno match\nneedle needle\n")

func TestSearch(t *testing.T) {
	e := New(Options{Pattern: "needle", TrimSpace: true})

	matches := e.Search("sample", sample)
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}

	// 修剪后的行内列号
	if matches[0].Line != 2 || matches[0].Column != 3 {
		t.Fatalf("match[0] at %d:%d", matches[0].Line, matches[0].Column)
	}
	if matches[0].Text != "needle here" {
		t.Fatalf("match[0] text %q", matches[0].Text)
	}
	if matches[1].Line != 4 || matches[1].Column != 1 {
		t.Fatalf("match[1] at %d:%d", matches[1].Line, matches[1].Column)
	}
	// 同一行内的第二次命中
	if matches[2].Line != 4 || matches[2].Column != 8 {
		t.Fatalf("match[2] at %d:%d", matches[2].Line, matches[2].Column)
	}

	if e.Count("sample", sample) != 3 {
		t.Fatal("Count disagrees with Search")
	}
}

func TestSearchNoTrim(t *testing.T) {
	e := New(Options{Pattern: "needle"})

	matches := e.Search("sample", sample)
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	// 未修剪时列号按原始行计
	if matches[0].Column != 3 {
		t.Fatalf("match[0] column %d", matches[0].Column)
	}
	if matches[0].Text != "  needle here" {
		t.Fatalf("match[0] text %q", matches[0].Text)
	}
}

func TestSearchNoTrailingNewline(t *testing.T) {
	e := New(Options{Pattern: "end"})
	matches := e.Search("x", []byte("the end"))
	if len(matches) != 1 || matches[0].Line != 1 || matches[0].Column != 5 {
		t.Fatalf("unexpected matches %+v", matches)
	}
}

func TestMaxLine(t *testing.T) {
	e := New(Options{Pattern: "a", MaxLine: 3})
	matches := e.Search("x", []byte("aaaaa\na\n"))
	if len(matches) != 1 || matches[0].Line != 2 {
		t.Fatalf("long line should be skipped, got %+v", matches)
	}
}

func TestEmptyPattern(t *testing.T) {
	// 空模式每行记一次
	e := New(Options{Pattern: ""})
	matches := e.Search("x", []byte("x\ny\n"))
	if len(matches) != 2 {
		t.Fatalf("empty pattern matched %d times", len(matches))
	}
}

func TestBlankLineTrimmedAway(t *testing.T) {
	e := New(Options{Pattern: "a", TrimSpace: true})
	matches := e.Search("x", []byte("   \na\n"))
	if len(matches) != 1 || matches[0].Line != 2 {
		t.Fatalf("unexpected matches %+v", matches)
	}
}

func TestSearchFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	if err := os.WriteFile(path, sample, 0o644); err != nil {
		t.Fatal(err)
	}

	e := New(Options{Pattern: "world"})
	matches, err := e.SearchFile(path)
	if err != nil {
		t.Fatalf("SearchFile failed: %v", err)
	}
	if len(matches) != 1 || matches[0].File != path {
		t.Fatalf("unexpected matches %+v", matches)
	}

	if _, err := e.SearchFile(filepath.Join(dir, "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestMatchJSONShape(t *testing.T) {
	m := Match{File: "f", Line: 1, Column: 2, Text: "t"}
	out, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"file", "line", "column", "text"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("missing JSON key %q in %s", key, out)
		}
	}
}
