package main

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tidwall/gjson"

	"github.com/wippyai/xtp-cpp-bindgen/errors"
	"github.com/wippyai/xtp-cpp-bindgen/planner"
)

const kvSchema = "testdata/kv.json"

func TestRun(t *testing.T) {
	var out bytes.Buffer
	if err := run(kvSchema, planner.NewWithDefaults(), &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	res := gjson.ParseBytes(out.Bytes())
	tests := []struct {
		path string
		want string
	}{
		{"objects.0.typeName", "WriteParams"},
		{"objects.1.typeName", "ComplexObject"},
		{"objects.1.size", "72"},
		{"objects.1.fields.0.name", "writeParams"},
		{"objects.1.init.0.name", "ghost"},
		{"enums.#", "2"},
		{"imports.0.param", "Fruit"},
		{"imports.0.input.accessor", "text"},
		{"imports.0.input.contentType", "text/plain; charset=utf-8"},
		{"imports.1.output.element", "std::byte"},
		{"imports.2.convention", "const-ref"},
		{"imports.2.signature", "(i64) -> ()"},
		{"exports.0.return", "std::expected<pdk::ComplexObject, pdk::Error>"},
		{"exports.0.direction", "export"},
		{"exports.1.return", "std::expected<void, pdk::Error>"},
		{"features.hasEnums", "true"},
		{"features.needsJsonValue", "false"},
	}
	for _, tc := range tests {
		if got := res.Get(tc.path).String(); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestRunNamespaces(t *testing.T) {
	opts := planner.DefaultOptions()
	opts.ImportNamespace = "host::"
	opts.ImportError = "host::Error"

	var out bytes.Buffer
	if err := run(kvSchema, planner.New(opts), &out); err != nil {
		t.Fatal(err)
	}
	res := gjson.ParseBytes(out.Bytes())
	if got := res.Get("imports.0.return").String(); got != "std::expected<bool, host::Error>" {
		t.Errorf("got %q", got)
	}
	if got := res.Get("imports.2.param").String(); got != "const host::WriteParams&" {
		t.Errorf("got %q", got)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"imports": [{"name": "f", "input": {"type": {"kind": "string"}, "contentType": "application/x-binary"}}]}`), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		file string
		want string
	}{
		{filepath.Join(dir, "missing.json"), "read schema"},
		{bad, "unsupported_encoding"},
	}
	for _, tc := range tests {
		var out bytes.Buffer
		err := run(tc.file, planner.NewWithDefaults(), &out)
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Errorf("got %v, want error containing %q", err, tc.want)
		}
		if out.Len() != 0 {
			t.Errorf("got output %q on error", out.String())
		}
	}
}

func TestRunMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := run(filepath.Join(t.TempDir(), "missing.json"), planner.NewWithDefaults(), &out)
	if !errors.Is(err, &errors.Error{Phase: errors.PhaseIngest, Kind: errors.KindInvalidInput}) {
		t.Errorf("got %v, want ingest invalid input", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got %v, want cause fs.ErrNotExist", err)
	}
}

func TestInteractiveModel(t *testing.T) {
	m := newInteractiveModel(kvSchema, planner.NewWithDefaults())
	if !strings.Contains(m.View(), "Planning") {
		t.Errorf("got %q before load", m.View())
	}

	m.Update(m.loadPlan())
	if m.err != nil {
		t.Fatal(m.err)
	}
	if view := m.View(); !strings.Contains(view, "threshold 128") || !strings.Contains(view, `export "pdk::"`) {
		t.Errorf("header missing planner options:\n%s", view)
	}
	// 2 structs, 2 enums, 3 imports, 2 exports
	if len(m.entries) != 9 {
		t.Fatalf("got %d entries, want 9", len(m.entries))
	}

	for _, r := range "kv_" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	visible := m.visible()
	if len(visible) != 2 || visible[0].name != "kv_read" {
		t.Fatalf("filter kv_: got %d entries", len(visible))
	}

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateDetail {
		t.Fatal("enter should open details")
	}
	if view := m.View(); !strings.Contains(view, "(i64) -> ()") {
		t.Errorf("kv_write details missing core signature:\n%s", view)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != stateBrowse || len(m.visible()) != 9 {
		t.Errorf("esc should return to the full list, got %d entries", len(m.visible()))
	}
}

func TestInteractiveModelError(t *testing.T) {
	m := newInteractiveModel("testdata/missing.json", planner.NewWithDefaults())
	m.Update(m.loadPlan())
	if m.err == nil {
		t.Fatal("expected load error")
	}
	if !strings.Contains(m.View(), "Error") {
		t.Errorf("got %q, want error view", m.View())
	}
}

func TestRealMainUsage(t *testing.T) {
	args := os.Args
	defer func() { os.Args = args }()
	os.Args = []string{"xtpplan"}

	if code := realMain(); code != 1 {
		t.Errorf("got exit code %d, want 1", code)
	}
}
