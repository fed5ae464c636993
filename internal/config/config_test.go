package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "csvcut.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse(t *testing.T) {
	d, err := Parse([]byte("delimiter: \";\"\nheader: true\njson: false\ncolor: never\n"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if d.Delimiter != ";" {
		t.Errorf("expected delimiter %q, got %q", ";", d.Delimiter)
	}
	if d.Header == nil || !*d.Header {
		t.Errorf("expected header to be true")
	}
	if d.JSON == nil || *d.JSON {
		t.Errorf("expected json to be false")
	}
	if d.Color != ColorNever {
		t.Errorf("expected color %q, got %q", ColorNever, d.Color)
	}
}

func TestParsePartial(t *testing.T) {
	d, err := Parse([]byte("json: true\n"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if d.Header != nil {
		t.Errorf("expected header to be unset")
	}
	if d.JSON == nil || !*d.JSON {
		t.Errorf("expected json to be true")
	}
	if d.Delimiter != "" || d.Color != "" {
		t.Errorf("unexpected defaults %+v", d)
	}
}

func TestParseEmpty(t *testing.T) {
	d, err := Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if d != (Defaults{}) {
		t.Errorf("expected empty defaults, got %+v", d)
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"unknown: 1\n",
		"color: sometimes\n",
		"header: [1, 2]\n",
		"- a\n- b\n",
	}
	for _, input := range inputs {
		if _, err := Parse([]byte(input)); err == nil {
			t.Errorf("%q: expected an error", input)
		}
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "delimiter: \"\\t\"\n")
	t.Setenv(EnvVar, path)
	d, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if d.Delimiter != "\t" {
		t.Errorf("expected a tab delimiter, got %q", d.Delimiter)
	}
}

func TestLoadUnset(t *testing.T) {
	t.Setenv(EnvVar, "")
	d, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if d != (Defaults{}) {
		t.Errorf("expected empty defaults, got %+v", d)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv(EnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Fatal("expected an error")
	}
}
