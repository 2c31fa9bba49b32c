package input

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "list.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadTargets(t *testing.T) {
	path := writeTemp(t, "aabbcc\tsalt1\nddeeff\n\ngghhii\tsalt2\textra\n")
	entries, err := ReadTargets(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []TargetEntry{
		{Value: "aabbcc", Auxiliary: "salt1"},
		{Value: "ddeeff", Auxiliary: ""},
		{Value: "gghhii", Auxiliary: "salt2\textra"},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, e, want[i])
		}
	}
}

func TestReadTargetsMissing(t *testing.T) {
	if _, err := ReadTargets(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("ReadTargets on a missing file succeeded")
	}
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		content  string
		expected int64
	}{
		{"", 0},
		{"one\n", 1},
		{"one\ntwo\nthree\n", 3},
		{"no trailing newline", 1},
		{"a\n\nb\n", 3},
	}
	for _, tt := range tests {
		path := writeTemp(t, tt.content)
		got, err := CountLines(path)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.expected {
			t.Errorf("CountLines(%q) = %d, want %d", tt.content, got, tt.expected)
		}
	}
}

func TestWriteScratchFiles(t *testing.T) {
	entries := []TargetEntry{
		{Value: "hash1", Auxiliary: "salt1"},
		{Value: "hash2", Auxiliary: ""},
	}
	hashPath, saltPath, cleanup, err := WriteScratchFiles(entries)
	if err != nil {
		t.Fatal(err)
	}

	hashes, err := os.ReadFile(hashPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(hashes) != "hash1\nhash2\n" {
		t.Errorf("hash file = %q", hashes)
	}
	salts, err := os.ReadFile(saltPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(salts) != "salt1\n\n" {
		t.Errorf("salt file = %q", salts)
	}

	cleanup()
	if _, err := os.Stat(hashPath); !os.IsNotExist(err) {
		t.Error("hash scratch file survived cleanup")
	}
	if _, err := os.Stat(saltPath); !os.IsNotExist(err) {
		t.Error("salt scratch file survived cleanup")
	}
	cleanup() // second run must be harmless
}
