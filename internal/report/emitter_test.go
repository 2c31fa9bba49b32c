package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/skarn/mdxwrap/internal/parser"
)

func TestStatusFormat(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf)
	e.Status(5000, 12860000)
	if got := buf.String(); got != "STATUS 5000 12860000\n" {
		t.Errorf("Status output = %q", got)
	}
}

func TestResultRecord(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf)
	e.Result(parser.ResultEvent{
		MatchedValue:  "5f4dcc3b5aa765d61d8327deb882cf99",
		Label:         "MD5x01",
		RecoveredText: "password",
	})
	want := "5f4dcc3b5aa765d61d8327deb882cf99:MD5x01,password\n"
	if got := buf.String(); got != want {
		t.Errorf("Result output = %q, want %q", got, want)
	}
}

func TestFinalStatusOnce(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf)
	e.FinalStatus(10000, 100)
	e.FinalStatus(10000, 100)
	e.FinalStatus(9000, 50)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("final status emitted %d times, want 1: %q", len(lines), buf.String())
	}
	if lines[0] != "STATUS 10000 100" {
		t.Errorf("final status = %q", lines[0])
	}
	if e.StatusCount() != 1 {
		t.Errorf("StatusCount() = %d, want 1", e.StatusCount())
	}
}
