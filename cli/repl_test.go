package cli

import (
	"bytes"
	"coinwidget/prefs"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/chzyer/readline"
)

func TestParseWidgetID(t *testing.T) {
	if id, err := parseWidgetID("42"); err != nil || id != 42 {
		t.Fatalf("parseWidgetID(42) = %d, %v", id, err)
	}
	for _, raw := range []string{"-1", "abc", ""} {
		if _, err := parseWidgetID(raw); err == nil {
			t.Fatalf("parseWidgetID(%q) should fail", raw)
		}
	}
}

func TestParseToggle(t *testing.T) {
	cases := map[string][2]bool{
		"on":    {true, true},
		"OFF":   {false, true},
		"true":  {true, true},
		"0":     {false, true},
		"maybe": {false, false},
	}
	for raw, want := range cases {
		on, ok := parseToggle(raw)
		if on != want[0] || ok != want[1] {
			t.Fatalf("parseToggle(%q) = %t, %t", raw, on, ok)
		}
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := formatSize(prefs.TextSizeUnset); got != "unset" {
		t.Fatalf("formatSize(unset) = %q", got)
	}
	if got := formatSize(14.5); got != "14.5" {
		t.Fatalf("formatSize(14.5) = %q", got)
	}
	if got := formatMillis(0); got != "never" {
		t.Fatalf("formatMillis(0) = %q", got)
	}
	if got := orDash(""); got != "-" {
		t.Fatalf("orDash = %q", got)
	}
	if len(keyNames()) != len(prefs.Keys()) {
		t.Fatalf("keyNames length mismatch")
	}
}

func TestWriteBanner(t *testing.T) {
	var buf bytes.Buffer
	writeBanner(&buf, "Widget 7", 20)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines", len(lines))
	}
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n != 20 {
			t.Fatalf("line %q has width %d", line, n)
		}
	}
	if !strings.Contains(lines[1], "Widget 7") {
		t.Fatalf("title missing: %q", lines[1])
	}

	buf.Reset()
	writeBanner(&buf, strings.Repeat("x", 30), 20)
	first := strings.SplitN(buf.String(), "\n", 2)[0]
	if n := utf8.RuneCountInString(first); n != 34 {
		t.Fatalf("wide banner width = %d", n)
	}
}

func TestPromptResult(t *testing.T) {
	cases := []struct {
		name      string
		line      string
		err       error
		def       string
		want      string
		cancelled bool
	}{
		{"typed", "  ETH ", nil, "BTC", "ETH", false},
		{"empty takes default", "", nil, "BTC", "BTC", false},
		{"empty without default", "", nil, "", "", false},
		{"ctrl-c", "", readline.ErrInterrupt, "BTC", "", true},
		{"closed input", "", io.EOF, "", "", true},
		{"wrapped eof", "", fmt.Errorf("read: %w", io.EOF), "BTC", "", true},
		{"other error", "", errors.New("boom"), "BTC", "BTC", false},
	}
	for _, tc := range cases {
		got, cancelled := promptResult(tc.line, tc.err, tc.def)
		if got != tc.want || cancelled != tc.cancelled {
			t.Fatalf("%s: promptResult = %q, %t; want %q, %t", tc.name, got, cancelled, tc.want, tc.cancelled)
		}
	}
}
