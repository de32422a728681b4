// internal/util/util_test.go
package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "sample.txt")
	data := []byte("test payload")

	if err := WriteFile(path, data); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(got) != string(data) {
		t.Fatalf("unexpected file contents: got %q want %q", got, data)
	}
}

func TestTruncateRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "no truncation", in: "hello", max: 10, want: "hello"},
		{name: "ascii truncation", in: "helloworld", max: 5, want: "hello…"},
		{name: "multibyte truncation", in: "こんにちは世界", max: 4, want: "こんにち…"},
		{name: "zero width", in: "abc", max: 0, want: "…"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateRunes(tt.in, tt.max); got != tt.want {
				t.Fatalf("TruncateRunes(%q,%d)=%q want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestBar(t *testing.T) {
	t.Parallel()

	if got := Bar(50, 10); got != strings.Repeat("█", 5) {
		t.Fatalf("Bar(50,10)=%q", got)
	}
	if got := Bar(250, 4); got != strings.Repeat("█", 4) {
		t.Fatalf("Bar clamps at 100: %q", got)
	}
	if Bar(0, 10) != "" || Bar(10, 0) != "" {
		t.Fatalf("expected empty bars")
	}
}

func TestMax(t *testing.T) {
	t.Parallel()

	if Max(2, 5) != 5 || Max(7, 3) != 7 {
		t.Fatalf("Max returned unexpected result")
	}
}
