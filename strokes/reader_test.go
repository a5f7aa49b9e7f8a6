package strokes

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func mustLoadFixture(t *testing.T, file string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", file))
	if err != nil {
		t.Fatalf("cannot read fixture %s: %v", file, err)
	}
	return data
}

func TestReaderFixture(t *testing.T) {
	r := NewReader(strings.NewReader(string(mustLoadFixture(t, "unihan-sample.txt"))))
	tests := []struct {
		ch     rune
		counts []int
	}{
		{ch: '一', counts: []int{1}},
		{ch: '花', counts: []int{7, 8}},
		{ch: '𪚥', counts: []int{64}},
	}
	for _, tt := range tests {
		ch, counts, err := r.Next()
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if ch != tt.ch {
			t.Fatalf("character mismatch: got %q, want %q", ch, tt.ch)
		}
		if !reflect.DeepEqual(counts, tt.counts) {
			t.Fatalf("counts mismatch for %q: got %v, want %v", ch, counts, tt.counts)
		}
	}
	if _, _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestReaderRejectsMalformedLines(t *testing.T) {
	inputs := []string{
		"4E00\tkTotalStrokes\t1",
		"U+ZZZZ\tkTotalStrokes\t1",
		"U+4E00\tkTotalStrokes\t0",
		"U+4E00\tkTotalStrokes\t1 2 3",
		"U+4E00\tkTotalStrokes\tx",
		"U+4E00 kTotalStrokes 1",
	}
	for _, input := range inputs {
		_, _, err := NewReader(strings.NewReader(input)).Next()
		if !errors.Is(err, ErrMalformedEntry) {
			t.Fatalf("expected ErrMalformedEntry for %q, got %v", input, err)
		}
	}
}

func TestReaderReportsLineNumber(t *testing.T) {
	src := "# header\nU+4E00\tkTotalStrokes\t1\nU+4E8C\tkTotalStrokes\t-2\n"
	r := NewReader(strings.NewReader(src))
	if _, _, err := r.Next(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	_, _, err := r.Next()
	if err == nil || !strings.HasPrefix(err.Error(), "line 3:") {
		t.Fatalf("expected error for line 3, got %v", err)
	}
}
