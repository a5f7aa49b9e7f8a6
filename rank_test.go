package sortzh

import (
	"strings"
	"testing"

	"github.com/npillmayer/sortzh/strokes"
)

func TestRank(t *testing.T) {
	tests := []struct {
		ch     rune
		class  Class
		weight int64
	}{
		{ch: '0', class: ClassDigit, weight: 0},
		{ch: '7', class: ClassDigit, weight: 7},
		{ch: '７', class: ClassDigit, weight: 7},
		{ch: '一', class: ClassLowerNumeral, weight: 1},
		{ch: '百', class: ClassLowerNumeral, weight: 100},
		{ch: '肆', class: ClassUpperNumeral, weight: 4},
		{ch: '正', class: ClassHan, weight: 5},
		{ch: '𡤻', class: ClassHan, weight: 33},
		{ch: '\uF900', class: ClassHan, weight: 10},
		{ch: 'a', class: ClassOther, weight: 'a'},
		{ch: 'Ａ', class: ClassOther, weight: 'A'},
		{ch: '㐀', class: ClassHan, weight: 5},
		{ch: '㐂', class: ClassOther, weight: 0x3402},
	}
	for _, tt := range tests {
		key := Rank(tt.ch, Options{})
		if key.Class != tt.class || key.Weight != tt.weight {
			t.Fatalf("key mismatch for %q: got %s, want class %s weight %d", tt.ch, key, tt.class, tt.weight)
		}
	}
}

func TestClassRanks(t *testing.T) {
	tests := []struct {
		opts        Options
		lower, uppr int
	}{
		{opts: Options{}, lower: 2, uppr: 3},
		{opts: Options{DigitCaseOrder: UppercaseFirst}, lower: 3, uppr: 2},
		{opts: Options{Numbers: NumbersByValue, DigitCaseOrder: UppercaseFirst}, lower: 2, uppr: 2},
	}
	for _, tt := range tests {
		ranks := classRanks(tt.opts)
		if ranks[ClassLowerNumeral] != tt.lower || ranks[ClassUpperNumeral] != tt.uppr {
			t.Fatalf("%s: unexpected numeral ranks %d/%d", tt.opts, ranks[ClassLowerNumeral], ranks[ClassUpperNumeral])
		}
		if ranks[ClassEmpty] >= ranks[ClassDigit] || ranks[ClassDigit] >= min(tt.lower, tt.uppr) ||
			max(tt.lower, tt.uppr) >= ranks[ClassHan] || ranks[ClassHan] >= ranks[ClassOther] {
			t.Fatalf("%s: class ranks out of order: %v", tt.opts, ranks)
		}
	}
}

func TestNumbersByStrokesTreatsNumeralsAsHan(t *testing.T) {
	key := Rank('肆', Options{Numbers: NumbersByStrokes})
	if key.Class != ClassHan || key.Weight != 13 {
		t.Fatalf("expected 肆 as Han with 13 strokes, got %s", key)
	}
}

func TestCompareFirstCharacterOnly(t *testing.T) {
	c := NewCollator(Options{})
	tests := []struct {
		a, b string
		want int
	}{
		{a: "正", b: "正", want: 0},
		{a: "正月", b: "正式", want: 0},
		{a: "正", b: "母", want: 0}, // both have 5 strokes
		{a: "", b: "", want: 0},
		{a: "", b: "1", want: -1},
		{a: "1", b: "一", want: -1},
		{a: "龍", b: "人", want: 1},
		{a: "x", b: "龍", want: 1},
	}
	for _, tt := range tests {
		if got := c.Compare(tt.a, tt.b); got != tt.want {
			t.Fatalf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := Compare(tt.b, tt.a, Options{}); got != -tt.want {
			t.Fatalf("Compare(%q, %q) = %d, want %d", tt.b, tt.a, got, -tt.want)
		}
	}
}

func TestCollatorWithCustomTable(t *testing.T) {
	table, err := strokes.Load("custom", strokes.NewReader(strings.NewReader("U+6B63\tkTotalStrokes\t20\n")))
	if err != nil {
		t.Fatal(err)
	}
	c := NewCollatorWithTable(Options{}, table)
	if key := c.Key('正'); key.Class != ClassHan || key.Weight != 20 {
		t.Fatalf("expected custom count, got %s", key)
	}
	if key := c.Key('龍'); key.Class != ClassOther {
		t.Fatalf("expected 龍 to be unmapped in custom table, got %s", key)
	}
	if c.Options() != (Options{}) {
		t.Fatalf("unexpected options %s", c.Options())
	}
}
