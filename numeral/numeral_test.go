package numeral

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		ch    rune
		value int64
		style Style
	}{
		{ch: '一', value: 1, style: Lowercase},
		{ch: '二', value: 2, style: Lowercase},
		{ch: '零', value: 0, style: Lowercase},
		{ch: '萬', value: 10000, style: Lowercase},
		{ch: '亿', value: 100000000, style: Lowercase},
		{ch: '參', value: 3, style: Uppercase},
		{ch: '参', value: 3, style: Uppercase},
		{ch: '肆', value: 4, style: Uppercase},
		{ch: '仟', value: 1000, style: Uppercase},
	}
	for _, tt := range tests {
		n, ok := Lookup(tt.ch)
		if !ok {
			t.Fatalf("expected %q to be a numeral", tt.ch)
		}
		if n.Value != tt.value || n.Style != tt.style || n.Glyph != tt.ch {
			t.Fatalf("numeral mismatch for %q: got %+v", tt.ch, n)
		}
	}
}

func TestLookupNonNumerals(t *testing.T) {
	for _, ch := range []rune{'正', '兆', '1', 'a', '花', 0} {
		if n, ok := Lookup(ch); ok {
			t.Fatalf("expected %q not to be a numeral, got %+v", ch, n)
		}
	}
}

func TestGlyphsHaveTheirStyle(t *testing.T) {
	for _, style := range []Style{Lowercase, Uppercase} {
		glyphs := Glyphs(style)
		if len(glyphs) == 0 {
			t.Fatalf("no glyphs for %s", style)
		}
		for _, g := range glyphs {
			n, ok := Lookup(g)
			if !ok || n.Style != style {
				t.Fatalf("glyph %q should be %s, is %+v", g, style, n)
			}
		}
	}
}
