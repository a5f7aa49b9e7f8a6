// Package numeral recognizes Chinese numeral characters.
//
// Chinese writes numbers in two styles: the everyday "lowercase" digits
// (一, 二, 三, …) and the financial "uppercase" digits (壹, 貳, 參, …), which
// are used on cheques and contracts because they are hard to alter. Both
// styles exist in traditional and simplified forms. A few characters (零, 萬,
// 億) are shared by both styles; they are reported as lowercase.
package numeral

import (
	"fmt"
	"sync"

	"github.com/derekparker/trie"
)

// Style is the writing style of a numeral character.
type Style uint8

const (
	Lowercase Style = iota // 一, 二, 三, …
	Uppercase              // 壹, 貳, 參, …
)

func (s Style) String() string {
	switch s {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	}
	return fmt.Sprintf("Style(%d)", uint8(s))
}

// Numeral describes a single numeral character.
type Numeral struct {
	Glyph rune
	Value int64
	Style Style
}

var lowercase = []Numeral{
	{'零', 0, Lowercase}, {'一', 1, Lowercase}, {'二', 2, Lowercase},
	{'三', 3, Lowercase}, {'四', 4, Lowercase}, {'五', 5, Lowercase},
	{'六', 6, Lowercase}, {'七', 7, Lowercase}, {'八', 8, Lowercase},
	{'九', 9, Lowercase}, {'十', 10, Lowercase}, {'百', 100, Lowercase},
	{'千', 1000, Lowercase},
	{'萬', 10000, Lowercase}, {'万', 10000, Lowercase},
	{'億', 100000000, Lowercase}, {'亿', 100000000, Lowercase},
}

var uppercase = []Numeral{
	{'壹', 1, Uppercase},
	{'貳', 2, Uppercase}, {'贰', 2, Uppercase},
	{'參', 3, Uppercase}, {'参', 3, Uppercase},
	{'肆', 4, Uppercase}, {'伍', 5, Uppercase},
	{'陸', 6, Uppercase}, {'陆', 6, Uppercase},
	{'柒', 7, Uppercase}, {'捌', 8, Uppercase}, {'玖', 9, Uppercase},
	{'拾', 10, Uppercase}, {'佰', 100, Uppercase}, {'仟', 1000, Uppercase},
}

// lexicon is keyed by the UTF-8 encoding of a glyph. It is built once and
// only read afterwards.
var lexicon = sync.OnceValue(func() *trie.Trie {
	t := trie.New()
	for _, n := range lowercase {
		t.Add(string(n.Glyph), n)
	}
	for _, n := range uppercase {
		t.Add(string(n.Glyph), n)
	}
	return t
})

// Lookup returns the numeral for ch, or false if ch is not a Chinese numeral
// character.
func Lookup(ch rune) (Numeral, bool) {
	node, ok := lexicon().Find(string(ch))
	if !ok {
		return Numeral{}, false
	}
	n, ok := node.Meta().(Numeral)
	return n, ok
}

// Glyphs returns all numeral characters of style s, in lexicon order.
func Glyphs(s Style) []rune {
	src := lowercase
	if s == Uppercase {
		src = uppercase
	}
	glyphs := make([]rune, len(src))
	for i, n := range src {
		glyphs[i] = n.Glyph
	}
	return glyphs
}
