package sortzh

import (
	"unicode/utf8"

	"github.com/npillmayer/sortzh/strokes"
)

// Collator compares strings by the ordering key of their first character.
//
// A Collator is immutable and may be used by multiple goroutines
// concurrently.
type Collator struct {
	opts  Options
	ranks [ClassOther + 1]int
	table *strokes.Table
}

// NewCollator creates a collator for opts, backed by the default stroke
// table.
func NewCollator(opts Options) *Collator {
	return NewCollatorWithTable(opts, strokes.Default())
}

// NewCollatorWithTable creates a collator for opts which looks up stroke
// counts in table.
func NewCollatorWithTable(opts Options, table *strokes.Table) *Collator {
	return &Collator{
		opts:  opts,
		ranks: classRanks(opts),
		table: table,
	}
}

// Options returns the options c has been created with.
func (c *Collator) Options() Options {
	return c.opts
}

// KeyOf returns the ordering key of s, which is the key of its first
// character. The empty string has a key which sorts before all others.
func (c *Collator) KeyOf(s string) Key {
	if s == "" {
		return c.key(ClassEmpty, 0)
	}
	ch, _ := utf8.DecodeRuneInString(s)
	return c.Key(ch)
}

// Compare returns -1, 0 or +1, depending on whether a sorts before, equal to
// or after b. Only the first characters are compared: strings starting with
// characters of equal rank compare as 0, even if they differ later on.
func (c *Collator) Compare(a, b string) int {
	return c.KeyOf(a).Compare(c.KeyOf(b))
}

// Compare compares a and b with a collator for opts.
func Compare(a, b string, opts Options) int {
	return NewCollator(opts).Compare(a, b)
}
