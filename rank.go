package sortzh

import (
	"cmp"
	"fmt"

	"golang.org/x/text/width"

	"github.com/npillmayer/sortzh/numeral"
)

// Class is the character class of the first character of an item.
type Class uint8

const (
	ClassEmpty        Class = iota // the empty string
	ClassDigit                     // ASCII digit 0-9
	ClassLowerNumeral              // Chinese numeral, lowercase style
	ClassUpperNumeral              // Chinese numeral, uppercase style
	ClassHan                       // character with a known stroke count
	ClassOther                     // anything else
)

func (c Class) String() string {
	switch c {
	case ClassEmpty:
		return "empty"
	case ClassDigit:
		return "digit"
	case ClassLowerNumeral:
		return "lowercase-numeral"
	case ClassUpperNumeral:
		return "uppercase-numeral"
	case ClassHan:
		return "han"
	case ClassOther:
		return "other"
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

// Key is the ordering key of a single character. Keys are compared by
// ClassRank first, then by Weight.
//
// Weight is the numeric value for digits and numerals, the stroke count for
// Chinese characters and the code point for everything else.
type Key struct {
	Class     Class
	ClassRank int
	Weight    int64
}

// Compare returns -1, 0 or +1, depending on whether k sorts before, equal to
// or after other.
func (k Key) Compare(other Key) int {
	if c := cmp.Compare(k.ClassRank, other.ClassRank); c != 0 {
		return c
	}
	return cmp.Compare(k.Weight, other.Weight)
}

func (k Key) String() string {
	return fmt.Sprintf("(%s/%d,%d)", k.Class, k.ClassRank, k.Weight)
}

// Rank returns the ordering key of ch under opts.
func Rank(ch rune, opts Options) Key {
	return NewCollator(opts).Key(ch)
}

// Key returns the ordering key of ch.
func (c *Collator) Key(ch rune) Key {
	if folded := width.LookupRune(ch).Folded(); folded != 0 {
		ch = folded // e.g. '１' => '1'
	}
	if ch >= '0' && ch <= '9' {
		return c.key(ClassDigit, int64(ch-'0'))
	}
	if c.opts.Numbers != NumbersByStrokes {
		if n, ok := numeral.Lookup(ch); ok {
			if n.Style == numeral.Uppercase {
				return c.key(ClassUpperNumeral, n.Value)
			}
			return c.key(ClassLowerNumeral, n.Value)
		}
	}
	if count, ok := c.table.Lookup(ch, c.opts.Variant); ok {
		return c.key(ClassHan, int64(count))
	}
	// Unmapped characters, including CJK characters missing from the
	// table, sort after every character with a known stroke count.
	return c.key(ClassOther, int64(ch))
}

func (c *Collator) key(class Class, weight int64) Key {
	return Key{Class: class, ClassRank: c.ranks[class], Weight: weight}
}

// classRanks derives the rank of every class from opts. Only the two
// numeral classes are affected by options.
func classRanks(opts Options) [ClassOther + 1]int {
	ranks := [ClassOther + 1]int{
		ClassEmpty:        0,
		ClassDigit:        1,
		ClassLowerNumeral: 2,
		ClassUpperNumeral: 3,
		ClassHan:          4,
		ClassOther:        5,
	}
	switch {
	case opts.Numbers == NumbersByValue:
		ranks[ClassUpperNumeral] = ranks[ClassLowerNumeral]
	case opts.DigitCaseOrder == UppercaseFirst:
		ranks[ClassLowerNumeral], ranks[ClassUpperNumeral] = 3, 2
	}
	return ranks
}
