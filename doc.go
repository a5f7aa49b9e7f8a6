/*
Package sortzh sorts strings of Chinese text in a linguistically meaningful
order.

Go's sort.Strings orders by code point, which for Chinese characters results
in an order that has nothing to do with how readers expect a list to be
arranged. This package instead orders by total stroke count of the first
character, which is the ordering convention of Taiwanese dictionaries and
name lists.

Items are grouped into classes, which are ordered as follows:

	empty string
	ASCII digits (full-width digits are folded)
	Chinese numerals in lowercase style (一, 二, …) and uppercase style (壹, 貳, …)
	Chinese characters with a known stroke count
	everything else, by code point

Options control whether uppercase numerals sort before or after lowercase
numerals, whether numerals are treated as numbers at all, and which stroke
counting convention applies.

Only the first character of each item is compared. Items whose first
characters rank equal keep their input order, i.e. sorting is stable.

Example:

	sorted, err := sortzh.Sort([]string{"肆", "1", "一", "2", "二", "參", "正"}, sortzh.Options{})
	// sorted = [1 2 一 二 參 肆 正]

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package sortzh

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sortzh'
func tracer() tracing.Trace {
	return tracing.Select("sortzh")
}
