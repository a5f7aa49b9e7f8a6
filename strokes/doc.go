/*
Package strokes provides a read-only lookup table from Chinese characters to
their total stroke count.

The default table is compiled into the binary. It covers the CJK Unified
Ideographs block and the parts of Extensions A and B ordered by the CLDR
stroke collation for Chinese, from which it is generated (see gen.go). Its
source is a gzipped text file in the layout of the Unihan database field
kTotalStrokes:

	U+4E00	kTotalStrokes	1
	U+82B1	kTotalStrokes	7 8

The third field carries the count used in mainland China. An optional second
value carries the count used in Taiwan, where it differs (most often because
radicals like 艹 or 辶 are counted with one more stroke). Tables for other
data sets may be loaded with Load and NewReader.

Further Reading

	https://www.unicode.org/reports/tr38/#kTotalStrokes

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package strokes

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sortzh.strokes'
func tracer() tracing.Trace {
	return tracing.Select("sortzh.strokes")
}
