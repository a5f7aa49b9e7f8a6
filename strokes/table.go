package strokes

import (
	"bytes"
	"compress/gzip"
	_ "embed"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

//go:generate go run gen.go -rules data/cldr-zh-stroke.txt -o data/kTotalStrokes.txt.gz

// Variant selects between the stroke counting conventions of Taiwan and
// mainland China.
type Variant uint8

const (
	Traditional Variant = iota // Taiwan convention (default)
	Simplified                 // mainland China convention
)

func (v Variant) String() string {
	switch v {
	case Traditional:
		return "traditional"
	case Simplified:
		return "simplified"
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// EntryReader yields stroke count entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type EntryReader interface {
	Next() (ch rune, counts []int, err error)
}

// Table is a frozen mapping from characters to stroke counts.
// A Table is never modified after Load returns and may be shared between
// goroutines without locking.
type Table struct {
	bmp        pagedMap
	astral     map[rune]uint16 // characters outside the BMP, e.g. CJK Ext. B
	size       int
	Identifier string // Identifies the data set
}

//go:embed data/kTotalStrokes.txt.gz
var defaultData []byte

var defaultTable = sync.OnceValue(func() *Table {
	zr, err := gzip.NewReader(bytes.NewReader(defaultData))
	assert(err == nil, fmt.Sprintf("embedded stroke data is corrupt: %v", err))
	defer zr.Close()
	table, err := Load("kTotalStrokes", NewReader(zr))
	assert(err == nil, fmt.Sprintf("embedded stroke data is corrupt: %v", err))
	return table
})

// Default returns the table built from the stroke data compiled into this
// package. It is parsed on first use.
func Default() *Table {
	return defaultTable()
}

// Load builds a table from a streaming source. If a character occurs more
// than once, the last entry wins.
func Load(name string, reader EntryReader) (*Table, error) {
	table := &Table{
		astral:     make(map[rune]uint16),
		Identifier: fmt.Sprintf("strokes: %s", name),
	}
	for {
		ch, counts, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			tracer().Errorf("loading %s: %v", name, err)
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if !utf8.ValidRune(ch) {
			tracer().Errorf("loading %s: invalid character U+%04X", name, ch)
			return nil, fmt.Errorf("%s: invalid character U+%04X: %w", name, ch, ErrMalformedEntry)
		}
		if len(counts) == 0 {
			continue
		}
		mainland, taiwan := counts[0], counts[0]
		if len(counts) > 1 {
			taiwan = counts[1]
		}
		if mainland < 1 || mainland > MaxStrokes || taiwan < 1 || taiwan > MaxStrokes {
			tracer().Errorf("loading %s: stroke count out of range for %q: %v", name, ch, counts)
			return nil, fmt.Errorf("%s: stroke count out of range for %q: %w", name, ch, ErrMalformedEntry)
		}
		table.put(ch, pack(mainland, taiwan))
	}
	stats := table.Stats()
	tracer().Infof("stroke table %s: entries=%d pages=%d astral=%d",
		name, stats.Entries, stats.Pages, stats.Astral)
	return table, nil
}

func (t *Table) put(ch rune, entry uint16) {
	if ch <= 0xFFFF {
		if t.bmp.Get(uint16(ch)) == 0 {
			t.size++
		}
		t.bmp.Set(uint16(ch), entry)
		return
	}
	if _, ok := t.astral[ch]; !ok {
		t.size++
	}
	t.astral[ch] = entry
}

// Lookup returns the stroke count of ch under convention v. It returns false
// for every character not present in the table, including ASCII and
// punctuation.
//
// CJK compatibility ideographs without an entry of their own take the count
// of their canonical equivalent, e.g. U+F900 is looked up as U+8C48 豈.
func (t *Table) Lookup(ch rune, v Variant) (int, bool) {
	if t == nil || ch < 0 {
		return 0, false
	}
	entry := t.get(ch)
	if entry == 0 && isCompatibilityIdeograph(ch) {
		entry = t.get(canonical(ch))
	}
	if entry == 0 {
		return 0, false
	}
	return unpack(entry, v), true
}

func (t *Table) get(ch rune) uint16 {
	if ch <= 0xFFFF {
		return t.bmp.Get(uint16(ch))
	}
	return t.astral[ch]
}

func isCompatibilityIdeograph(ch rune) bool {
	return (ch >= 0xF900 && ch <= 0xFAFF) || (ch >= 0x2F800 && ch <= 0x2FA1F)
}

// canonical maps ch to its NFC singleton, or to itself if there is none.
func canonical(ch rune) rune {
	s := string(ch)
	if folded := norm.NFC.String(s); folded != s {
		if r, size := utf8.DecodeRuneInString(folded); size == len(folded) {
			return r
		}
	}
	return ch
}

// Len returns the number of characters in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// TableStats reports size metrics for a table.
type TableStats struct {
	Entries int // characters in the table
	Pages   int // allocated BMP pages
	Astral  int // characters outside the BMP
	Bytes   int // approximate memory held by BMP pages
}

// Stats returns size metrics for t.
func (t *Table) Stats() TableStats {
	if t == nil {
		return TableStats{}
	}
	return TableStats{
		Entries: t.size,
		Pages:   t.bmp.NumPages(),
		Astral:  len(t.astral),
		Bytes:   len(t.bmp.Pages)*2 + len(t.bmp.Top)*2,
	}
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// ParseVariant returns the variant named s ("traditional" or "simplified").
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "traditional", "zh-tw", "zh-hant":
		return Traditional, nil
	case "simplified", "zh-cn", "zh-hans":
		return Simplified, nil
	}
	return Traditional, fmt.Errorf("unknown Chinese variant %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
