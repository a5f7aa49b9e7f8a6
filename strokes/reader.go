package strokes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedEntry is returned (wrapped) for lines which are not valid
// kTotalStrokes records.
var ErrMalformedEntry = errors.New("malformed stroke count entry")

// MaxStrokes is the largest stroke count a table is able to hold.
const MaxStrokes = 255

// Reader streams stroke count entries from Unihan-style text.
//
// Lines starting with '#' and empty lines are skipped, as are records of
// Unihan fields other than kTotalStrokes. This makes it possible to feed
// Unihan_IRGSources.txt unchanged.
type Reader struct {
	scanner *bufio.Scanner
	line    int
	counts  []int
}

// NewReader creates a reader for kTotalStrokes records.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
		counts:  make([]int, 0, 2),
	}
}

// Next returns the next entry as (character, counts). counts has one element
// if mainland and Taiwan agree, two otherwise. It returns io.EOF when
// exhausted. The returned slice is reused by subsequent calls.
func (r *Reader) Next() (rune, []int, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return 0, nil, r.malformed("expected 3 tab-separated fields, have %d", len(fields))
		}
		if fields[1] != "kTotalStrokes" {
			continue
		}
		ch, err := r.decodeCodePoint(fields[0])
		if err != nil {
			return 0, nil, err
		}
		if err = r.decodeCounts(fields[2]); err != nil {
			return 0, nil, err
		}
		return ch, r.counts, nil
	}
	if err := r.scanner.Err(); err != nil {
		return 0, nil, err
	}
	return 0, nil, io.EOF
}

func (r *Reader) decodeCodePoint(field string) (rune, error) {
	hex, ok := strings.CutPrefix(field, "U+")
	if !ok {
		return 0, r.malformed("code point %q lacks U+ prefix", field)
	}
	cp, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || cp > 0x10FFFF {
		return 0, r.malformed("invalid code point %q", field)
	}
	return rune(cp), nil
}

func (r *Reader) decodeCounts(field string) error {
	r.counts = r.counts[:0]
	values := strings.Fields(field)
	if len(values) == 0 || len(values) > 2 {
		return r.malformed("expected 1 or 2 stroke counts, have %d", len(values))
	}
	for _, v := range values {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > MaxStrokes {
			return r.malformed("invalid stroke count %q", v)
		}
		r.counts = append(r.counts, n)
	}
	return nil
}

func (r *Reader) malformed(format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", r.line, fmt.Sprintf(format, args...), ErrMalformedEntry)
}
