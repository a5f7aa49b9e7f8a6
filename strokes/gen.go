//go:build ignore

// gen.go derives the embedded stroke table from the CLDR collation rules for
// Chinese stroke order (collation type "stroke" of locale zh).
//
// The rules open with a section anchored at [last regular]. It lists every
// character in stroke order, with one group per stroke count:
//
//	<'\uFDD0\u2801'<*一丨丶…<'\uFDD0\u2802'<*丁丂七…
//
// The second character of each group marker encodes the count as an offset
// from U+2800. Further sections of the form &A<<<B make B a tertiary variant
// of A (Kangxi radicals, circled ideographs) and give B the count of A.
//
// CLDR counts follow the Taiwan convention. Characters under the radicals
// 艸 and 辵 are written with one stroke less in mainland China; they get a
// second value.
//
//	go run gen.go -rules data/cldr-zh-stroke.txt -o data/kTotalStrokes.txt.gz
package main

import (
	"compress/gzip"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	lastRegular = "[last regular]"
	groupMarker = "<'\uFDD0"
)

// Code point ranges of characters under radical 140 (艸) and 162 (辵), not
// including the radicals themselves.
var mainlandShorter = [][2]rune{
	{0x4492, 0x4587}, // Ext. A, 艸
	{0x488A, 0x48B2}, // Ext. A, 辵
	{0x5DE1, 0x5DE1}, // 巡
	{0x8279, 0x864C}, // 艸
	{0x8FB6, 0x9090}, // 辵
	{0x9FA9, 0x9FA9}, // 艸
}

func main() {
	rulesFile := flag.String("rules", "data/cldr-zh-stroke.txt", "CLDR zh stroke collation rules")
	output := flag.String("o", "data/kTotalStrokes.txt.gz", "output file")
	flag.Parse()

	rules, err := os.ReadFile(*rulesFile)
	if err != nil {
		log.Fatal(err)
	}
	counts, err := parseRules(strings.TrimSpace(string(rules)))
	if err != nil {
		log.Fatal(err)
	}
	if err := write(*output, counts); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d characters to %s", len(counts), *output)
}

func parseRules(rules string) (map[rune]int, error) {
	sections := strings.Split(rules, "&")
	if len(sections) < 2 || !strings.HasPrefix(sections[1], lastRegular) {
		return nil, fmt.Errorf("rules do not contain a %s section", lastRegular)
	}
	counts := make(map[rune]int)
	body := strings.TrimPrefix(sections[1], lastRegular)
	strokes := 0
	for len(body) > 0 {
		switch {
		case strings.HasPrefix(body, groupMarker):
			body = body[len(groupMarker):]
			marker, size := utf8.DecodeRuneInString(body)
			if marker < 0x2801 || marker > 0x28FF || !strings.HasPrefix(body[size:], "'") {
				return nil, fmt.Errorf("malformed group marker near %q", truncate(body))
			}
			strokes = int(marker - 0x2800)
			body = body[size+1:]
		case strings.HasPrefix(body, "<*"):
			body = body[2:]
		default:
			ch, size := utf8.DecodeRuneInString(body)
			if strokes == 0 {
				return nil, fmt.Errorf("character %q outside of a stroke group", ch)
			}
			if _, ok := counts[ch]; !ok {
				counts[ch] = strokes
			}
			body = body[size:]
		}
	}
	for _, section := range sections[2:] {
		base, variant, ok := strings.Cut(section, "<<<")
		if !ok || utf8.RuneCountInString(base) != 1 || utf8.RuneCountInString(variant) != 1 {
			continue // multi-character expansions like '(一)'<<<㈠
		}
		b, _ := utf8.DecodeRuneInString(base)
		v, _ := utf8.DecodeRuneInString(variant)
		if n, ok := counts[b]; ok {
			if _, seen := counts[v]; !seen {
				counts[v] = n
			}
		}
	}
	return counts, nil
}

func mainland(ch rune, taiwan int) int {
	if taiwan < 2 {
		return taiwan
	}
	for _, r := range mainlandShorter {
		if ch >= r[0] && ch <= r[1] {
			return taiwan - 1
		}
	}
	return taiwan
}

func write(name string, counts map[rune]int) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	zw := gzip.NewWriter(f)
	fmt.Fprintln(zw, "# Total stroke counts in Unihan kTotalStrokes layout.")
	fmt.Fprintln(zw, "# Derived from the CLDR zh stroke collation rules by gen.go. DO NOT EDIT.")
	fmt.Fprintln(zw, "# The third field holds the mainland count, followed by the Taiwan count")
	fmt.Fprintln(zw, "# where the two differ.")
	chars := make([]rune, 0, len(counts))
	for ch := range counts {
		chars = append(chars, ch)
	}
	slices.Sort(chars)
	for _, ch := range chars {
		taiwan := counts[ch]
		if cn := mainland(ch, taiwan); cn != taiwan {
			fmt.Fprintf(zw, "U+%04X\tkTotalStrokes\t%d %d\n", ch, cn, taiwan)
		} else {
			fmt.Fprintf(zw, "U+%04X\tkTotalStrokes\t%d\n", ch, taiwan)
		}
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return f.Close()
}

func truncate(s string) string {
	if len(s) > 16 {
		return s[:16]
	}
	return s
}
