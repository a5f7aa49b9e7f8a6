package sortzh

import (
	"fmt"
	"strings"

	"github.com/npillmayer/sortzh/strokes"
)

// DigitCaseOrder selects which numeral style sorts first when a list mixes
// lowercase (一, 二, …) and uppercase (壹, 貳, …) Chinese numerals.
type DigitCaseOrder uint8

const (
	LowercaseFirst DigitCaseOrder = iota // e.g. ["一", "二", "壹", "貳"] (default)
	UppercaseFirst                       // e.g. ["壹", "貳", "一", "二"]
)

// NumberOption selects how Chinese numerals are treated.
type NumberOption uint8

const (
	// NumbersWithCase sorts numerals by value, each style in a class of its
	// own, ordered by DigitCaseOrder (default).
	NumbersWithCase NumberOption = iota
	// NumbersByValue sorts numerals of both styles by value in one class.
	NumbersByValue
	// NumbersByStrokes treats numerals like any other Chinese character.
	NumbersByStrokes
)

// Variant selects the stroke counting convention.
type Variant = strokes.Variant

const (
	Traditional = strokes.Traditional // Taiwan (default)
	Simplified  = strokes.Simplified  // mainland China
)

// Options configures ordering. The zero value is the default configuration:
// traditional stroke counts, numerals sorted by value with lowercase numerals
// before uppercase numerals.
type Options struct {
	Variant        Variant        `yaml:"variant"`
	Numbers        NumberOption   `yaml:"numbers"`
	DigitCaseOrder DigitCaseOrder `yaml:"digit_case_order"`
}

func (o Options) String() string {
	return fmt.Sprintf("{variant=%s numbers=%s digits=%s}", o.Variant, o.Numbers, o.DigitCaseOrder)
}

func (d DigitCaseOrder) String() string {
	switch d {
	case LowercaseFirst:
		return "lowercase-first"
	case UppercaseFirst:
		return "uppercase-first"
	}
	return fmt.Sprintf("DigitCaseOrder(%d)", uint8(d))
}

// ParseDigitCaseOrder returns the order named s.
func ParseDigitCaseOrder(s string) (DigitCaseOrder, error) {
	switch normalize(s) {
	case "lowercase-first", "lower", "after":
		return LowercaseFirst, nil
	case "uppercase-first", "upper", "before":
		return UppercaseFirst, nil
	}
	return LowercaseFirst, fmt.Errorf("unknown digit case order %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d DigitCaseOrder) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DigitCaseOrder) UnmarshalText(text []byte) error {
	parsed, err := ParseDigitCaseOrder(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (n NumberOption) String() string {
	switch n {
	case NumbersWithCase:
		return "with-case"
	case NumbersByValue:
		return "by-value"
	case NumbersByStrokes:
		return "by-strokes"
	}
	return fmt.Sprintf("NumberOption(%d)", uint8(n))
}

// ParseNumberOption returns the number option named s.
func ParseNumberOption(s string) (NumberOption, error) {
	switch normalize(s) {
	case "with-case", "definition-with-uppercase":
		return NumbersWithCase, nil
	case "by-value", "definition":
		return NumbersByValue, nil
	case "by-strokes", "strokes":
		return NumbersByStrokes, nil
	}
	return NumbersWithCase, fmt.Errorf("unknown number option %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (n NumberOption) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *NumberOption) UnmarshalText(text []byte) error {
	parsed, err := ParseNumberOption(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "_", "-")
}
