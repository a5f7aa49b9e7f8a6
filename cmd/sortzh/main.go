// Command sortzh sorts lines of Chinese text by stroke count.
//
// Usage:
//
//	sortzh [flags] [file ...]
//
// Lines are read from the files given, or from stdin if there are none. An
// argument "-" reads stdin in its place. Sorted lines are written to stdout.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"

	"github.com/npillmayer/sortzh"
)

// tracer writes to trace with key 'sortzh.cmd'
func tracer() tracing.Trace {
	return tracing.Select("sortzh.cmd")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run returns the exit status: 0 on success, 1 for input or I/O errors and
// 2 for usage errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sortzh", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		flagConfig    string
		flagDigitCase string
		flagNumbers   string
		flagVariant   string
	)
	fs.StringVar(&flagConfig, "config", "", "YAML file with sort options")
	fs.StringVar(&flagDigitCase, "digit-case-order", "", "numeral order: lowercase-first (一, 二, …) or uppercase-first (壹, 貳, …)")
	fs.StringVar(&flagNumbers, "numbers", "", "numeral handling: with-case, by-value or by-strokes")
	fs.StringVar(&flagVariant, "variant", "", "stroke counting convention: traditional or simplified")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	opts, err := loadOptions(flagConfig)
	if err != nil {
		fmt.Fprintf(stderr, "sortzh: %v\n", err)
		return 2
	}
	if flagDigitCase != "" {
		if opts.DigitCaseOrder, err = sortzh.ParseDigitCaseOrder(flagDigitCase); err != nil {
			fmt.Fprintf(stderr, "sortzh: %v\n", err)
			return 2
		}
	}
	if flagNumbers != "" {
		if opts.Numbers, err = sortzh.ParseNumberOption(flagNumbers); err != nil {
			fmt.Fprintf(stderr, "sortzh: %v\n", err)
			return 2
		}
	}
	if flagVariant != "" {
		if err = opts.Variant.UnmarshalText([]byte(flagVariant)); err != nil {
			fmt.Fprintf(stderr, "sortzh: %v\n", err)
			return 2
		}
	}
	lines, err := readLines(fs.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "sortzh: %v\n", err)
		return 1
	}
	sorted, err := sortzh.Sort(lines, opts)
	if err != nil {
		var encErr *sortzh.EncodingError
		if errors.As(err, &encErr) {
			err = fmt.Errorf("line %d: %w", encErr.Index+1, err)
		}
		tracer().Errorf("sort failed: %v", err)
		fmt.Fprintf(stderr, "sortzh: %v\n", err)
		return 1
	}
	w := bufio.NewWriter(stdout)
	for _, line := range sorted {
		w.WriteString(line)
		w.WriteByte('\n')
	}
	if err = w.Flush(); err != nil {
		fmt.Fprintf(stderr, "sortzh: %v\n", err)
		return 1
	}
	return 0
}

// loadOptions reads options from a YAML file. An empty path yields the
// default options. Unknown keys are rejected.
func loadOptions(path string) (sortzh.Options, error) {
	var opts sortzh.Options
	if path == "" {
		return opts, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return opts, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&opts); err != nil && err != io.EOF {
		return opts, fmt.Errorf("config %s: %w", path, err)
	}
	tracer().Debugf("options from %s: %s", path, opts)
	return opts, nil
}

func readLines(files []string, stdin io.Reader) ([]string, error) {
	if len(files) == 0 {
		return scanLines(stdin, nil)
	}
	var lines []string
	for _, name := range files {
		if name == "-" {
			var err error
			if lines, err = scanLines(stdin, lines); err != nil {
				return nil, fmt.Errorf("stdin: %w", err)
			}
			continue
		}
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		lines, err = scanLines(f, lines)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return lines, nil
}

func scanLines(r io.Reader, lines []string) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
