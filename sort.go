package sortzh

import (
	"slices"
	"unicode/utf8"
)

// Sort returns a new slice holding items in collation order. items is not
// modified.
//
// Sorting is stable: items comparing equal keep their relative input order.
// If any item is not valid UTF-8, Sort returns an *EncodingError and no
// result.
func Sort(items []string, opts Options) ([]string, error) {
	return NewCollator(opts).Sort(items)
}

// Sort returns a new slice holding items in collation order. See Sort.
func (c *Collator) Sort(items []string) ([]string, error) {
	sorted := slices.Clone(items)
	if err := c.SortInPlace(sorted); err != nil {
		return nil, err
	}
	return sorted, nil
}

// SortInPlace sorts items in collation order. If any item is not valid
// UTF-8, items is left unchanged and an *EncodingError is returned.
func (c *Collator) SortInPlace(items []string) error {
	if err := validate(items); err != nil {
		tracer().Errorf("refusing to sort: %v", err)
		return err
	}
	tracer().Debugf("sorting %d items with options %s", len(items), c.opts)
	type keyed struct {
		key  Key
		item string
	}
	decorated := make([]keyed, len(items))
	for i, item := range items {
		decorated[i] = keyed{key: c.KeyOf(item), item: item}
	}
	slices.SortStableFunc(decorated, func(a, b keyed) int {
		return a.key.Compare(b.key)
	})
	for i := range decorated {
		items[i] = decorated[i].item
	}
	return nil
}

func validate(items []string) error {
	for i, item := range items {
		if utf8.ValidString(item) {
			continue
		}
		offset := 0
		for offset < len(item) {
			ch, size := utf8.DecodeRuneInString(item[offset:])
			if ch == utf8.RuneError && size == 1 {
				break
			}
			offset += size
		}
		return &EncodingError{Index: i, Offset: offset, Item: item}
	}
	return nil
}
