package sortzh

import (
	"errors"
	"fmt"
)

// ErrInvalidEncoding is matched by errors for input which is not valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")

// EncodingError reports an input item which is not valid UTF-8.
type EncodingError struct {
	Index  int    // position of the item in the input
	Offset int    // byte offset of the first invalid sequence within the item
	Item   string // the offending item
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("item %d: invalid UTF-8 at byte %d", e.Index, e.Offset)
}

func (e *EncodingError) Unwrap() error {
	return ErrInvalidEncoding
}
