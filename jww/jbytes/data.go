package jbytes

import (
	"fmt"
)

type (
	// Reader keeps an explicit position into an immutable byte slice.
	// Every read consumes exactly its fixed width; a read that would
	// pass the end of the slice fails without advancing.
	Reader struct {
		bs  []byte
		pos int
	}
	TruncatedError struct {
		Offset int
		Want   int
		Have   int
	}
)

func (e TruncatedError) Error() string {
	return fmt.Sprintf(
		"truncated data at offset %d: want %d more bytes, have %d",
		e.Offset, e.Want, e.Have,
	)
}
