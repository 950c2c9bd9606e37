// Package boxid finds the two box IDs that differ in exactly one position.
//
// Everything here is pure: callers pass identifiers in and get results or
// errors back, no I/O is performed.
package boxid

import (
	"fmt"
	"unicode/utf8"
)

// Length returns the number of characters in id. Each byte of an invalid
// UTF-8 sequence counts as one character.
func Length(id string) int {
	return utf8.RuneCountInString(id)
}

// Mask returns id with the character at position pos removed. Bytes that are
// not valid UTF-8 are kept as they are and count as one character each.
// It panics if pos is out of range, like slice indexing does.
func Mask(id string, pos int) string {
	off := 0
	for n := 0; n < pos && off < len(id); n++ {
		_, size := utf8.DecodeRuneInString(id[off:])
		off += size
	}
	if pos < 0 || off >= len(id) {
		panic(fmt.Sprintf("boxid: position %d out of range for %q", pos, id))
	}

	_, size := utf8.DecodeRuneInString(id[off:])
	return id[:off] + id[off+size:]
}
