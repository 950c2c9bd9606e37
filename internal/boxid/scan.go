package boxid

import (
	"fmt"
	"strings"

	"github.com/ecodeclub/ekit/slice"
)

// Result is the outcome of a successful scan.
type Result struct {
	// Common is the identifier with Position removed, shared by both boxes.
	Common   string
	Position int
	// Pair holds the zero-based input indices of the two matching identifiers.
	Pair [2]int
}

// String renders the result as a two element list, e.g. ['fgij', 2].
func (r Result) String() string {
	return fmt.Sprintf("[%s, %d]", quote(r.Common), r.Position)
}

// quote wraps s in single quotes, switching to double quotes when s contains
// a single quote but no double quote.
func quote(s string) string {
	q := "'"
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		q = `"`
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, q, `\`+q)
	return q + s + q
}

// MaskAll removes position i from every identifier.
func MaskAll(ids []string, i int) []string {
	return slice.Map(ids, func(idx int, src string) string {
		return Mask(src, i)
	})
}

// FindCommon scans positions left to right and returns the first position at
// which two identifiers become equal once that position is removed.
//
// An empty set, or one whose identifiers differ in length, yields no result;
// Validate reports why.
func FindCommon(ids []string) (Result, bool) {
	return findCommon(ids, nil)
}

// findCommon is FindCommon with a hook invoked before each position is tried.
func findCommon(ids []string, visit func(pos int)) (Result, bool) {
	if len(ids) == 0 || !AllSameLength(ids) {
		return Result{}, false
	}

	for i := 0; i < Length(ids[0]); i++ {
		if visit != nil {
			visit(i)
		}
		masked := MaskAll(ids, i)
		common, ok := FindDuplicate(masked)
		if !ok {
			continue
		}
		return Result{
			Common:   common,
			Position: i,
			Pair:     indicesOf(masked, common),
		}, true
	}

	return Result{}, false
}
