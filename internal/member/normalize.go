package member

import (
	"sort"
	"strings"
)

// NormalizeName produces the duplicate-detection form of a member name:
// case-folded, whitespace-collapsed, word-order-independent. "Jane Doe" and
// " doe   JANE " normalize to the same string.
func NormalizeName(name string) string {
	tokens := strings.Fields(strings.ToLower(name))
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
