package contains

import (
	"strings"
)

// Prefix returns true if s begins with any of the items.  Empty items never
// match.
func Prefix(items []string, s string) bool {
	for _, item := range items {
		if len(item) > 0 && strings.HasPrefix(s, item) {
			return true
		}
	}
	return false
}
