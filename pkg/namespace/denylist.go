// Package namespace decides which wiki titles live outside the article
// namespace and must be left out of the link graph.
package namespace

import (
	"strings"

	"jaytaylor.com/wikilinks/pkg/contains"
	"jaytaylor.com/wikilinks/pkg/unique"
)

// DefaultPrefixes are the namespaces excluded from the graph unless a caller
// supplies its own policy.
var DefaultPrefixes = []string{
	"Category:",
	"Wikipedia:",
	"File:",
	"Template:",
	"Draft:",
	"Portal:",
	"Module:",
}

// Denylist is an immutable set of title prefixes.  Matching folds case, since
// link targets are compared in their normalized (lower-case) form.
type Denylist struct {
	prefixes []string
}

// New constructs a Denylist from the given prefixes.  Blank prefixes are
// ignored.
func New(prefixes ...string) Denylist {
	folded := make([]string, 0, len(prefixes))
	for _, prefix := range prefixes {
		if prefix = strings.ToLower(prefix); len(prefix) > 0 {
			folded = append(folded, prefix)
		}
	}
	return Denylist{prefixes: unique.Strings(folded)}
}

// Default returns a Denylist populated with DefaultPrefixes.
func Default() Denylist {
	return New(DefaultPrefixes...)
}

// Match returns true when title begins with one of the denied prefixes.
func (d Denylist) Match(title string) bool {
	if len(d.prefixes) == 0 {
		return false
	}
	return contains.Prefix(d.prefixes, strings.ToLower(title))
}

// Prefixes returns a copy of the (folded) prefixes.
func (d Denylist) Prefixes() []string {
	out := make([]string, len(d.prefixes))
	copy(out, d.prefixes)
	return out
}
