// Package titles resolves normalized link targets to article ids and article
// ids back to their canonical titles.
package titles

import (
	"strings"

	"jaytaylor.com/wikilinks/seekindex"
)

// Resolver holds the two lookup tables derived from a seek index.  It is
// never mutated after New returns and is safe for concurrent readers.
type Resolver struct {
	titleToID map[string]uint32
	idToTitle map[uint32]string
}

// Normalize folds a title into the form used for lookups.
func Normalize(title string) string {
	return strings.ToLower(title)
}

// New builds a resolver from every (id, title) pair in idx.
//
// When distinct ids normalize to the same title the smallest id wins, so the
// outcome does not depend on map iteration order.
func New(idx seekindex.SeekIndex) *Resolver {
	n := idx.NumArticles()
	r := &Resolver{
		titleToID: make(map[string]uint32, n),
		idToTitle: make(map[uint32]string, n),
	}
	for _, entries := range idx {
		for _, entry := range entries {
			key := Normalize(entry.Title)
			if existing, ok := r.titleToID[key]; !ok || entry.ID < existing {
				r.titleToID[key] = entry.ID
			}
			r.idToTitle[entry.ID] = entry.Title
		}
	}
	return r
}

// Lookup returns the id for an already normalized title.
func (r *Resolver) Lookup(normalized string) (uint32, bool) {
	id, ok := r.titleToID[normalized]
	return id, ok
}

// Title returns the canonical display title for id.
func (r *Resolver) Title(id uint32) (string, bool) {
	title, ok := r.idToTitle[id]
	return title, ok
}

// Len returns the number of distinct normalized titles.
func (r *Resolver) Len() int {
	return len(r.titleToID)
}

// NumIDs returns the number of distinct article ids.
func (r *Resolver) NumIDs() int {
	return len(r.idToTitle)
}
