package domain

// IndexEntry is one (id, title) pair from the multistream index.
type IndexEntry struct {
	ID    uint32
	Title string
}

// Article is the link record for a single page: its id, canonical title and
// the resolved outgoing link ids.
//
// Links preserves markup order, duplicates and self-references.  Targets
// which could not be resolved are not present.
type Article struct {
	ID    uint32   `json:"id"`
	Title string   `json:"title"`
	Links []uint32 `json:"links"`
}

// NewArticle constructs an article with an empty (non-nil) links list.
func NewArticle(id uint32, title string) *Article {
	a := &Article{
		ID:    id,
		Title: title,
		Links: []uint32{},
	}
	return a
}
