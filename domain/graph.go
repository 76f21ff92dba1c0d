package domain

// Graph is the in-memory form of a links file: adjacency by article id plus
// the id to title mapping.
type Graph struct {
	Links  map[uint32][]uint32
	Titles map[uint32]string
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	g := &Graph{
		Links:  map[uint32][]uint32{},
		Titles: map[uint32]string{},
	}
	return g
}

// Add inserts or replaces an article.
func (g *Graph) Add(a *Article) {
	links := a.Links
	if links == nil {
		links = []uint32{}
	}
	g.Links[a.ID] = links
	g.Titles[a.ID] = a.Title
}

// Len returns the number of distinct article ids.
func (g *Graph) Len() int {
	return len(g.Links)
}

// Label returns the title of id, or a placeholder naming the raw id.
func (g *Graph) Label(id uint32) string {
	if title, ok := g.Titles[id]; ok {
		return title
	}
	return UnknownLabel(id)
}
