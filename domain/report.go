package domain

import (
	"fmt"
)

// Rank is a single entry of a degree ranking.
type Rank struct {
	ID     uint32 `json:"id"`
	Title  string `json:"title"`
	Degree int    `json:"degree"`
}

// Report holds the aggregate degree statistics of a graph.
type Report struct {
	TotalArticles     int     `json:"total_articles"`
	TotalLinks        int     `json:"total_links"`
	ArticlesWithLinks int     `json:"articles_with_outgoing_links"`
	UniqueTargets     int     `json:"unique_link_targets"`
	AverageOutDegree  float64 `json:"average_out_degree"`
	TopOutDegree      []Rank  `json:"top_out_degree"`
	TopInDegree       []Rank  `json:"top_in_degree"`
}

// UnknownLabel is used in place of a title for ids absent from the graph.
func UnknownLabel(id uint32) string {
	return fmt.Sprintf("Unknown (ID: %v)", id)
}
