// Package analyzer computes degree statistics over a reconstructed link graph.
package analyzer

import (
	"fmt"
	"io"

	"github.com/RoaringBitmap/roaring"
	log "github.com/sirupsen/logrus"

	"jaytaylor.com/wikilinks/domain"
)

var DefaultTopN = 10

// Analyze computes the totals and the two degree rankings of g.
//
// The out-degree ranking considers every article, including those without
// links.  The in-degree ranking only considers ids which appear as a link
// target at least once.  Both are ordered by degree descending with ties
// resolved by ascending id, and hold at most topN entries (all entries when
// topN <= 0).
func Analyze(g *domain.Graph, topN int) *domain.Report {
	var (
		report  = &domain.Report{}
		targets = roaring.New()
		in      = map[uint32]int{}
		outHeap = domain.NewRanksHeap(domain.RanksByDegree, topN)
		inHeap  = domain.NewRanksHeap(domain.RanksByDegree, topN)
	)

	report.TotalArticles = g.Len()
	for id, links := range g.Links {
		report.TotalLinks += len(links)
		if len(links) > 0 {
			report.ArticlesWithLinks++
		}
		targets.AddMany(links)
		for _, target := range links {
			in[target]++
		}
		outHeap.RankPush(&domain.Rank{
			ID:     id,
			Degree: len(links),
		})
	}
	report.UniqueTargets = int(targets.GetCardinality())

	if report.TotalArticles > 0 {
		report.AverageOutDegree = float64(report.TotalLinks) / float64(report.TotalArticles)
	}

	for id, degree := range in {
		inHeap.RankPush(&domain.Rank{
			ID:     id,
			Degree: degree,
		})
	}

	report.TopOutDegree = label(g, outHeap.Slice())
	report.TopInDegree = label(g, inHeap.Slice())

	log.WithField("articles", report.TotalArticles).WithField("links", report.TotalLinks).WithField("targets", report.UniqueTargets).Debug("Analyzed graph")
	return report
}

func label(g *domain.Graph, ranks []domain.Rank) []domain.Rank {
	for i := range ranks {
		ranks[i].Title = g.Label(ranks[i].ID)
	}
	return ranks
}

// WriteText renders report in human readable form.
func WriteText(w io.Writer, report *domain.Report) error {
	var err error
	printf := func(format string, args ...interface{}) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, args...)
	}

	printf("Total articles: %v\n", report.TotalArticles)
	printf("Total links: %v\n", report.TotalLinks)
	printf("Articles with outgoing links: %v\n", report.ArticlesWithLinks)
	printf("Unique link targets: %v\n", report.UniqueTargets)
	printf("Average links per article: %.2f\n", report.AverageOutDegree)

	printf("\nTop %v articles with most outgoing links:\n", len(report.TopOutDegree))
	for _, r := range report.TopOutDegree {
		printf("Article: %v, Outgoing links: %v\n", r.Title, r.Degree)
	}

	printf("\nTop %v articles with most incoming links:\n", len(report.TopInDegree))
	for _, r := range report.TopInDegree {
		printf("Article: %v, Incoming links: %v\n", r.Title, r.Degree)
	}
	return err
}
