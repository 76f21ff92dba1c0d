package analyzer

import (
	"bytes"
	"flag"
	"os"
	"reflect"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"

	"jaytaylor.com/wikilinks/domain"
)

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Verbose() {
		log.SetLevel(log.DebugLevel)
	}
	os.Exit(m.Run())
}

func newGraph(links map[uint32][]uint32, titles map[uint32]string) *domain.Graph {
	g := domain.NewGraph()
	for id, l := range links {
		g.Add(&domain.Article{ID: id, Title: titles[id], Links: l})
	}
	return g
}

func TestAnalyzeDegreeRanking(t *testing.T) {
	g := newGraph(
		map[uint32][]uint32{1: {2, 3}, 2: {3}, 3: {}},
		map[uint32]string{1: "One", 2: "Two", 3: "Three"},
	)

	report := Analyze(g, DefaultTopN)

	expectedOut := []domain.Rank{
		{ID: 1, Title: "One", Degree: 2},
		{ID: 2, Title: "Two", Degree: 1},
		{ID: 3, Title: "Three", Degree: 0},
	}
	if actual := report.TopOutDegree; !reflect.DeepEqual(actual, expectedOut) {
		t.Errorf("Expected out-degree ranking=%+v but actual=%+v", expectedOut, actual)
	}
	expectedIn := []domain.Rank{
		{ID: 3, Title: "Three", Degree: 2},
		{ID: 2, Title: "Two", Degree: 1},
	}
	if actual := report.TopInDegree; !reflect.DeepEqual(actual, expectedIn) {
		t.Errorf("Expected in-degree ranking=%+v but actual=%+v", expectedIn, actual)
	}

	if expected, actual := 3, report.TotalArticles; actual != expected {
		t.Errorf("Expected total articles=%v but actual=%v", expected, actual)
	}
	if expected, actual := 3, report.TotalLinks; actual != expected {
		t.Errorf("Expected total links=%v but actual=%v", expected, actual)
	}
	if expected, actual := 2, report.ArticlesWithLinks; actual != expected {
		t.Errorf("Expected articles with links=%v but actual=%v", expected, actual)
	}
	if expected, actual := 2, report.UniqueTargets; actual != expected {
		t.Errorf("Expected unique targets=%v but actual=%v", expected, actual)
	}
	if expected, actual := 1.0, report.AverageOutDegree; actual != expected {
		t.Errorf("Expected average out-degree=%v but actual=%v", expected, actual)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	report := Analyze(domain.NewGraph(), DefaultTopN)

	if expected, actual := 0.0, report.AverageOutDegree; actual != expected {
		t.Errorf("Expected average out-degree=%v but actual=%v", expected, actual)
	}
	if expected, actual := 0, len(report.TopOutDegree); actual != expected {
		t.Errorf("Expected out-degree ranking length=%v but actual=%v", expected, actual)
	}
	if expected, actual := 0, len(report.TopInDegree); actual != expected {
		t.Errorf("Expected in-degree ranking length=%v but actual=%v", expected, actual)
	}
}

func TestAnalyzeTopNAndTies(t *testing.T) {
	links := map[uint32][]uint32{}
	for id := uint32(1); id <= 20; id++ {
		// Every article links once to 100, which is not itself an article.
		links[id] = []uint32{100}
	}
	links[7] = []uint32{100, 100, 3, 7}
	g := newGraph(links, map[uint32]string{7: "Seven"})

	testCases := []struct {
		topN     int
		outIDs   []uint32
		inIDs    []uint32
		outFirst domain.Rank
	}{
		{
			topN:     3,
			outIDs:   []uint32{7, 1, 2},
			inIDs:    []uint32{100, 3, 7},
			outFirst: domain.Rank{ID: 7, Title: "Seven", Degree: 4},
		},
		{
			topN:     1,
			outIDs:   []uint32{7},
			inIDs:    []uint32{100},
			outFirst: domain.Rank{ID: 7, Title: "Seven", Degree: 4},
		},
	}

	for i, testCase := range testCases {
		report := Analyze(g, testCase.topN)

		outIDs := []uint32{}
		for _, r := range report.TopOutDegree {
			outIDs = append(outIDs, r.ID)
		}
		if expected, actual := testCase.outIDs, outIDs; !reflect.DeepEqual(actual, expected) {
			t.Errorf("[i=%v] Expected out-degree ids=%v but actual=%v", i, expected, actual)
		}
		inIDs := []uint32{}
		for _, r := range report.TopInDegree {
			inIDs = append(inIDs, r.ID)
		}
		if expected, actual := testCase.inIDs, inIDs; !reflect.DeepEqual(actual, expected) {
			t.Errorf("[i=%v] Expected in-degree ids=%v but actual=%v", i, expected, actual)
		}
		if expected, actual := testCase.outFirst, report.TopOutDegree[0]; actual != expected {
			t.Errorf("[i=%v] Expected first out-degree rank=%+v but actual=%+v", i, expected, actual)
		}
	}

	report := Analyze(g, 0)
	if expected, actual := 23, report.TotalLinks; actual != expected {
		t.Errorf("Expected total links=%v but actual=%v", expected, actual)
	}
	if expected, actual := 3, report.UniqueTargets; actual != expected {
		t.Errorf("Expected unique targets=%v but actual=%v", expected, actual)
	}
	if expected, actual := domain.UnknownLabel(100), report.TopInDegree[0].Title; actual != expected {
		t.Errorf("Expected unknown label=%q but actual=%q", expected, actual)
	}
	if expected, actual := 21, report.TopInDegree[0].Degree; actual != expected {
		t.Errorf("Expected in-degree of 100=%v but actual=%v", expected, actual)
	}
}

func TestWriteText(t *testing.T) {
	g := newGraph(
		map[uint32][]uint32{1: {2, 3}, 2: {3}},
		map[uint32]string{1: "One", 2: "Two"},
	)

	buf := &bytes.Buffer{}
	if err := WriteText(buf, Analyze(g, DefaultTopN)); err != nil {
		t.Fatal(err)
	}

	expected := []string{
		"Total articles: 2\n",
		"Average links per article: 1.50\n",
		"Article: One, Outgoing links: 2\n",
		"Article: Unknown (ID: 3), Incoming links: 2\n",
	}
	for _, s := range expected {
		if !strings.Contains(buf.String(), s) {
			t.Errorf("Expected output to contain %q but actual=%q", s, buf.String())
		}
	}
}
