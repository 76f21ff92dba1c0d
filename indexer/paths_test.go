package indexer

import (
	"testing"
)

func TestDumpPaths(t *testing.T) {
	testCases := []struct {
		dir     string
		name    string
		archive string
		index   string
	}{
		{
			dir:     "data",
			name:    "enwiki-20240801",
			archive: "data/enwiki-20240801-pages-articles-multistream.xml.bz2",
			index:   "data/enwiki-20240801-pages-articles-multistream-index.txt.bz2",
		},
		{
			dir:     "/mnt/dumps/",
			name:    DefaultDumpName,
			archive: "/mnt/dumps/enwiki-latest-pages-articles-multistream.xml.bz2",
			index:   "/mnt/dumps/enwiki-latest-pages-articles-multistream-index.txt.bz2",
		},
	}

	for i, testCase := range testCases {
		if expected, actual := testCase.archive, ArchivePath(testCase.dir, testCase.name); actual != expected {
			t.Errorf("[i=%v] Expected archive path=%v but actual=%v", i, expected, actual)
		}
		if expected, actual := testCase.index, IndexPath(testCase.dir, testCase.name); actual != expected {
			t.Errorf("[i=%v] Expected index path=%v but actual=%v", i, expected, actual)
		}
	}
}
