package indexer

import (
	"path/filepath"
)

var DefaultDumpName = "enwiki-latest"

const (
	ArchiveSuffix = "-pages-articles-multistream.xml.bz2"
	IndexSuffix   = "-pages-articles-multistream-index.txt.bz2"
)

// ArchivePath returns the location of the multistream archive of the named
// dump inside dir, e.g. data/enwiki-20240801-pages-articles-multistream.xml.bz2.
func ArchivePath(dir string, dumpName string) string {
	return filepath.Join(dir, dumpName+ArchiveSuffix)
}

// IndexPath returns the location of the compressed seek index of the named
// dump inside dir.
func IndexPath(dir string, dumpName string) string {
	return filepath.Join(dir, dumpName+IndexSuffix)
}
