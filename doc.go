// Package wikilinks builds a graph of the internal links between the
// articles of a Wikipedia dump and computes degree statistics over it.
//
// Overview
//
// The system is comprised of the following component stages:
//
// 1. Seek index
//
// A multistream dump ships with an index file of offset:id:title lines.  Each
// offset marks the start of an independently decompressible bzip2 stream
// holding roughly a hundred pages.  Titles in denylisted namespaces
// (Category:, File:, Template: and friends) are dropped at load time.
//
// 2. Title resolution
//
// All surviving titles are folded to lower case and mapped to their article
// id, which lets link targets be resolved without touching the archive
// again.
//
// 3. Chunk processing
//
// The distinct offsets plus the archive size become a list of byte ranges.
// A bounded pool of workers reads one range each, decompresses it, parses
// its pages and resolves every [[link]] target.  Unknown targets are counted
// as red links and left out of the graph.
//
// 4. Links file
//
// One record per article is appended to links.bin:
//
//     article_id | title_length | title | link_count | link_ids... | 0xFFFFFFFF
//
// All integers are little-endian uint32.
//
// 5. Analysis
//
// The links file is read back into memory and summarized: totals, average
// out-degree and the top articles by out-degree and in-degree.
//
// Quick start
//
//     wikilinks index --dump-name enwiki-20240801 data/
//     wikilinks analyse
//     wikilinks store load && wikilinks store get "Anarchism"
//
package wikilinks
