// Package wikitext scans MediaWiki markup: it splits a decompressed dump block
// into pages and pulls the internal link targets out of each page's text.
package wikitext

import (
	"html"
	"strings"

	"jaytaylor.com/wikilinks/pkg/namespace"
	"jaytaylor.com/wikilinks/titles"
)

const (
	OpenLink     = "[["
	CloseLink    = "]]"
	AliasMarker  = "|"
	FragmentMark = "#"
)

// ExtractLinks returns the normalized targets of every `[[...]]` link in text,
// in order of appearance and with duplicates kept.
//
// Only the part before the first pipe and before the first fragment marker is
// kept.  Targets in a denied namespace are dropped.  Scanning ends at the
// first opening marker which has no closing marker after it.  Nesting is not
// understood: whatever lies between an opening marker and the next closing
// marker is taken literally.
func ExtractLinks(text string, deny namespace.Denylist) []string {
	var (
		links = []string{}
		pos   int
	)
	for {
		open := strings.Index(text[pos:], OpenLink)
		if open < 0 {
			break
		}
		start := pos + open + len(OpenLink)
		end := strings.Index(text[start:], CloseLink)
		if end < 0 {
			break
		}
		end += start

		target := text[start:end]
		if i := strings.Index(target, AliasMarker); i >= 0 {
			target = target[:i]
		}
		if i := strings.Index(target, FragmentMark); i >= 0 {
			target = target[:i]
		}
		target = titles.Normalize(html.UnescapeString(target))
		if !deny.Match(target) {
			links = append(links, target)
		}

		pos = end + len(CloseLink)
	}
	return links
}
