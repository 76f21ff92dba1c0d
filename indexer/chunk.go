package indexer

import (
	"bytes"
	"compress/bzip2"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"jaytaylor.com/wikilinks/domain"
	"jaytaylor.com/wikilinks/pkg/namespace"
	"jaytaylor.com/wikilinks/titles"
	"jaytaylor.com/wikilinks/wikitext"
)

var (
	ErrShortRead  = errors.New("short read")
	ErrInvalidUTF = errors.New("decompressed block is not valid UTF-8")
)

// ReadChunk reads exactly rng.Len() bytes at rng.Start.
func ReadChunk(archive io.ReaderAt, rng domain.ChunkRange) ([]byte, error) {
	buf := make([]byte, rng.Len())
	n, err := archive.ReadAt(buf, int64(rng.Start))
	if n == len(buf) {
		return buf, nil
	}
	if err == nil || err == io.EOF {
		err = ErrShortRead
	}
	return nil, fmt.Errorf("reading chunk %v: got %v of %v bytes: %w", rng, n, len(buf), err)
}

// LoadPages reads, decompresses and parses the pages of a single block.
func LoadPages(archive io.ReaderAt, rng domain.ChunkRange) ([]*wikitext.Page, error) {
	compressed, err := ReadChunk(archive, rng)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(bzip2.NewReader(bytes.NewReader(compressed)))
	if err != nil {
		return nil, fmt.Errorf("decompressing chunk %v: %s", rng, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("chunk %v: %w", rng, ErrInvalidUTF)
	}

	pages := []*wikitext.Page{}
	if err := wikitext.ParsePages(bytes.NewReader(data), func(page *wikitext.Page) error {
		pages = append(pages, page)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("chunk %v: %s", rng, err)
	}
	return pages, nil
}

// ProcessChunk turns one archive block into link records.
//
// Any failure is reported through the returned result's Err field.
func ProcessChunk(archive io.ReaderAt, rng domain.ChunkRange, resolver *titles.Resolver, deny namespace.Denylist) (result *domain.ChunkResult) {
	defer func() {
		if r := recover(); r != nil {
			result = domain.NewChunkFailure(rng, fmt.Errorf("chunk %v: panic: %v", rng, r))
		}
	}()

	pages, err := LoadPages(archive, rng)
	if err != nil {
		return domain.NewChunkFailure(rng, err)
	}
	return processPages(rng, pages, resolver, deny)
}

// processPages builds the records of already parsed pages.
//
// Pages whose title falls in a denied namespace are skipped entirely.  Each
// extracted target counts towards Links; targets unknown to resolver count
// towards RedLinks and are left out of the record.
func processPages(rng domain.ChunkRange, pages []*wikitext.Page, resolver *titles.Resolver, deny namespace.Denylist) *domain.ChunkResult {
	result := &domain.ChunkResult{
		Range:    rng,
		Articles: make([]*domain.Article, 0, len(pages)),
	}
	for _, page := range pages {
		if deny.Match(page.Title) {
			continue
		}
		if !page.HasID {
			log.WithField("chunk", rng).WithField("title", page.Title).Debug("Page has no id, recording it as id 0")
		}
		title, ok := resolver.Title(page.ID)
		if !ok {
			title = page.Title
		}
		article := domain.NewArticle(page.ID, title)

		targets := wikitext.ExtractLinks(page.Text, deny)
		for _, target := range targets {
			if id, ok := resolver.Lookup(target); ok {
				article.Links = append(article.Links, id)
			} else {
				result.RedLinks++
			}
		}
		if page.Redirect != "" {
			result.Redirects++
		}
		result.Links += len(targets)
		result.Pages++
		result.Articles = append(result.Articles, article)
	}
	return result
}
