// Package seekindex loads the multistream index which maps compressed block
// offsets of the archive to the articles stored inside each block.
package seekindex

import (
	"bufio"
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"jaytaylor.com/wikilinks/domain"
	"jaytaylor.com/wikilinks/pkg/namespace"
)

// MaxLineSize bounds a single index line.
var MaxLineSize = 1024 * 1024

var ErrOffsetBeyondEOF = errors.New("block offset lies beyond end of archive")

// SeekIndex maps a block byte offset to the articles stored in that block, in
// file order.
type SeekIndex map[uint64][]domain.IndexEntry

// ParseError describes an index line whose numeric fields are malformed.
type ParseError struct {
	Line  int
	Field string
	Err   error
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("index line %v: parsing %v: %s", pe.Line, pe.Field, pe.Err)
}

func (pe *ParseError) Unwrap() error {
	return pe.Err
}

// Parse reads `offset:id:title` lines.
//
// A line without exactly three fields is skipped, whereas an unparseable
// offset or id aborts the whole load.  Titles are entity-decoded, and those
// matched by deny are dropped.
func Parse(r io.Reader, deny namespace.Denylist) (SeekIndex, error) {
	var (
		scanner = bufio.NewScanner(r)
		idx     = SeekIndex{}
		lineNo  int
		skipped int
		denied  int
	)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	for scanner.Scan() {
		lineNo++
		parts := strings.SplitN(scanner.Text(), ":", 3)
		if len(parts) != 3 {
			skipped++
			continue
		}

		offset, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Field: "offset", Err: err}
		}
		id, err := strconv.ParseUint(parts[1], 10, 32)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Field: "id", Err: err}
		}

		title := html.UnescapeString(parts[2])
		if deny.Match(title) {
			denied++
			continue
		}

		idx[offset] = append(idx[offset], domain.IndexEntry{
			ID:    uint32(id),
			Title: title,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading index line %v: %s", lineNo+1, err)
	}

	log.WithField("lines", lineNo).WithField("skipped", skipped).WithField("denied", denied).WithField("blocks", len(idx)).Debug("Parsed seek index")
	return idx, nil
}

// Load opens and parses the index at path.  A bzip2 compressed index is
// decompressed once into CachePath(path) and read from there afterwards.
func Load(path string, deny namespace.Denylist) (SeekIndex, error) {
	src, err := Materialize(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	idx, err := Parse(f, deny)
	if err != nil {
		return nil, fmt.Errorf("loading %v: %w", src, err)
	}
	return idx, nil
}

// Len returns the number of distinct block offsets.
func (idx SeekIndex) Len() int {
	return len(idx)
}

// NumArticles returns the number of (id, title) pairs across all blocks.
func (idx SeekIndex) NumArticles() int {
	n := 0
	for _, entries := range idx {
		n += len(entries)
	}
	return n
}

// Offsets returns every block offset, in no particular order.
func (idx SeekIndex) Offsets() []uint64 {
	offsets := make([]uint64, 0, len(idx))
	for offset := range idx {
		offsets = append(offsets, offset)
	}
	return offsets
}
