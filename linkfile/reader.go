package linkfile

import (
	"encoding/binary"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"jaytaylor.com/wikilinks/domain"
)

// Decode walks buf from the start and invokes fn for every record.
//
// The walk must end exactly at len(buf); a short header, title, link array or
// separator, as well as a wrong separator value, yields a *FramingError.
func Decode(buf []byte, fn func(a *domain.Article) error) error {
	var (
		i int
		n = len(buf)
	)
	for i < n {
		a, size, err := decodeRecord(buf, i)
		if err != nil {
			return err
		}
		if err := fn(a); err != nil {
			return err
		}
		i += size
	}
	return nil
}

func decodeRecord(buf []byte, start int) (*domain.Article, int, error) {
	var (
		remaining = len(buf) - start
		at        = start
	)
	if remaining < 2*wordSize {
		return nil, 0, &FramingError{Offset: start, Reason: fmt.Sprintf("truncated header (%v bytes left)", remaining)}
	}
	id := binary.LittleEndian.Uint32(buf[at:])
	titleLen := uint64(binary.LittleEndian.Uint32(buf[at+wordSize:]))
	at += 2 * wordSize

	if uint64(len(buf)-at) < titleLen+wordSize {
		return nil, 0, &FramingError{Offset: start, Reason: fmt.Sprintf("title length %v overruns buffer", titleLen)}
	}
	title := string(buf[at : at+int(titleLen)])
	at += int(titleLen)

	linkCount := uint64(binary.LittleEndian.Uint32(buf[at:]))
	at += wordSize
	if uint64(len(buf)-at) < linkCount*wordSize+wordSize {
		return nil, 0, &FramingError{Offset: start, Reason: fmt.Sprintf("link count %v overruns buffer", linkCount)}
	}
	links := make([]uint32, linkCount)
	for j := range links {
		links[j] = binary.LittleEndian.Uint32(buf[at:])
		at += wordSize
	}

	if sep := binary.LittleEndian.Uint32(buf[at:]); sep != Separator {
		return nil, 0, &FramingError{Offset: start, Reason: fmt.Sprintf("expected separator %#x but found %#x", Separator, sep)}
	}
	at += wordSize

	a := &domain.Article{
		ID:    id,
		Title: title,
		Links: links,
	}
	return a, at - start, nil
}

// Parse decodes buf into an in-memory graph.  A later record for an id which
// was already seen replaces the earlier one.
func Parse(buf []byte) (*domain.Graph, error) {
	var (
		g       = domain.NewGraph()
		records int
	)
	if err := Decode(buf, func(a *domain.Article) error {
		records++
		g.Add(a)
		return nil
	}); err != nil {
		return nil, err
	}
	if dupes := records - g.Len(); dupes > 0 {
		log.WithField("records", records).WithField("duplicates", dupes).Warn("Links file contains repeated article ids")
	}
	return g, nil
}

// ReadFile loads and parses the links file at path.
func ReadFile(path string) (*domain.Graph, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	log.WithField("path", path).WithField("bytes", len(buf)).Debug("Read links file")
	g, err := Parse(buf)
	if err != nil {
		return nil, fmt.Errorf("parsing %v: %w", path, err)
	}
	return g, nil
}
