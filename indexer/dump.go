package indexer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"jaytaylor.com/wikilinks/domain"
	"jaytaylor.com/wikilinks/wikitext"
)

var DefaultDumpDir = "articles"

// Dumper writes the raw markup of every page to its own file, named after
// the page id.
type Dumper struct {
	Indexer *Indexer
	Dir     string
}

func NewDumper(cfg *Config, dir string) *Dumper {
	if dir == "" {
		dir = DefaultDumpDir
	}
	d := &Dumper{
		Indexer: New(cfg),
		Dir:     dir,
	}
	return d
}

// DumpPath returns the file a page with the given id is written to.
func (d *Dumper) DumpPath(id uint32) string {
	return filepath.Join(d.Dir, fmt.Sprintf("%d.txt", id))
}

// Run dumps every page of the archive.  Failed chunks are handled the same
// way as in Indexer.Run.
func (d *Dumper) Run(ctx context.Context) (*domain.Summary, error) {
	cfg := d.Indexer.Config
	log.WithField("archive", cfg.ArchivePath).WithField("dir", d.Dir).Info("Dumper starting run")

	p, err := d.Indexer.Prepare(ctx)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(d.Dir, os.FileMode(int(0755))); err != nil {
		return nil, err
	}

	archive, err := os.Open(cfg.ArchivePath)
	if err != nil {
		return nil, err
	}
	defer archive.Close()

	written := 0
	process := func(rng domain.ChunkRange) *domain.ChunkResult {
		return d.dumpChunk(archive, rng)
	}
	sink := func(result *domain.ChunkResult) error {
		written += result.Pages
		return nil
	}

	summary, err := d.Indexer.aggregate(ctx, p.Ranges, process, sink)
	summary.IndexTitles = p.Resolver.Len()
	summary.Written = written
	if err != nil {
		return summary, err
	}
	log.WithField("written", summary.Written).WithField("elapsed", summary.Elapsed()).Info("Dumper run finished")
	return summary, nil
}

func (d *Dumper) dumpChunk(archive io.ReaderAt, rng domain.ChunkRange) *domain.ChunkResult {
	pages, err := LoadPages(archive, rng)
	if err != nil {
		return domain.NewChunkFailure(rng, err)
	}

	result := &domain.ChunkResult{
		Range: rng,
	}
	for _, page := range pages {
		if d.Indexer.Config.Denylist.Match(page.Title) {
			continue
		}
		if err := d.writePage(page); err != nil {
			return domain.NewChunkFailure(rng, err)
		}
		result.Pages++
	}
	return result
}

func (d *Dumper) writePage(page *wikitext.Page) error {
	f, err := os.Create(d.DumpPath(page.ID))
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f, "%s\n\n%s", page.Title, page.Text); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
