// Package indexer drives a full pass over a multistream dump: it loads the
// seek index, fans the archive blocks out to a bounded pool of chunk workers
// and writes the resulting link records to a single links file.
package indexer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"jaytaylor.com/wikilinks/domain"
	"jaytaylor.com/wikilinks/linkfile"
	"jaytaylor.com/wikilinks/pkg/namespace"
	"jaytaylor.com/wikilinks/seekindex"
	"jaytaylor.com/wikilinks/titles"
)

var (
	DefaultWorkers          = 8
	DefaultMaxChunks        = -1
	DefaultSkipFailedChunks = false
	DefaultProgressInterval = 100

	ErrInputMissing = errors.New("input file missing")
)

type Config struct {
	ArchivePath      string             // Multistream bzip2 XML archive.
	IndexPath        string             // Seek index, plain or bzip2 compressed.
	OutputPath       string             // Links file destination.
	Workers          int                // Number of concurrent chunk workers.
	MaxChunks        int                // Maximum number of chunks to process, <= 0 means all.
	SkipFailedChunks bool               // Record failed chunks and carry on instead of aborting.
	Denylist         namespace.Denylist // Namespaces excluded from pages and links.
	ProgressInterval int                // Log progress every N chunks.
}

func NewConfig() *Config {
	cfg := &Config{
		OutputPath:       linkfile.DefaultFileName,
		Workers:          DefaultWorkers,
		MaxChunks:        DefaultMaxChunks,
		SkipFailedChunks: DefaultSkipFailedChunks,
		Denylist:         namespace.Default(),
		ProgressInterval: DefaultProgressInterval,
	}
	return cfg
}

// ChunkFunc processes a single chunk.  Implementations report failure through
// the result rather than by panicking.
type ChunkFunc func(rng domain.ChunkRange) *domain.ChunkResult

type Indexer struct {
	Config *Config
}

func New(cfg *Config) *Indexer {
	if cfg == nil {
		cfg = NewConfig()
	}
	ix := &Indexer{
		Config: cfg,
	}
	return ix
}

// Prepared holds everything derived from the inputs before chunk processing
// starts.
type Prepared struct {
	Index    seekindex.SeekIndex
	Resolver *titles.Resolver
	Ranges   []domain.ChunkRange
}

// Prepare verifies the inputs, loads the seek index and derives the title
// resolver and the chunk ranges.
func (ix *Indexer) Prepare(ctx context.Context) (*Prepared, error) {
	if err := ix.checkInputs(); err != nil {
		return nil, err
	}

	start := time.Now()
	idx, err := seekindex.Load(ix.Config.IndexPath, ix.Config.Denylist)
	if err != nil {
		return nil, err
	}
	log.WithField("blocks", idx.Len()).WithField("entries", idx.NumArticles()).WithField("elapsed", time.Since(start)).Info("Loaded seek index")

	fi, err := os.Stat(ix.Config.ArchivePath)
	if err != nil {
		return nil, err
	}

	p := &Prepared{
		Index: idx,
	}

	start = time.Now()
	var g errgroup.Group
	g.Go(func() error {
		p.Resolver = titles.New(idx)
		return nil
	})
	g.Go(func() error {
		ranges, err := seekindex.Split(idx.Offsets(), uint64(fi.Size()))
		if err != nil {
			return err
		}
		p.Ranges = ranges
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.WithField("titles", p.Resolver.Len()).WithField("chunks", len(p.Ranges)).WithField("elapsed", time.Since(start)).Info("Built title resolver and chunk ranges")

	if limit := ix.Config.MaxChunks; limit > 0 && len(p.Ranges) > limit {
		log.WithField("max-chunks", limit).WithField("chunks", len(p.Ranges)).Info("Limiting number of chunks")
		p.Ranges = p.Ranges[0:limit]
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

// Run performs the full extraction and writes the links file.
//
// By default the first failed chunk cancels the remaining work and its error
// is returned.  With SkipFailedChunks every failure is recorded in the
// summary and the run carries on.
func (ix *Indexer) Run(ctx context.Context) (*domain.Summary, error) {
	log.WithField("archive", ix.Config.ArchivePath).WithField("index", ix.Config.IndexPath).Info("Indexer starting run")

	p, err := ix.Prepare(ctx)
	if err != nil {
		return nil, err
	}

	archive, err := os.Open(ix.Config.ArchivePath)
	if err != nil {
		return nil, err
	}
	defer archive.Close()

	writer, err := linkfile.Create(ix.Config.OutputPath)
	if err != nil {
		return nil, err
	}

	deny := ix.Config.Denylist
	process := func(rng domain.ChunkRange) *domain.ChunkResult {
		return ProcessChunk(archive, rng, p.Resolver, deny)
	}
	sink := func(result *domain.ChunkResult) error {
		return writer.AppendBatch(result.Articles)
	}

	summary, err := ix.aggregate(ctx, p.Ranges, process, sink)
	if closeErr := writer.Close(); closeErr != nil {
		if err == nil {
			err = closeErr
		} else {
			err = multierror.Append(err, closeErr)
		}
	}
	summary.IndexTitles = p.Resolver.Len()
	summary.Written = writer.Written()
	if err != nil {
		return summary, err
	}

	log.WithField("articles", summary.Articles).WithField("links", summary.Links).WithField("red-links", summary.RedLinks).WithField("written", summary.Written).WithField("elapsed", summary.Elapsed()).Info("Indexer run finished")
	return summary, nil
}

// aggregate is the single consumer of chunk results.  It folds every result
// into the summary and hands successful ones to sink, in arrival order.
func (ix *Indexer) aggregate(ctx context.Context, ranges []domain.ChunkRange, process ChunkFunc, sink func(result *domain.ChunkResult) error) (*domain.Summary, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		summary  = domain.NewSummary(len(ranges))
		failures *multierror.Error
		runErr   error
	)

	for result := range ix.dispatch(ctx, ranges, process) {
		if runErr != nil {
			// Draining in-flight workers after an abort.
			continue
		}
		summary.Merge(result)
		if result.Failed() {
			log.WithField("range", result.Range).Errorf("Chunk failed: %s", result.Err)
			failures = multierror.Append(failures, result.Err)
			if !ix.Config.SkipFailedChunks {
				runErr = fmt.Errorf("processing chunk %v: %w", result.Range, result.Err)
				cancel()
			}
			continue
		}
		if err := sink(result); err != nil {
			runErr = fmt.Errorf("storing chunk %v: %s", result.Range, err)
			cancel()
			continue
		}
		ix.progress(summary)
	}
	summary.Finish()

	if runErr == nil && summary.Processed < summary.Chunks {
		if err := ctx.Err(); err != nil {
			runErr = err
		}
	}
	if runErr == nil && failures != nil {
		log.WithField("failed", len(failures.Errors)).Warnf("Skipped failed chunks: %s", failures)
	}
	return summary, runErr
}

// dispatch runs process over every range on a pool of at most Workers
// goroutines.  The returned channel is closed once every started task has
// delivered its result.  No new tasks are started after ctx is done.
func (ix *Indexer) dispatch(ctx context.Context, ranges []domain.ChunkRange, process ChunkFunc) <-chan *domain.ChunkResult {
	workers := ix.Config.Workers
	if workers < 1 {
		workers = 1
	}
	results := make(chan *domain.ChunkResult, workers)

	go func() {
		defer close(results)

		var g errgroup.Group
		g.SetLimit(workers)
		for _, rng := range ranges {
			if ctx.Err() != nil {
				break
			}
			rng := rng
			g.Go(func() error {
				if ctx.Err() != nil {
					return nil
				}
				results <- process(rng)
				return nil
			})
		}
		g.Wait()
	}()

	return results
}

func (ix *Indexer) progress(summary *domain.Summary) {
	interval := ix.Config.ProgressInterval
	if interval <= 0 || summary.Processed%interval != 0 {
		return
	}
	log.WithField("processed", summary.Processed).WithField("chunks", summary.Chunks).WithField("articles", summary.Articles).WithField("elapsed", time.Since(*summary.StartedAt)).Info("Progress")
}

func (ix *Indexer) checkInputs() error {
	if _, err := os.Stat(ix.Config.ArchivePath); err != nil {
		return fmt.Errorf("%w: archive %v: %s", ErrInputMissing, ix.Config.ArchivePath, err)
	}
	if _, err := os.Stat(ix.Config.IndexPath); err != nil {
		if _, cacheErr := os.Stat(seekindex.CachePath(ix.Config.IndexPath)); cacheErr != nil {
			return fmt.Errorf("%w: index %v: %s", ErrInputMissing, ix.Config.IndexPath, err)
		}
	}
	return nil
}
