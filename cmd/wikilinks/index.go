package main

import (
	"errors"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"jaytaylor.com/wikilinks/domain"
	"jaytaylor.com/wikilinks/indexer"
)

var (
	MaxChunks       = indexer.DefaultMaxChunks
	SkipFailed      = indexer.DefaultSkipFailedChunks
	CPUProfiling    bool
	MemoryProfiling bool
	ProfilePath     = "."
	SummaryJSON     bool

	ErrProfilersExclusive = errors.New("only one of --cpu-profile and --mem-profile may be enabled")
)

func newIndexCmd() *cobra.Command {
	var workers int

	indexCmd := &cobra.Command{
		Use:   "index [data-path]",
		Short: "Build the links file",
		Long:  "Extracts every internal link of the dump, resolves link targets to article ids and writes the resulting graph to the links file",
		Args:  cobra.MaximumNArgs(1),
		PreRun: func(_ *cobra.Command, args []string) {
			initLogging()
			dataPathArg(args)
		},
		Run: func(cmd *cobra.Command, args []string) {
			if err := runIndex(workers); err != nil {
				log.Fatalf("main: %s", err)
			}
		},
	}

	indexCmd.Flags().IntVarP(&workers, "workers", "w", indexer.DefaultWorkers, "Number of concurrent chunk workers")
	indexCmd.Flags().IntVarP(&MaxChunks, "max-chunks", "m", MaxChunks, "Maximum number of chunks to process (<=0 signifies unlimited)")
	indexCmd.Flags().BoolVarP(&SkipFailed, "skip-failed", "s", SkipFailed, "Record failed chunks and continue instead of aborting the run")
	indexCmd.Flags().StringVarP(&OutputPath, "output", "o", OutputPath, "Links file destination")
	indexCmd.Flags().StringVarP(&DumpName, "dump-name", "n", DumpName, "Dump file name prefix, e.g. enwiki-20240801")
	indexCmd.Flags().BoolVarP(&CPUProfiling, "cpu-profile", "", CPUProfiling, "Enable the CPU profiler; creates a cpu.pprof file when the run finishes")
	indexCmd.Flags().BoolVarP(&MemoryProfiling, "mem-profile", "", MemoryProfiling, "Enable the memory profiler; creates a mem.pprof file when the run finishes")
	indexCmd.Flags().BoolVarP(&SummaryJSON, "json", "j", SummaryJSON, "Emit the run summary as JSON")

	return indexCmd
}

// runIndex performs an indexer run.  An enabled profiler is always stopped
// before runIndex returns, including on failure.
func runIndex(workers int) error {
	if CPUProfiling && MemoryProfiling {
		return ErrProfilersExclusive
	}
	if CPUProfiling {
		log.Debug("Starting CPU profiler")
		p := profile.Start(profile.CPUProfile, profile.ProfilePath(ProfilePath), profile.NoShutdownHook)
		defer func() {
			log.Debug("Stopping CPU profiler")
			p.Stop()
		}()
	}
	if MemoryProfiling {
		log.Debug("Starting memory profiler")
		p := profile.Start(profile.MemProfile, profile.ProfilePath(ProfilePath), profile.NoShutdownHook)
		defer func() {
			log.Debug("Stopping memory profiler")
			p.Stop()
		}()
	}

	cfg := newIndexerConfig()
	cfg.Workers = workers

	ctx, cancel := signalContext()
	defer cancel()

	summary, err := indexer.New(cfg).Run(ctx)
	if err != nil {
		return err
	}
	return reportSummary(summary)
}

func newIndexerConfig() *indexer.Config {
	cfg := indexer.NewConfig()
	cfg.ArchivePath = indexer.ArchivePath(DataPath, DumpName)
	cfg.IndexPath = indexer.IndexPath(DataPath, DumpName)
	cfg.OutputPath = OutputPath
	cfg.MaxChunks = MaxChunks
	cfg.SkipFailedChunks = SkipFailed
	cfg.Denylist = denylist()
	return cfg
}

func reportSummary(summary *domain.Summary) error {
	if SummaryJSON {
		return emitJSON(summary)
	}
	log.WithField("chunks", summary.Chunks).
		WithField("articles", summary.Articles).
		WithField("links", summary.Links).
		WithField("red-links", summary.RedLinks).
		WithField("redirects", summary.Redirects).
		WithField("written", summary.Written).
		WithField("failed", len(summary.Failures)).
		WithField("elapsed", summary.Elapsed()).
		Info("Run summary")
	return nil
}
