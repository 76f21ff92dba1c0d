package main

import (
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"jaytaylor.com/wikilinks/indexer"
)

var DumpDir string

func newDumpCmd() *cobra.Command {
	dumpCmd := &cobra.Command{
		Use:   "dump [data-path]",
		Short: "Write article text files",
		Long:  "Writes the raw markup of every article to <id>.txt, defaulting to the articles directory under the data path",
		Args:  cobra.MaximumNArgs(1),
		PreRun: func(_ *cobra.Command, args []string) {
			initLogging()
			dataPathArg(args)
		},
		Run: func(cmd *cobra.Command, args []string) {
			dir := DumpDir
			if len(dir) == 0 {
				dir = filepath.Join(DataPath, indexer.DefaultDumpDir)
			}

			ctx, cancel := signalContext()
			defer cancel()

			summary, err := indexer.NewDumper(newIndexerConfig(), dir).Run(ctx)
			if err != nil {
				log.Fatalf("main: %s", err)
			}
			if err := reportSummary(summary); err != nil {
				log.Fatalf("main: %s", err)
			}
		},
	}

	dumpCmd.Flags().StringVarP(&DumpDir, "dir", "o", DumpDir, "Output directory")
	dumpCmd.Flags().StringVarP(&DumpName, "dump-name", "n", DumpName, "Dump file name prefix, e.g. enwiki-20240801")
	dumpCmd.Flags().IntVarP(&MaxChunks, "max-chunks", "m", MaxChunks, "Maximum number of chunks to process (<=0 signifies unlimited)")
	dumpCmd.Flags().BoolVarP(&SkipFailed, "skip-failed", "s", SkipFailed, "Record failed chunks and continue instead of aborting the run")
	dumpCmd.Flags().BoolVarP(&SummaryJSON, "json", "j", SummaryJSON, "Emit the run summary as JSON")

	return dumpCmd
}
