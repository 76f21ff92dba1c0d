package main

import (
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"jaytaylor.com/wikilinks/analyzer"
	"jaytaylor.com/wikilinks/linkfile"
)

var (
	TopN       = analyzer.DefaultTopN
	ReportJSON bool
)

func newAnalyseCmd() *cobra.Command {
	analyseCmd := &cobra.Command{
		Use:     "analyse",
		Aliases: []string{"analyze", "an"},
		Short:   "Link graph statistics",
		Long:    "Loads the links file and reports totals along with the most linking and most linked articles",
		Args:    cobra.NoArgs,
		PreRun: func(_ *cobra.Command, _ []string) {
			initLogging()
		},
		Run: func(cmd *cobra.Command, args []string) {
			start := time.Now()
			g, err := linkfile.ReadFile(OutputPath)
			if err != nil {
				log.Fatalf("main: %s", err)
			}
			log.WithField("articles", g.Len()).WithField("elapsed", time.Since(start)).Info("Loaded links file")

			report := analyzer.Analyze(g, TopN)
			if ReportJSON {
				err = emitJSON(report)
			} else {
				err = analyzer.WriteText(os.Stdout, report)
			}
			if err != nil {
				log.Fatalf("main: %s", err)
			}
		},
	}

	analyseCmd.Flags().StringVarP(&OutputPath, "links", "l", OutputPath, "Links file to analyse")
	analyseCmd.Flags().IntVarP(&TopN, "top", "t", TopN, "Number of entries per ranking (<=0 signifies all)")
	analyseCmd.Flags().BoolVarP(&ReportJSON, "json", "j", ReportJSON, "Emit the report as JSON")

	return analyseCmd
}
