package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/onrik/logrus/filename"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"jaytaylor.com/wikilinks/db"
	"jaytaylor.com/wikilinks/indexer"
	"jaytaylor.com/wikilinks/linkfile"
	"jaytaylor.com/wikilinks/pkg/namespace"
)

var (
	DataPath   = "data"
	DumpName   = indexer.DefaultDumpName
	OutputPath = linkfile.DefaultFileName
	DBFile     = db.DefaultBoltFilename
	Quiet      bool
	Verbose    bool

	// Denylist holds namespace prefixes from the configuration file; empty
	// means the built-in set.
	Denylist []string
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wikilinks",
		Short: "Wikipedia link graph builder and analyzer",
		Long:  "Builds a compact binary link graph from a Wikipedia multistream dump and computes degree statistics over it",
	}

	rootCmd.PersistentFlags().BoolVarP(&Quiet, "quiet", "q", Quiet, "Activate quiet log output")
	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", Verbose, "Activate verbose log output")
	rootCmd.PersistentFlags().StringVarP(&DataPath, "data", "d", DataPath, "Directory containing the dump files")
	rootCmd.PersistentFlags().StringVarP(&DBFile, "db", "b", DBFile, "Path to BoltDB file")

	rootCmd.AddCommand(
		newIndexCmd(),
		newAnalyseCmd(),
		newDumpCmd(),
		newStoreCmd(),
	)

	return rootCmd
}

func main() {
	if err := NewConfig().Do(); err != nil {
		log.Fatalf("main: %s", err)
	}

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func initLogging() {
	level := log.InfoLevel
	if Verbose {
		log.AddHook(filename.NewHook())
		level = log.DebugLevel
	}
	if Quiet {
		level = log.ErrorLevel
	}
	log.SetLevel(level)
}

func emitJSON(x interface{}) error {
	bs, err := json.MarshalIndent(x, "", "    ")
	if err != nil {
		return err
	}
	fmt.Printf("%v\n", string(bs))
	return nil
}

// dataPathArg lets the first positional argument override the data directory.
func dataPathArg(args []string) {
	if len(args) > 0 && len(args[0]) > 0 {
		DataPath = args[0]
	}
}

func denylist() namespace.Denylist {
	if len(Denylist) > 0 {
		return namespace.New(Denylist...)
	}
	return namespace.Default()
}

// signalContext returns a context which is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case s := <-sigCh:
			log.WithField("sig", s).Info("Received signal, shutting down..")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}
