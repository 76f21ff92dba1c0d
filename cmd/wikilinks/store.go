package main

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"jaytaylor.com/wikilinks/db"
	"jaytaylor.com/wikilinks/domain"
)

var LoadBatchSize = db.DefaultBatchSize

func newStoreCmd() *cobra.Command {
	storeCmd := &cobra.Command{
		Use:     "store",
		Aliases: []string{"db"},
		Short:   "Article lookup store",
		Long:    "Load the links file into a BoltDB store and look individual articles up by id or title",
	}

	storeCmd.AddCommand(
		newStoreLoadCmd(),
		newStoreGetCmd(),
		newStoreStatsCmd(),
	)

	return storeCmd
}

func newStoreLoadCmd() *cobra.Command {
	loadCmd := &cobra.Command{
		Use:   "load [links-file]",
		Short: "Load the links file",
		Long:  "Replaces the store contents with the records of the links file",
		Args:  cobra.MaximumNArgs(1),
		PreRun: func(_ *cobra.Command, _ []string) {
			initLogging()
		},
		Run: func(cmd *cobra.Command, args []string) {
			path := OutputPath
			if len(args) > 0 {
				path = args[0]
			}
			if err := db.WithClient(db.NewBoltConfig(DBFile), func(client *db.Client) error {
				n, err := client.LoadLinkFile(path, LoadBatchSize)
				if err != nil {
					return err
				}
				log.WithField("articles", n).WithField("db", DBFile).Info("Load operation finished")
				return nil
			}); err != nil {
				log.Fatalf("main: %s", err)
			}
		},
	}

	loadCmd.Flags().IntVarP(&LoadBatchSize, "batch-size", "B", LoadBatchSize, "Batch size per DB transaction")

	return loadCmd
}

func newStoreGetCmd() *cobra.Command {
	getCmd := &cobra.Command{
		Use:   "get [id-or-title]...",
		Short: "Look articles up",
		Long:  "Emits the stored record of each article; numeric arguments are taken as ids, anything else as a title",
		Args:  cobra.MinimumNArgs(1),
		PreRun: func(_ *cobra.Command, _ []string) {
			initLogging()
		},
		Run: func(cmd *cobra.Command, args []string) {
			if err := db.WithClient(db.NewBoltConfig(DBFile), func(client *db.Client) error {
				articles := make([]*domain.Article, 0, len(args))
				for _, arg := range args {
					a, err := lookupArticle(client, arg)
					if err != nil {
						return fmt.Errorf("getting %q: %s", arg, err)
					}
					articles = append(articles, a)
				}
				return emitJSON(articles)
			}); err != nil {
				log.Fatalf("main: %s", err)
			}
		},
	}
	return getCmd
}

func lookupArticle(client *db.Client, arg string) (*domain.Article, error) {
	if id, err := strconv.ParseUint(arg, 10, 32); err == nil {
		a, err := client.Article(uint32(id))
		if err != db.ErrKeyNotFound {
			return a, err
		}
	}
	return client.ArticleByTitle(arg)
}

func newStoreStatsCmd() *cobra.Command {
	statsCmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"stat", "st"},
		Short:   "DB table-entry counts",
		Long:    "Displays table counts and the origin of the loaded data",
		PreRun: func(_ *cobra.Command, _ []string) {
			initLogging()
		},
		Run: func(cmd *cobra.Command, args []string) {
			if err := db.WithClient(db.NewBoltConfig(DBFile), func(client *db.Client) error {
				stats := map[string]interface{}{}
				for _, table := range []string{db.TableArticles, db.TableTitles} {
					l, err := client.Backend().Len(table)
					if err != nil {
						return fmt.Errorf("getting len(%v): %s", table, err)
					}
					stats[table] = l
				}
				for _, key := range []string{db.MetaSourceKey, db.MetaLoadedAtKey} {
					v, err := client.Meta(key)
					if err != nil && err != db.ErrKeyNotFound {
						return fmt.Errorf("getting metadata %v: %s", key, err)
					}
					stats[key] = string(v)
				}
				return emitJSON(stats)
			}); err != nil {
				log.Fatalf("main: %s", err)
			}
		},
	}
	return statsCmd
}
