package db

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"jaytaylor.com/wikilinks/domain"
	"jaytaylor.com/wikilinks/linkfile"
)

var (
	DefaultBatchSize = 1000

	MetaSourceKey   = "source"
	MetaLoadedAtKey = "loaded-at"
)

// LoadLinkFile replaces the store contents with the records of the links
// file at path, saving batchSize articles per transaction.  Returns the
// number of records read.
func (c *Client) LoadLinkFile(path string, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	if err := c.Purge(TableArticles, TableTitles); err != nil {
		return 0, fmt.Errorf("purging: %s", err)
	}

	var (
		batch = make([]*domain.Article, 0, batchSize)
		n     int
	)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := c.ArticleSave(batch...); err != nil {
			return err
		}
		n += len(batch)
		log.WithField("saved", n).Debug("Saved article batch")
		batch = batch[0:0]
		return nil
	}

	if err := linkfile.Decode(buf, func(a *domain.Article) error {
		batch = append(batch, a)
		if len(batch) == batchSize {
			return flush()
		}
		return nil
	}); err != nil {
		return n, fmt.Errorf("loading %v: %w", path, err)
	}
	if err := flush(); err != nil {
		return n, err
	}

	if err := c.MetaSave(MetaSourceKey, []byte(path)); err != nil {
		return n, err
	}
	if err := c.MetaSave(MetaLoadedAtKey, []byte(time.Now().UTC().Format(time.RFC3339))); err != nil {
		return n, err
	}
	return n, nil
}
