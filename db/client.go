// Package db provides a bolt backed lookup store for link records, keyed by
// article id with a secondary normalized title index.
package db

import (
	"encoding/binary"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"jaytaylor.com/wikilinks/domain"
	"jaytaylor.com/wikilinks/linkfile"
	"jaytaylor.com/wikilinks/titles"
)

const (
	TableMetadata = "wikilinks-metadata"
	TableArticles = "articles"
	TableTitles   = "titles"
)

var (
	ErrKeyNotFound = errors.New("requested key not found")

	tables = []string{
		TableMetadata,
		TableArticles,
		TableTitles,
	}
)

type Client struct {
	be Backend
}

func NewClient(be Backend) *Client {
	c := &Client{
		be: be,
	}
	return c
}

func (c *Client) Open() error {
	return c.be.Open()
}

func (c *Client) Close() error {
	return c.be.Close()
}

func (c *Client) Backend() Backend {
	return c.be
}

// Purge resets the named tables, or every table when none are given.
func (c *Client) Purge(names ...string) error {
	if len(names) == 0 {
		names = tables
	}
	for _, name := range names {
		log.WithField("table", name).Debug("Purging")
	}
	return c.be.Drop(names...)
}

// ArticleSave stores all articles in a single transaction.
//
// When two articles normalize to the same title the title index keeps the
// smaller id.
func (c *Client) ArticleSave(articles ...*domain.Article) error {
	return c.be.WithTransaction(TXOptions{}, func(tx Transaction) error {
		for _, a := range articles {
			k := idKey(a.ID)
			if err := tx.Put(TableArticles, k, linkfile.AppendRecord(nil, a)); err != nil {
				return fmt.Errorf("saving article %v: %s", a.ID, err)
			}

			title := []byte(titles.Normalize(a.Title))
			existing, err := tx.Get(TableTitles, title)
			if err != nil {
				return err
			}
			if len(existing) == 4 && binary.BigEndian.Uint32(existing) < a.ID {
				continue
			}
			if err := tx.Put(TableTitles, title, k); err != nil {
				return fmt.Errorf("saving title of article %v: %s", a.ID, err)
			}
		}
		return nil
	})
}

func (c *Client) Article(id uint32) (*domain.Article, error) {
	v, err := c.be.Get(TableArticles, idKey(id))
	if err != nil {
		return nil, err
	}
	return decodeArticle(v)
}

// ArticleByTitle looks an article up by its title, ignoring case.
func (c *Client) ArticleByTitle(title string) (*domain.Article, error) {
	k, err := c.be.Get(TableTitles, []byte(titles.Normalize(title)))
	if err != nil {
		return nil, err
	}
	if len(k) != 4 {
		return nil, fmt.Errorf("corrupt title index entry for %q: %v bytes", title, len(k))
	}
	return c.Article(binary.BigEndian.Uint32(k))
}

func (c *Client) ArticlesLen() (int, error) {
	return c.be.Len(TableArticles)
}

// EachArticle invokes fn on every stored article in ascending id order until
// fn returns false.
func (c *Client) EachArticle(fn func(a *domain.Article) bool) error {
	var decodeErr error
	if err := c.be.EachRowWithBreak(TableArticles, func(_ []byte, v []byte) bool {
		a, err := decodeArticle(v)
		if err != nil {
			decodeErr = err
			return false
		}
		return fn(a)
	}); err != nil {
		return err
	}
	return decodeErr
}

func (c *Client) MetaSave(key string, value []byte) error {
	return c.be.Put(TableMetadata, []byte(key), value)
}

func (c *Client) Meta(key string) ([]byte, error) {
	return c.be.Get(TableMetadata, []byte(key))
}

// WithClient is a convenience utility which handles DB client construction,
// open, and close..
func WithClient(config *BoltConfig, fn func(client *Client) error) (err error) {
	client := NewClient(NewBoltBackend(config))

	if err = client.Open(); err != nil {
		err = fmt.Errorf("opening DB client: %s", err)
		return
	}
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			if err == nil {
				err = fmt.Errorf("closing DB client: %s", closeErr)
			} else {
				log.Errorf("Existing error before attempt to close DB client: %s", err)
				log.Errorf("Also encountered problem closing DB client: %s", closeErr)
			}
		}
	}()

	if err = fn(client); err != nil {
		return
	}

	return
}

// idKey encodes id big-endian so that keys sort numerically.
func idKey(id uint32) []byte {
	return binary.BigEndian.AppendUint32(make([]byte, 0, 4), id)
}

func decodeArticle(v []byte) (*domain.Article, error) {
	var article *domain.Article
	if err := linkfile.Decode(v, func(a *domain.Article) error {
		if article != nil {
			return fmt.Errorf("expected a single record")
		}
		article = a
		return nil
	}); err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrKeyNotFound
	}
	return article, nil
}
