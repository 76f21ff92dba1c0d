package db

import (
	"time"

	bolt "go.etcd.io/bbolt"
)

var DefaultBoltFilename = "wikilinks.bolt"

type BoltConfig struct {
	DBFile      string
	BoltOptions *bolt.Options
}

func NewBoltConfig(dbFilename string) *BoltConfig {
	if dbFilename == "" {
		dbFilename = DefaultBoltFilename
	}
	cfg := &BoltConfig{
		DBFile: dbFilename,
		BoltOptions: &bolt.Options{
			Timeout: 1 * time.Second,
		},
	}
	return cfg
}
