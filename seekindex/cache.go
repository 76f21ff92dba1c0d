package seekindex

import (
	"bufio"
	"compress/bzip2"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// CompressedSuffix marks an index resource which must be decompressed before
// use.
const CompressedSuffix = ".bz2"

// CachePath returns the location of the decompressed copy for a compressed
// index, or path itself when it is not compressed.
func CachePath(path string) string {
	return strings.TrimSuffix(path, CompressedSuffix)
}

// Materialize returns a path to a plain-text copy of the index, decompressing
// it on first use.  The copy is first written to a temporary sibling and then
// renamed, so an interrupted run never leaves a truncated cache behind.
func Materialize(path string) (string, error) {
	cached := CachePath(path)
	if cached == path {
		if _, err := os.Stat(path); err != nil {
			return "", err
		}
		return path, nil
	}

	if _, err := os.Stat(cached); err == nil {
		log.WithField("cache", cached).Debug("Using decompressed index cache")
		return cached, nil
	} else if !os.IsNotExist(err) {
		return "", err
	}

	in, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(cached), filepath.Base(cached)+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("creating index cache: %s", err)
	}
	defer os.Remove(tmp.Name())

	log.WithField("src", path).WithField("cache", cached).Info("Decompressing index")
	w := bufio.NewWriterSize(tmp, 1024*1024)
	n, err := io.Copy(w, bzip2.NewReader(bufio.NewReaderSize(in, 1024*1024)))
	if err == nil {
		err = w.Flush()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", fmt.Errorf("decompressing %v: %s", path, err)
	}

	if err := os.Rename(tmp.Name(), cached); err != nil {
		return "", err
	}
	log.WithField("bytes", n).WithField("cache", cached).Debug("Index cache written")
	return cached, nil
}
