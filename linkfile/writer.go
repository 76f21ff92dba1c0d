package linkfile

import (
	"bufio"
	"io"
	"os"
	"sync"

	"jaytaylor.com/wikilinks/domain"
)

// Writer appends records to a links file.  It is safe for concurrent use: a
// record, or a whole batch, is always written contiguously.
//
// Nothing is guaranteed to be on disk until Close returns successfully.
type Writer struct {
	w       *bufio.Writer
	c       io.Closer
	buf     []byte
	written int
	mu      sync.Mutex
}

// NewWriter wraps w.  If w is an io.Closer it is closed by Close.
func NewWriter(w io.Writer) *Writer {
	lw := &Writer{
		w: bufio.NewWriterSize(w, 1024*1024),
	}
	if c, ok := w.(io.Closer); ok {
		lw.c = c
	}
	return lw
}

// Create truncates or creates the file at path and returns a Writer for it.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return NewWriter(f), nil
}

// Append writes a single record.
func (lw *Writer) Append(a *domain.Article) error {
	return lw.AppendBatch([]*domain.Article{a})
}

// AppendBatch writes all records while holding the lock once.
func (lw *Writer) AppendBatch(articles []*domain.Article) error {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	lw.buf = lw.buf[:0]
	for _, a := range articles {
		lw.buf = AppendRecord(lw.buf, a)
	}
	if _, err := lw.w.Write(lw.buf); err != nil {
		return err
	}
	lw.written += len(articles)
	return nil
}

// Written returns the number of records appended so far.
func (lw *Writer) Written() int {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.written
}

// Flush pushes buffered records to the underlying writer.
func (lw *Writer) Flush() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.w.Flush()
}

// Close flushes and then closes the underlying writer when it is closable.
func (lw *Writer) Close() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	err := lw.w.Flush()
	if lw.c != nil {
		if closeErr := lw.c.Close(); err == nil {
			err = closeErr
		}
		lw.c = nil
	}
	return err
}
