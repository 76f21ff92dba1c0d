// Package linkfile implements the links.bin record format.
//
// The file is a plain concatenation of variable length records, one per
// article, with no header and no padding.  Every integer is a little-endian
// uint32:
//
//	article_id
//	title_byte_len
//	title_bytes     (title_byte_len bytes of UTF-8)
//	link_count
//	link_ids        (link_count ids)
//	separator       (always 0xFFFFFFFF)
//
// Record order carries no meaning.
package linkfile

import (
	"encoding/binary"
	"errors"
	"fmt"

	"jaytaylor.com/wikilinks/domain"
)

const (
	// Separator terminates every record.
	Separator uint32 = 0xFFFFFFFF

	// DefaultFileName is the conventional name of a links file.
	DefaultFileName = "links.bin"

	wordSize = 4

	// MinRecordSize is the size of a record with an empty title and no links.
	MinRecordSize = 4 * wordSize
)

var ErrFraming = errors.New("links file framing violation")

// FramingError reports a corrupted or truncated record.
type FramingError struct {
	Offset int // Byte offset of the start of the offending record.
	Reason string
}

func (fe *FramingError) Error() string {
	return fmt.Sprintf("%s at record offset %v: %v", ErrFraming, fe.Offset, fe.Reason)
}

func (fe *FramingError) Unwrap() error {
	return ErrFraming
}

// RecordSize returns the encoded length of a.
func RecordSize(a *domain.Article) int {
	return MinRecordSize + len(a.Title) + wordSize*len(a.Links)
}

// AppendRecord appends the encoding of a to dst and returns the extended
// buffer.
func AppendRecord(dst []byte, a *domain.Article) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, a.ID)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(a.Title)))
	dst = append(dst, a.Title...)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(a.Links)))
	for _, id := range a.Links {
		dst = binary.LittleEndian.AppendUint32(dst, id)
	}
	dst = binary.LittleEndian.AppendUint32(dst, Separator)
	return dst
}
