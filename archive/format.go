package archive

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/slotlist"
	"github.com/hupe1980/slotlist/codec"
)

// Blob layout:
//
//	magic   [4]byte "SLAR"
//	version uint8
//	comp    uint8   Compression
//	nameLen uint8
//	codec   [nameLen]byte
//	block   compressed block (see compressBlock)
var magic = []byte("SLAR")

const formatVersion = 1

// ErrBadFormat is returned for blobs that are not archived snapshots.
var ErrBadFormat = errors.New("archive: bad format")

// Entry is one archived diagnostic report.
type Entry[T any] struct {
	Session  string                `json:"session"`
	Seq      int64                 `json:"seq"`
	Reason   string                `json:"reason"`
	Time     time.Time             `json:"time"`
	Snapshot *slotlist.Snapshot[T] `json:"snapshot"`
}

func encodeEntry[T any](c codec.Codec, comp Compression, e *Entry[T]) ([]byte, error) {
	payload, err := c.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("archive: encode with %s: %w", c.Name(), err)
	}

	block, err := compressBlock(payload, comp)
	if err != nil {
		return nil, err
	}

	name := c.Name()
	if len(name) > 255 {
		return nil, fmt.Errorf("archive: codec name %q too long", name)
	}

	var buf bytes.Buffer
	buf.Grow(len(magic) + 3 + len(name) + len(block))
	buf.Write(magic)
	buf.WriteByte(formatVersion)
	buf.WriteByte(byte(comp))
	buf.WriteByte(byte(len(name)))
	buf.WriteString(name)
	buf.Write(block)
	return buf.Bytes(), nil
}

func decodeEntry[T any](data []byte) (*Entry[T], error) {
	if len(data) < len(magic)+3 || !bytes.Equal(data[:len(magic)], magic) {
		return nil, ErrBadFormat
	}
	data = data[len(magic):]

	if data[0] != formatVersion {
		return nil, fmt.Errorf("%w: version %d", ErrBadFormat, data[0])
	}
	comp := Compression(data[1])
	nameLen := int(data[2])
	data = data[3:]
	if len(data) < nameLen {
		return nil, ErrBadFormat
	}

	name := string(data[:nameLen])
	c, ok := codec.ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown codec %q", ErrBadFormat, name)
	}

	payload, err := decompressBlock(data[nameLen:], comp)
	if err != nil {
		return nil, err
	}

	var e Entry[T]
	if err := c.Unmarshal(payload, &e); err != nil {
		return nil, fmt.Errorf("archive: decode with %s: %w", name, err)
	}
	return &e, nil
}
