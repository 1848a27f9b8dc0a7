// Package codec encodes list snapshots for dumps and archives.
//
// Archived snapshots record the codec name next to the payload, so a
// snapshot written with one codec can always be decoded by selecting the
// same codec with ByName.
package codec

import (
	"fmt"

	"github.com/hupe1980/slotlist"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// EncodeSnapshot encodes snap with c (Default if c is nil).
func EncodeSnapshot[T any](c Codec, snap *slotlist.Snapshot[T]) ([]byte, error) {
	if c == nil {
		c = Default
	}
	if snap == nil {
		return nil, fmt.Errorf("codec %s: nil snapshot", c.Name())
	}
	b, err := c.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("codec %s: encode snapshot: %w", c.Name(), err)
	}
	return b, nil
}

// DecodeSnapshot decodes a snapshot previously written by EncodeSnapshot.
func DecodeSnapshot[T any](c Codec, data []byte) (*slotlist.Snapshot[T], error) {
	if c == nil {
		c = Default
	}
	var snap slotlist.Snapshot[T]
	if err := c.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("codec %s: decode snapshot: %w", c.Name(), err)
	}
	return &snap, nil
}

// MustMarshal is a helper for internal tests.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
