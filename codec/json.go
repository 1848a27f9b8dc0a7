package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Element values are encoded with their own JSON representation, so the
// list's element type must be JSON-encodable for its snapshots to be.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the codec used when none is configured.
var Default Codec = GoJSON{}
