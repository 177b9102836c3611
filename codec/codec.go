// Package codec renders clustering results.
//
// Two families are provided: the plain text layout printed by the command
// line (one centroid per line, four decimals per coordinate) and JSON
// reports encoded through a pluggable Codec.
package codec

import (
	"fmt"
	"io"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Writer renders a Report to an output stream.
type Writer interface {
	Write(w io.Writer, r *Report) error
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

// WriterByName returns the writer for an output format name:
// "text", or the name of any built-in codec.
func WriterByName(name string) (Writer, bool) {
	if name == "" || name == "text" {
		return Text{}, true
	}
	c, ok := ByName(name)
	if !ok {
		return nil, false
	}
	return JSONWriter{Codec: c}, true
}

// JSONWriter writes a Report as a single JSON document followed by a newline.
type JSONWriter struct {
	Codec Codec
}

// Write encodes r with the writer's codec (Default when unset).
func (jw JSONWriter) Write(w io.Writer, r *Report) error {
	c := jw.Codec
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(r)
	if err != nil {
		return fmt.Errorf("codec %s marshal failed: %w", c.Name(), err)
	}
	_, err = w.Write(append(b, '\n'))
	return err
}

// Name returns the codec name.
func (jw JSONWriter) Name() string {
	if jw.Codec == nil {
		return Default.Name()
	}
	return jw.Codec.Name()
}
