// ABOUTME: Codec contract for serialized heap snapshots
// ABOUTME: Parsers self-identify a format before decoding it

package heapdump

import (
	"io"

	"github.com/prateek/btgc/graph"
)

// Parser decodes one serialized snapshot format.
type Parser interface {
	// CanParse inspects a preview of the stream and reports whether
	// this parser understands the format. The preview may be
	// truncated; implementations should probe a small prefix and not
	// require a complete document.
	CanParse(r io.Reader) bool

	// Parse decodes the stream into a graph. The reader is positioned
	// at the start of the stream.
	Parse(r io.Reader) (*graph.Graph, error)
}
