// ABOUTME: Registry of snapshot parsers with format auto-detection
// ABOUTME: Open buffers a prefix, asks each parser, and hands off the stream

package heapdump

import (
	"bytes"
	"errors"
	"io"
	"sync"

	"github.com/prateek/btgc/graph"
)

// ErrNoParser is returned when no registered parser recognizes the
// snapshot format.
var ErrNoParser = errors.New("no parser found for snapshot format")

type parserRegistry struct {
	mu      sync.RWMutex
	parsers []Parser
}

var registry = &parserRegistry{
	parsers: make([]Parser, 0),
}

// Register adds a parser to the registry. Codecs register themselves
// from init.
func Register(p Parser) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.parsers = append(registry.parsers, p)
}

// Open reads a serialized snapshot, detecting its format by asking
// each registered parser in turn.
func Open(r io.Reader) (*graph.Graph, error) {
	// Buffer a prefix so several parsers can look at the same bytes.
	detectBuf := make([]byte, 4096)
	n, err := io.ReadFull(r, detectBuf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}

	registry.mu.RLock()
	defer registry.mu.RUnlock()

	for _, parser := range registry.parsers {
		if parser.CanParse(bytes.NewReader(detectBuf[:n])) {
			full := io.MultiReader(bytes.NewReader(detectBuf[:n]), r)
			return parser.Parse(full)
		}
	}

	return nil, ErrNoParser
}
