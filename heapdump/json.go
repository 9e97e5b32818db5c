// ABOUTME: JSON snapshot codec, read and write
// ABOUTME: Round-trips graphs as {"objects": [...], "roots": [...]}

package heapdump

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/gjson"

	"github.com/prateek/btgc/graph"
)

// JSON reads and writes the JSON snapshot format.
type JSON struct{}

// jsonDump is the document shape of the format.
type jsonDump struct {
	Objects []*graph.Object `json:"objects"`
	Roots   []graph.ObjID   `json:"roots"`
}

// CanParse probes the preview for an objects array. gjson tolerates a
// truncated document, which is exactly what the detection prefix is.
func (p *JSON) CanParse(r io.Reader) bool {
	buf := make([]byte, 1024)
	n, err := r.Read(buf)
	if err != nil && err != io.EOF {
		return false
	}
	if n == 0 {
		return false
	}
	v := gjson.GetBytes(buf[:n], "objects")
	return v.Exists() && v.IsArray()
}

// Parse decodes a JSON snapshot into a graph.
func (p *JSON) Parse(r io.Reader) (*graph.Graph, error) {
	var dump jsonDump
	if err := json.NewDecoder(r).Decode(&dump); err != nil {
		return nil, fmt.Errorf("failed to decode JSON snapshot: %w", err)
	}

	g := graph.New()
	for i, obj := range dump.Objects {
		if obj.ID == 0 {
			return nil, fmt.Errorf("object at index %d missing id", i)
		}
		if obj.Ptrs == nil {
			obj.Ptrs = []graph.ObjID{}
		}
		g.Add(obj)
	}

	roots := dump.Roots
	if roots == nil {
		roots = []graph.ObjID{}
	}
	g.SetRoots(roots)

	return g, nil
}

// Write serializes a graph in the JSON snapshot format, objects in
// insertion order.
func Write(w io.Writer, g *graph.Graph) error {
	dump := jsonDump{
		Objects: make([]*graph.Object, 0, g.Len()),
		Roots:   g.Roots(),
	}
	g.Each(func(obj *graph.Object) {
		dump.Objects = append(dump.Objects, obj)
	})
	if dump.Roots == nil {
		dump.Roots = []graph.ObjID{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dump); err != nil {
		return fmt.Errorf("failed to encode JSON snapshot: %w", err)
	}
	return nil
}

// init registers the JSON codec.
func init() {
	Register(&JSON{})
}
