package graphml

import (
	"bufio"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/graphkit/cxport/cx"
	"github.com/graphkit/cxport/errors"
)

// Namespace is the GraphML XML namespace
const Namespace = "http://graphml.graphdrawing.org/xmlns"

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>`

// WriterOptions tunes serialization. Zero values fall back to the
// conventional defaults.
type WriterOptions struct {
	// EdgeDefault is the <graph> edgedefault attribute (default "directed")
	EdgeDefault string

	// ListDelimiter joins list-valued attributes (default "|")
	ListDelimiter string
}

// Writer serializes a merged document and its key schema as GraphML,
// element by element, so large graphs stream through without the whole
// XML text being held in memory. It performs no schema validation of
// its own: every key referenced by a data element was pre-declared by
// BuildSchema, because both walk the same data under the same
// name-translation rule.
type Writer struct {
	bw          *bufio.Writer
	edgeDefault string
	delim       string
	err         error // first write failure, sticky
}

// NewWriter creates a Writer over w
func NewWriter(w io.Writer, opts WriterOptions) *Writer {
	if opts.EdgeDefault == "" {
		opts.EdgeDefault = "directed"
	}
	if opts.ListDelimiter == "" {
		opts.ListDelimiter = "|"
	}
	return &Writer{
		bw:          bufio.NewWriter(w),
		edgeDefault: opts.EdgeDefault,
		delim:       opts.ListDelimiter,
	}
}

// WriteDocument emits the full GraphML document in the mandated order:
// XML declaration, graphml root, graph-scope keys, node-scope keys,
// edge-scope keys, the graph element with its data, nodes, edges.
func (w *Writer) WriteDocument(doc *cx.Document, schema *Schema) error {
	w.writeString(xmlDeclaration + "\n")
	w.writeString(`<graphml xmlns="` + Namespace + "\">\n")

	for _, k := range schema.Graph {
		w.writeKey(k)
	}
	for _, k := range schema.Node {
		w.writeKey(k)
	}
	for _, k := range schema.Edge {
		w.writeKey(k)
	}

	w.writeString(`  <graph edgedefault="` + escape(w.edgeDefault) +
		`" id="` + escape(GraphName(doc)) + "\">\n")

	w.writeGraphData(doc)
	w.writeNodes(doc)
	w.writeEdges(doc)

	w.writeString("\n</graph>\n</graphml>\n")

	if w.err != nil {
		return errors.Wrap(w.err, "failed to write GraphML output")
	}
	if err := w.bw.Flush(); err != nil {
		return errors.Wrap(err, "failed to flush GraphML output")
	}
	return nil
}

// writeKey emits one <key> declaration. A key inferred from a null
// value has no attr.type; it is declared by scope and name only.
func (w *Writer) writeKey(k KeySpec) {
	w.writeString(`<key attr.name="` + escape(k.AttrName) + `"`)
	if k.AttrType != "" {
		w.writeString(` attr.type="` + escape(k.AttrType) + `"`)
	}
	w.writeString(` for="` + string(k.Scope) + `" id="` + escape(k.ID) + "\" />\n")
}

// writeGraphData emits one graph-level <data> element per network
// attribute, except the "name" attribute already consumed for the
// graph id
func (w *Writer) writeGraphData(doc *cx.Document) {
	for _, rec := range doc.NetworkAttributes {
		if rec.Name == graphNameAttribute {
			continue
		}
		w.writeData(rec.Name, rec.Value)
		w.writeString("\n")
	}
}

func (w *Writer) writeNodes(doc *cx.Document) {
	for i := range doc.Nodes {
		node := &doc.Nodes[i]
		w.writeString(`<node id="` + strconv.FormatInt(node.ID, 10) + `">`)
		for _, name := range node.Properties.Names() {
			v, _ := node.Properties.Get(name)
			w.writeData(NodePropertyName(name), v)
		}
		w.writeString("</node>\n")
	}
}

func (w *Writer) writeEdges(doc *cx.Document) {
	for i := range doc.Edges {
		edge := &doc.Edges[i]
		w.writeString(`<edge source="` + strconv.FormatInt(edge.Source, 10) +
			`" target="` + strconv.FormatInt(edge.Target, 10) + `">`)
		w.writeData(EdgeIDKey, cx.Long(edge.ID))
		for _, name := range edge.Properties.Names() {
			v, _ := edge.Properties.Get(name)
			w.writeData(EdgePropertyName(name), v)
		}
		w.writeString("</edge>\n")
	}
}

func (w *Writer) writeData(key string, v cx.Value) {
	w.writeString(`<data key="` + escape(key) + `">` +
		escape(v.Render(w.delim)) + "</data>")
}

func (w *Writer) writeString(s string) {
	if w.err != nil {
		return
	}
	if _, err := w.bw.WriteString(s); err != nil {
		w.err = err
	}
}

// escape XML-escapes text content and attribute values
func escape(s string) string {
	var b strings.Builder
	// strings.Builder never returns a write error
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
