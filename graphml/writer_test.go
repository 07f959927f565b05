package graphml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, input string, opts WriterOptions) string {
	t.Helper()
	doc := mergedFixture(t, input)
	schema := BuildSchema(doc)

	var sb strings.Builder
	w := NewWriter(&sb, opts)
	require.NoError(t, w.WriteDocument(doc, schema))
	return sb.String()
}

func TestWriteDocumentStructure(t *testing.T) {
	out := render(t, `[
		{"nodes": [{"@id": 1, "n": "A"}, {"@id": 2, "n": "B"}]},
		{"edges": [{"@id": 0, "s": 1, "t": 2, "i": "binds"}]},
		{"networkAttributes": [
			{"n": "name", "v": "my network"},
			{"n": "description", "v": "a test"}
		]}
	]`, WriterOptions{})

	assert.True(t, strings.HasPrefix(out,
		`<?xml version="1.0" encoding="UTF-8" standalone="no"?>`+"\n"))
	assert.Contains(t, out, `<graphml xmlns="http://graphml.graphdrawing.org/xmlns">`)
	assert.Contains(t, out, `<graph edgedefault="directed" id="my network">`)
	assert.Contains(t, out, `<key attr.name="description" attr.type="string" for="graph" id="description" />`)
	assert.Contains(t, out, `<data key="description">a test</data>`)
	assert.Contains(t, out, `<node id="1"><data key="name">A</data></node>`)
	assert.Contains(t, out, `<edge source="1" target="2"><data key="key">0</data><data key="interaction">binds</data></edge>`)
	assert.True(t, strings.HasSuffix(out, "\n</graph>\n</graphml>\n"))

	// Every key is declared before the graph element opens
	graphPos := strings.Index(out, "<graph ")
	lastKey := strings.LastIndex(out, "<key ")
	assert.Less(t, lastKey, graphPos)
}

// The graph id defaults to "unknown" when no network name attribute
// exists
func TestWriteDocumentDefaultGraphName(t *testing.T) {
	out := render(t, `[{"nodes": [{"@id": 1}]}]`, WriterOptions{})
	assert.Contains(t, out, `<graph edgedefault="directed" id="unknown">`)
}

func TestWriteDocumentEdgeDefaultOption(t *testing.T) {
	out := render(t, `[{"nodes": [{"@id": 1}]}]`, WriterOptions{EdgeDefault: "undirected"})
	assert.Contains(t, out, `<graph edgedefault="undirected" id="unknown">`)
}

// A list attribute declares type string and renders delimited
func TestWriteDocumentListRendering(t *testing.T) {
	out := render(t, `[
		{"nodes": [{"@id": 1}]},
		{"nodeAttributes": [{"po": 1, "n": "int_list", "v": [5, -20], "d": "list_of_integer"}]}
	]`, WriterOptions{})

	assert.Contains(t, out, `<key attr.name="int_list" attr.type="string" for="node" id="int_list" />`)
	assert.Contains(t, out, `<data key="int_list">5|-20</data>`)
}

func TestWriteDocumentCustomListDelimiter(t *testing.T) {
	out := render(t, `[
		{"nodes": [{"@id": 1}]},
		{"nodeAttributes": [{"po": 1, "n": "tags", "v": ["a", "b"]}]}
	]`, WriterOptions{ListDelimiter: ","})

	assert.Contains(t, out, `<data key="tags">a,b</data>`)
}

func TestWriteDocumentEscapesXML(t *testing.T) {
	out := render(t, `[
		{"nodes": [{"@id": 1, "n": "a <b> & \"c\""}]},
		{"networkAttributes": [{"n": "name", "v": "net <&>"}]}
	]`, WriterOptions{})

	assert.Contains(t, out, `<data key="name">a &lt;b&gt; &amp; &#34;c&#34;</data>`)
	assert.Contains(t, out, `id="net &lt;&amp;&gt;"`)
	assert.NotContains(t, out, "<b>")
}

// A key inferred from a null value is declared without attr.type and
// its data renders empty
func TestWriteDocumentNullValue(t *testing.T) {
	out := render(t, `[
		{"nodes": [{"@id": 1}]},
		{"nodeAttributes": [{"po": 1, "n": "empty", "v": null}]}
	]`, WriterOptions{})

	assert.Contains(t, out, `<key attr.name="empty" for="node" id="empty" />`)
	assert.Contains(t, out, `<data key="empty"></data>`)
}

// Edge target must come from the edge's target field (a legacy variant
// wrote the source field twice)
func TestWriteDocumentEdgeEndpoints(t *testing.T) {
	out := render(t, `[
		{"nodes": [{"@id": 7}, {"@id": 9}]},
		{"edges": [{"@id": 0, "s": 7, "t": 9}]}
	]`, WriterOptions{})

	assert.Contains(t, out, `<edge source="7" target="9">`)
	assert.NotContains(t, out, `<edge source="7" target="7">`)
}

// Dangling endpoints pass through untouched: referential integrity is
// not this tool's job
func TestWriteDocumentDanglingEndpointsPassThrough(t *testing.T) {
	out := render(t, `[
		{"edges": [{"@id": 0, "s": 100, "t": 200}]}
	]`, WriterOptions{})

	assert.Contains(t, out, `<edge source="100" target="200">`)
}
