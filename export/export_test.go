package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphkit/cxport/config"
	"github.com/graphkit/cxport/errors"
)

// endToEndFixture mirrors a small NDEx-style network: one richly
// attributed node, two plain nodes, two edges, plus aspects that the
// exporter must skip
const endToEndFixture = `[
  {"numberVerification": [{"longNumber": 281474976710655}]},
  {"metaData": [{"name": "nodes", "version": "1.0"}]},
  {"nodes": [
    {"@id": 1, "n": "Node with Types"},
    {"@id": 2, "n": "A"},
    {"@id": 3, "n": "B"}
  ]},
  {"edges": [
    {"@id": 0, "s": 1, "t": 2, "i": "interacts_with"},
    {"@id": 1, "s": 1, "t": 3, "i": "interacts_with"}
  ]},
  {"nodeAttributes": [
    {"po": 1, "n": "int", "v": 5, "d": "integer"},
    {"po": 1, "n": "double", "v": 2.5, "d": "double"},
    {"po": 1, "n": "bool", "v": true, "d": "boolean"},
    {"po": 1, "n": "string", "v": "mystring"},
    {"po": 1, "n": "long", "v": 281474976710655, "d": "long"},
    {"po": 1, "n": "int_list", "v": [1, 2], "d": "list_of_integer"},
    {"po": 1, "n": "string_list", "v": ["a", "b"], "d": "list_of_string"},
    {"po": 1, "n": "long_list", "v": [5, 75], "d": "list_of_long"}
  ]},
  {"networkAttributes": [{"n": "name", "v": "test network"}]},
  {"status": [{"error": "", "success": true}]}
]`

func defaultExportConfig() config.ExportConfig {
	return config.Default().Export
}

func TestGraphMLEndToEnd(t *testing.T) {
	exporter := NewGraphML(defaultExportConfig(), nil)

	var sb strings.Builder
	require.NoError(t, exporter.Export(strings.NewReader(endToEndFixture), &sb))
	out := sb.String()

	// Standard XML declaration up front
	assert.True(t, strings.HasPrefix(out,
		`<?xml version="1.0" encoding="UTF-8" standalone="no"?>`+"\n"))

	assert.Contains(t, out, `<graph edgedefault="directed" id="test network">`)

	// A plain node has exactly its name data element
	assert.Contains(t, out, `<node id="2"><data key="name">A</data></node>`)
	assert.Contains(t, out, `<node id="3"><data key="name">B</data></node>`)

	// The attributed node carries nine data elements: name plus eight attributes
	node1 := between(t, out, `<node id="1">`, `</node>`)
	assert.Equal(t, 9, strings.Count(node1, "<data "))
	assert.Contains(t, node1, `<data key="name">Node with Types</data>`)
	assert.Contains(t, node1, `<data key="int">5</data>`)
	assert.Contains(t, node1, `<data key="double">2.5</data>`)
	assert.Contains(t, node1, `<data key="bool">true</data>`)
	assert.Contains(t, node1, `<data key="string">mystring</data>`)
	assert.Contains(t, node1, `<data key="long">281474976710655</data>`)
	assert.Contains(t, node1, `<data key="long_list">5|75</data>`)

	// One node-scope key per distinct attribute name, no duplicates
	for _, name := range []string{"name", "represents", "int", "double", "bool",
		"string", "long", "int_list", "string_list", "long_list"} {
		assert.Equal(t, 1,
			strings.Count(out, `<key attr.name="`+name+`"`),
			"key %q should be declared exactly once", name)
	}
	assert.Equal(t, 10, strings.Count(out, `for="node"`))

	// Lists degrade to string keys
	assert.Contains(t, out, `<key attr.name="long_list" attr.type="string" for="node" id="long_list" />`)

	// Edge scope: fixed keys plus correct endpoints
	assert.Contains(t, out, `<key attr.name="interaction" attr.type="string" for="edge" id="interaction" />`)
	assert.Contains(t, out, `<key attr.name="key" attr.type="string" for="edge" id="key" />`)
	assert.Contains(t, out, `<edge source="1" target="2"><data key="key">0</data><data key="interaction">interacts_with</data></edge>`)
	assert.Contains(t, out, `<edge source="1" target="3"><data key="key">1</data><data key="interaction">interacts_with</data></edge>`)

	assert.True(t, strings.HasSuffix(out, "</graphml>\n"))
}

func TestGraphMLExportMalformedInputAborts(t *testing.T) {
	exporter := NewGraphML(defaultExportConfig(), nil)

	var sb strings.Builder
	err := exporter.Export(strings.NewReader(`{"not": "an array"}`), &sb)
	require.Error(t, err)
	assert.True(t, errors.IsMalformedInput(err))
	// Nothing was committed before the decode failure
	assert.Empty(t, sb.String())
}

func TestGraphMLExportEmptyGraph(t *testing.T) {
	exporter := NewGraphML(defaultExportConfig(), nil)

	var sb strings.Builder
	require.NoError(t, exporter.Export(strings.NewReader(`[]`), &sb))
	out := sb.String()

	// Fixed keys are declared even with zero nodes and zero edges
	assert.Contains(t, out, `<key attr.name="name" attr.type="string" for="node" id="name" />`)
	assert.Contains(t, out, `<key attr.name="represents" attr.type="string" for="node" id="represents" />`)
	assert.Contains(t, out, `<key attr.name="interaction" attr.type="string" for="edge" id="interaction" />`)
	assert.Contains(t, out, `<key attr.name="key" attr.type="string" for="edge" id="key" />`)
	assert.Contains(t, out, `id="unknown"`)
}

func TestLookup(t *testing.T) {
	factory, err := Lookup("graphml")
	require.NoError(t, err)
	require.NotNil(t, factory)

	exporter := factory(defaultExportConfig(), nil)
	assert.NotNil(t, exporter)
}

func TestLookupUnknownExporter(t *testing.T) {
	_, err := Lookup("xlsx")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownExporter))
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"graphml"}, Names())
}

func between(t *testing.T, s, start, end string) string {
	t.Helper()
	i := strings.Index(s, start)
	require.GreaterOrEqual(t, i, 0, "missing %q", start)
	rest := s[i+len(start):]
	j := strings.Index(rest, end)
	require.GreaterOrEqual(t, j, 0, "missing %q after %q", end, start)
	return rest[:j]
}
