package cx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFixture(t *testing.T, input string) *Document {
	t.Helper()
	doc, err := ParseDocument(strings.NewReader(input))
	require.NoError(t, err)
	return doc
}

func TestMergeAttributesOntoNodes(t *testing.T) {
	doc := parseFixture(t, `[
		{"nodes": [{"@id": 1, "n": "A"}, {"@id": 2, "n": "B"}]},
		{"nodeAttributes": [
			{"po": 1, "n": "score", "v": 5},
			{"po": 1, "n": "color", "v": "red"},
			{"po": 2, "n": "score", "v": 7}
		]}
	]`)

	stats := doc.MergeAttributes()
	assert.Equal(t, 3, stats.MergedNodeAttributes)
	assert.Equal(t, 0, stats.Dropped())

	// Node 1 gained exactly its two attributes after the inline name
	assert.Equal(t, []string{"n", "score", "color"}, doc.Nodes[0].Properties.Names())
	score, ok := doc.Nodes[0].Properties.Get("score")
	require.True(t, ok)
	assert.Equal(t, "5", score.Render("|"))

	score2, ok := doc.Nodes[1].Properties.Get("score")
	require.True(t, ok)
	assert.Equal(t, "7", score2.Render("|"))
}

// An owner id matching no node leaves every property map unchanged
func TestMergeAttributesDropsUnresolvableOwners(t *testing.T) {
	doc := parseFixture(t, `[
		{"nodes": [{"@id": 1, "n": "A"}]},
		{"nodeAttributes": [{"po": 99, "n": "ghost", "v": "boo"}]}
	]`)

	stats := doc.MergeAttributes()
	assert.Equal(t, 1, stats.DroppedNodeAttributes)
	assert.Equal(t, 0, stats.MergedNodeAttributes)
	assert.Equal(t, []string{"n"}, doc.Nodes[0].Properties.Names())
}

func TestMergeAttributesLastWriteWins(t *testing.T) {
	doc := parseFixture(t, `[
		{"nodes": [{"@id": 1}]},
		{"nodeAttributes": [
			{"po": 1, "n": "score", "v": 5},
			{"po": 1, "n": "score", "v": 9}
		]}
	]`)

	doc.MergeAttributes()
	score, ok := doc.Nodes[0].Properties.Get("score")
	require.True(t, ok)
	assert.Equal(t, "9", score.Render("|"))
	// Overwrite keeps one entry, not two
	assert.Equal(t, 1, doc.Nodes[0].Properties.Len())
}

func TestMergeAttributesOntoEdges(t *testing.T) {
	doc := parseFixture(t, `[
		{"edges": [{"@id": 0, "s": 1, "t": 2, "i": "binds"}]},
		{"edgeAttributes": [
			{"po": 0, "n": "weight", "v": 0.5},
			{"po": 42, "n": "lost", "v": 1}
		]}
	]`)

	stats := doc.MergeAttributes()
	assert.Equal(t, 1, stats.MergedEdgeAttributes)
	assert.Equal(t, 1, stats.DroppedEdgeAttributes)
	assert.Equal(t, []string{"i", "weight"}, doc.Edges[0].Properties.Names())
}

// Merged lists are cleared so a serialization pass cannot see the same
// attribute twice; network attributes stay untouched
func TestMergeAttributesClearsTransientLists(t *testing.T) {
	doc := parseFixture(t, `[
		{"nodes": [{"@id": 1}]},
		{"edges": [{"@id": 0, "s": 1, "t": 1}]},
		{"nodeAttributes": [{"po": 1, "n": "a", "v": 1}]},
		{"edgeAttributes": [{"po": 0, "n": "b", "v": 2}]},
		{"networkAttributes": [{"n": "name", "v": "net"}]}
	]`)

	doc.MergeAttributes()
	assert.Nil(t, doc.NodeAttributes)
	assert.Nil(t, doc.EdgeAttributes)
	assert.Len(t, doc.NetworkAttributes, 1)
}

func TestMergeAttributesIdempotentOnEmptyDocument(t *testing.T) {
	doc := &Document{}
	stats := doc.MergeAttributes()
	assert.Zero(t, stats.MergedNodeAttributes)
	assert.Zero(t, stats.Dropped())
}
