package graphml

import (
	"github.com/graphkit/cxport/cx"
)

// Scope says whether a GraphML key applies to the graph, to nodes, or
// to edges
type Scope string

const (
	ScopeGraph Scope = "graph"
	ScopeNode  Scope = "node"
	ScopeEdge  Scope = "edge"
)

// KeySpec is one declared GraphML attribute key. ID is the attribute
// name itself (name-as-id): simpler than synthetic ids and what
// Cytoscape-family consumers accept.
type KeySpec struct {
	ID       string
	AttrName string
	AttrType string // empty = declare the key without attr.type
	Scope    Scope
}

// Schema holds the three deduplicated key tables in declaration order
type Schema struct {
	Graph []KeySpec
	Node  []KeySpec
	Edge  []KeySpec
}

// keyTable accumulates keys first-seen-wins: within one scope each
// attribute name is declared at most once, and the type recorded for
// it is fixed by the first occurrence (later conflicting types are a
// documented limitation, not reconciled).
type keyTable struct {
	scope Scope
	specs []KeySpec
	seen  map[string]struct{}
}

func newKeyTable(scope Scope) *keyTable {
	return &keyTable{scope: scope, seen: make(map[string]struct{})}
}

func (t *keyTable) add(name, attrType string) {
	if _, ok := t.seen[name]; ok {
		return
	}
	t.seen[name] = struct{}{}
	t.specs = append(t.specs, KeySpec{
		ID:       name,
		AttrName: name,
		AttrType: attrType,
		Scope:    t.scope,
	})
}

// BuildSchema walks the merged document once per scope and produces
// the deduplicated key tables. The node scope is pre-seeded with
// name/represents and the edge scope with interaction/key, all typed
// string, regardless of whether any node or edge uses them.
func BuildSchema(doc *cx.Document) *Schema {
	graph := newKeyTable(ScopeGraph)
	for _, rec := range doc.NetworkAttributes {
		if rec.Name == graphNameAttribute {
			// Consumed for the graph id, never declared as a key
			continue
		}
		graph.add(rec.Name, resolveType(rec.DeclaredType, rec.Value))
	}

	node := newKeyTable(ScopeNode)
	node.add(NodeNameKey, TypeString)
	node.add(NodeRepresentsKey, TypeString)
	for i := range doc.Nodes {
		props := &doc.Nodes[i].Properties
		for _, name := range props.Names() {
			v, _ := props.Get(name)
			node.add(NodePropertyName(name), InferType(v))
		}
	}

	edge := newKeyTable(ScopeEdge)
	edge.add(EdgeInteractionKey, TypeString)
	edge.add(EdgeIDKey, TypeString)
	for i := range doc.Edges {
		props := &doc.Edges[i].Properties
		for _, name := range props.Names() {
			v, _ := props.Get(name)
			edge.add(EdgePropertyName(name), InferType(v))
		}
	}

	return &Schema{
		Graph: graph.specs,
		Node:  node.specs,
		Edge:  edge.specs,
	}
}

// graphNameAttribute is the network attribute that supplies the
// GraphML graph id
const graphNameAttribute = "name"

// GraphName returns the value of the network attribute literally named
// "name", or "unknown" when absent — the GraphML graph id.
func GraphName(doc *cx.Document) string {
	for _, rec := range doc.NetworkAttributes {
		if rec.Name == graphNameAttribute {
			return rec.Value.String()
		}
	}
	return "unknown"
}
