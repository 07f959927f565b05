// Package graphml turns a merged CX document into GraphML: it infers
// the deduplicated attribute-key schema GraphML requires up front,
// then serializes keys, graph data, nodes, and edges in the mandated
// element order.
package graphml

import "github.com/graphkit/cxport/cx"

// Display names for CX reserved property tokens. Cytoscape-derived
// readers expect these keys to always be declared, whether used or not.
const (
	NodeNameKey        = "name"
	NodeRepresentsKey  = "represents"
	EdgeInteractionKey = "interaction"
	EdgeIDKey          = "key"
)

// NodePropertyName translates a CX node property token to its GraphML
// key name (n→name, r→represents), identity otherwise
func NodePropertyName(name string) string {
	switch name {
	case cx.NameKey:
		return NodeNameKey
	case cx.RepresentsKey:
		return NodeRepresentsKey
	}
	return name
}

// EdgePropertyName translates a CX edge property token to its GraphML
// key name (i→interaction, @id→key), identity otherwise
func EdgePropertyName(name string) string {
	switch name {
	case cx.InteractionKey:
		return EdgeInteractionKey
	case cx.AtIDKey:
		return EdgeIDKey
	}
	return name
}
