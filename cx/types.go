// Package cx models CX network documents: a JSON array of
// independently named "aspect" fragments (nodes, edges, attribute
// lists) that together describe one graph.
package cx

// CX reserved property tokens
const (
	AtIDKey         = "@id"
	OwnerKey        = "po"
	NameKey         = "n"
	ValueKey        = "v"
	DeclaredTypeKey = "d"
	RepresentsKey   = "r"
	SourceKey       = "s"
	TargetKey       = "t"
	InteractionKey  = "i"
)

// Recognized aspect names; all other aspects are skipped
const (
	AspectNodes             = "nodes"
	AspectEdges             = "edges"
	AspectNodeAttributes    = "nodeAttributes"
	AspectEdgeAttributes    = "edgeAttributes"
	AspectNetworkAttributes = "networkAttributes"
)

// Properties is an insertion-ordered name→value map. Setting an
// existing name overwrites the value in place (last write wins) while
// keeping the name's original position.
type Properties struct {
	names []string
	vals  map[string]Value
}

// Set inserts or overwrites a property
func (p *Properties) Set(name string, v Value) {
	if p.vals == nil {
		p.vals = make(map[string]Value)
	}
	if _, ok := p.vals[name]; !ok {
		p.names = append(p.names, name)
	}
	p.vals[name] = v
}

// Get returns the value for name
func (p *Properties) Get(name string) (Value, bool) {
	v, ok := p.vals[name]
	return v, ok
}

// Len returns the number of properties
func (p *Properties) Len() int {
	return len(p.names)
}

// Names returns property names in insertion order. The returned slice
// is owned by the Properties and must not be mutated.
func (p *Properties) Names() []string {
	return p.names
}

// Node is a CX node: identity plus inline properties (n, r) later
// enriched with merged node attributes.
type Node struct {
	ID         int64
	Properties Properties
}

// Edge is a CX edge. Source and Target are node ids and are passed
// through without resolution (referential integrity is not validated).
type Edge struct {
	ID         int64
	Source     int64
	Target     int64
	Properties Properties
}

// AttributeRecord is one detached attribute fragment. It exists only
// until folded into its owning node/edge (or, for network attributes,
// consumed by the key schema and graph-level data).
type AttributeRecord struct {
	Owner        int64 // property-owner id; unused for network attributes
	Name         string
	Value        Value
	DeclaredType string
}

// Document is the in-memory form of one CX document, built once per
// export call and discarded at the end of it.
type Document struct {
	Nodes []Node
	Edges []Edge

	// Cleared by MergeAttributes once folded into Nodes/Edges, so a
	// later pass never double-counts them
	NodeAttributes []AttributeRecord
	EdgeAttributes []AttributeRecord

	// Never merged; consumed directly for the graph-scope key table
	// and graph-level data elements
	NetworkAttributes []AttributeRecord
}
