package cx

// MergeStats summarizes one attribute merge pass
type MergeStats struct {
	MergedNodeAttributes  int
	MergedEdgeAttributes  int
	DroppedNodeAttributes int
	DroppedEdgeAttributes int
}

// Dropped returns the total number of silently dropped attribute
// records (owner id matched no node/edge)
func (s MergeStats) Dropped() int {
	return s.DroppedNodeAttributes + s.DroppedEdgeAttributes
}

// MergeAttributes folds detached node/edge attribute records onto
// their owning node/edge by property-owner id. Records whose owner
// matches nothing are dropped — a data-quality condition, not an
// error. Repeated names for the same owner are last-write-wins.
//
// The node/edge attribute lists are cleared afterwards: their data
// now lives only inside the owning records, so the schema and
// serialization passes cannot double-count them. Network attributes
// are left untouched; they are consumed directly by the key schema
// and the graph-level data elements.
func (d *Document) MergeAttributes() MergeStats {
	var stats MergeStats

	nodeByID := make(map[int64]*Node, len(d.Nodes))
	for i := range d.Nodes {
		nodeByID[d.Nodes[i].ID] = &d.Nodes[i]
	}
	for _, rec := range d.NodeAttributes {
		node, ok := nodeByID[rec.Owner]
		if !ok {
			stats.DroppedNodeAttributes++
			continue
		}
		node.Properties.Set(rec.Name, rec.Value)
		stats.MergedNodeAttributes++
	}
	d.NodeAttributes = nil

	edgeByID := make(map[int64]*Edge, len(d.Edges))
	for i := range d.Edges {
		edgeByID[d.Edges[i].ID] = &d.Edges[i]
	}
	for _, rec := range d.EdgeAttributes {
		edge, ok := edgeByID[rec.Owner]
		if !ok {
			stats.DroppedEdgeAttributes++
			continue
		}
		edge.Properties.Set(rec.Name, rec.Value)
		stats.MergedEdgeAttributes++
	}
	d.EdgeAttributes = nil

	return stats
}
