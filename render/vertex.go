package render

// edgeKey identifies one grid edge by the global index of its
// lower-coordinate corner and the axis (0=X,1=Y,2=Z) it runs along. Two
// adjacent cells that share an edge compute the same key, so hashing it
// to a vertex index welds the two cells' triangles together (spec §4.6).
type edgeKey struct {
	corner uint64
	axis   uint8
}

// vertexWelder deduplicates mesh vertices produced along shared grid
// edges — the grid-based analogue of the teacher's MeshTet4.Lookup
// vertex cache (render/tet4.go in the pack), keyed by edge identity
// instead of by raw coordinate.
type vertexWelder struct {
	index map[edgeKey]uint32
}

func newVertexWelder() *vertexWelder {
	return &vertexWelder{index: make(map[edgeKey]uint32)}
}

// get returns the existing vertex index for key if one was already
// emitted, or calls emit to create one and remembers it.
func (w *vertexWelder) get(key edgeKey, emit func() Vertex, verts *[]Vertex) uint32 {
	if idx, ok := w.index[key]; ok {
		return idx
	}
	idx := uint32(len(*verts))
	*verts = append(*verts, emit())
	w.index[key] = idx
	return idx
}
