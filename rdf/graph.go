package rdf

// Graph is the read contract the model factory needs from a store: all
// statements with the given subject and predicate, in any graph.
type Graph interface {
	StatementsMatching(subject, predicate Term) []Quad
}

type subjectPredicate struct {
	subject   string
	predicate string
}

// IndexedGraph is an in-memory Graph backed by a subject+predicate
// index. It is the default binding used by tests and by applications
// that already hold a parsed snapshot of their data.
type IndexedGraph struct {
	quads []Quad
	index map[subjectPredicate][]int
}

// NewIndexedGraph returns a graph pre-loaded with the given quads.
func NewIndexedGraph(quads ...Quad) *IndexedGraph {
	g := &IndexedGraph{index: make(map[subjectPredicate][]int)}
	g.Add(quads...)
	return g
}

// Add appends quads to the graph. Duplicate statements are kept as-is;
// deduplication is the loader's concern.
func (g *IndexedGraph) Add(quads ...Quad) {
	for _, q := range quads {
		key := subjectPredicate{subject: q.Subject.Value(), predicate: q.Predicate.Value()}
		g.index[key] = append(g.index[key], len(g.quads))
		g.quads = append(g.quads, q)
	}
}

// Len returns the number of quads in the graph.
func (g *IndexedGraph) Len() int { return len(g.quads) }

// StatementsMatching returns all quads with the given subject and
// predicate, in insertion order.
func (g *IndexedGraph) StatementsMatching(subject, predicate Term) []Quad {
	key := subjectPredicate{subject: subject.Value(), predicate: predicate.Value()}
	positions := g.index[key]
	if len(positions) == 0 {
		return nil
	}
	matched := make([]Quad, 0, len(positions))
	for _, i := range positions {
		matched = append(matched, g.quads[i])
	}
	return matched
}
