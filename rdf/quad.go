package rdf

import "fmt"

// Quad is a subject-predicate-object statement plus the named graph it
// lives in. A zero Graph term means the statement is in the default
// graph. Quads are immutable values; comparison and serialization are
// stable, which the diff layer relies on.
type Quad struct {
	Subject   Term
	Predicate Term
	Object    Term
	Graph     Term
}

// NewQuad returns a statement in the named graph identified by
// graphIRI. An empty graphIRI places the statement in the default
// graph.
func NewQuad(subject, predicate, object Term, graphIRI string) Quad {
	q := Quad{Subject: subject, Predicate: predicate, Object: object}
	if graphIRI != "" {
		q.Graph = NewNamedNode(graphIRI)
	}
	return q
}

// Equals reports full quad equality, graph component included.
func (q Quad) Equals(other Quad) bool { return q == other }

// GraphValue returns the graph IRI, or "" for the default graph.
func (q Quad) GraphValue() string {
	if q.Graph.IsZero() {
		return ""
	}
	return q.Graph.Value()
}

// String renders the statement in single-triple N-Triples form,
// e.g. `<s> <p> "o" .`. The graph component is intentionally omitted:
// on the wire a statement is always addressed to the resource that is
// its graph, and the diff layer keys statements by graph separately.
func (q Quad) String() string {
	return fmt.Sprintf("%s %s %s .", q.Subject, q.Predicate, q.Object)
}
