// Package field implements the immutable field value object: one value
// of one predicate for an implicit subject, tracking both the original
// statement it was parsed from (if any) and its current proposed state.
//
// Fields come in two variants. A field parsed from a quad carries its
// original object term and source graph, which the diff layer compares
// against the field's current state. An ad hoc field has no original
// state and is always a pending insertion. Mutation goes exclusively
// through Set, which returns a new field; a field is never modified in
// place.
package field

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/c360studio/ldmodel/codec"
	"github.com/c360studio/ldmodel/rdf"
)

// Field is one (predicate, value, source, listed) tuple. The zero Field
// is not valid; use New or FromQuad.
type Field struct {
	id        string
	predicate string
	value     any
	listed    bool

	// Shape of the object term, preserved across value updates so a
	// re-serialized field matches its original statement: a field
	// parsed from a named-node object stays a named node, and a
	// language-tagged literal keeps its tag.
	namedNode bool
	language  string

	// Original state, present only for fields parsed from a quad.
	hasOriginal    bool
	originalObject rdf.Term
	originalSource string

	sources SourceConfig
}

// Change is a functional update applied by New and Set. An option that
// is not passed leaves the corresponding attribute unchanged, which is
// distinct from passing a zero value: WithValue(false), WithValue(0)
// and WithValue("") all apply.
type Change func(*Field)

// WithValue replaces the field's value.
func WithValue(value any) Change {
	return func(f *Field) { f.value = value }
}

// WithListed replaces the field's visibility flag.
func WithListed(listed bool) Change {
	return func(f *Field) { f.listed = listed }
}

// New creates an ad hoc field with no original state. Visibility
// defaults to unlisted; pass WithListed(true) for public data.
func New(cfg SourceConfig, predicate string, value any, changes ...Change) (Field, error) {
	f := Field{
		id:        uuid.NewString(),
		predicate: predicate,
		value:     value,
		sources:   cfg,
	}
	for _, change := range changes {
		change(&f)
	}
	if f.predicate == "" {
		return Field{}, fmt.Errorf("new field: %w", ErrMissingPredicate)
	}
	if f.value == nil {
		return Field{}, fmt.Errorf("new field %s: %w", f.predicate, ErrMissingValue)
	}
	return f, nil
}

// FromQuad creates a field from a statement loaded out of a graph. The
// value is decoded from the object term via the codec; the visibility
// flag is the source config's classification of the quad's graph
// (unlisted when the quad has no graph or the graph is unknown).
func FromQuad(cfg SourceConfig, q rdf.Quad) (Field, error) {
	if q.Predicate.IsZero() || q.Predicate.Value() == "" {
		return Field{}, fmt.Errorf("field from quad: %w", ErrMissingPredicate)
	}
	f := Field{
		id:             uuid.NewString(),
		predicate:      q.Predicate.Value(),
		listed:         cfg.Classify(q.GraphValue()),
		hasOriginal:    true,
		originalObject: q.Object,
		originalSource: q.GraphValue(),
		sources:        cfg,
	}
	switch q.Object.Kind() {
	case rdf.KindNamedNode:
		f.value = q.Object.Value()
		f.namedNode = true
	default:
		value, err := codec.Decode(q.Object.Value(), q.Object.Datatype())
		if err != nil {
			return Field{}, fmt.Errorf("field from quad %s: %w", f.predicate, err)
		}
		f.value = value
		f.language = q.Object.Language()
	}
	return f, nil
}

// ID returns the field's opaque identifier. Every construction and
// every Set mints a fresh one.
func (f Field) ID() string { return f.id }

// Predicate returns the predicate IRI.
func (f Field) Predicate() string { return f.predicate }

// Value returns the current native value.
func (f Field) Value() any { return f.value }

// Listed returns the current visibility flag.
func (f Field) Listed() bool { return f.listed }

// OriginalSource returns the graph IRI the field was parsed from, and
// whether the field has an original state at all.
func (f Field) OriginalSource() (string, bool) {
	return f.originalSource, f.hasOriginal
}

// OriginalObject returns the object term the field was parsed from,
// and whether the field has an original state at all.
func (f Field) OriginalObject() (rdf.Term, bool) {
	return f.originalObject, f.hasOriginal
}

// Set returns a new field with the given changes applied. The original
// state is carried over unchanged; attributes without a corresponding
// option keep their current value.
func (f Field) Set(changes ...Change) Field {
	next := f
	next.id = uuid.NewString()
	for _, change := range changes {
		change(&next)
	}
	return next
}

// ToggleListed returns a new field with the visibility flag flipped.
func (f Field) ToggleListed() Field {
	return f.Set(WithListed(!f.listed))
}

// Source resolves the graph the field's current state belongs in. A
// field stays on its original source as long as that source's
// classification matches the field's current visibility; otherwise it
// moves to the default graph for the visibility. Staying put is what
// lets a field be toggled private-public-private and land back on its
// original non-default private graph instead of the global default.
func (f Field) Source() string {
	if f.hasOriginal && f.originalSource != "" && f.sources.Classify(f.originalSource) == f.listed {
		return f.originalSource
	}
	return f.sources.DefaultFor(f.listed)
}

// ToQuad materializes the field's current state as a statement about
// subject, placed in the graph chosen by Source.
func (f Field) ToQuad(subject string) rdf.Quad {
	return rdf.NewQuad(
		rdf.NewNamedNode(subject),
		rdf.NewNamedNode(f.predicate),
		f.object(),
		f.Source(),
	)
}

// OriginalQuad materializes the field's original state, or ok=false for
// an ad hoc field that was never persisted.
func (f Field) OriginalQuad(subject string) (rdf.Quad, bool) {
	if !f.hasOriginal {
		return rdf.Quad{}, false
	}
	q := rdf.NewQuad(
		rdf.NewNamedNode(subject),
		rdf.NewNamedNode(f.predicate),
		f.originalObject,
		f.originalSource,
	)
	return q, true
}

// FromCurrentState returns a new field whose original state is the
// field's current statement about subject, discarding prior history.
// Used after a successful save to mark the field clean.
func (f Field) FromCurrentState(subject string) Field {
	q := f.ToQuad(subject)
	next := f
	next.id = uuid.NewString()
	next.hasOriginal = true
	next.originalObject = q.Object
	next.originalSource = q.GraphValue()
	return next
}

// object renders the current value as a term, preserving the shape of
// the original object where the value is still a string.
func (f Field) object() rdf.Term {
	if t, ok := f.value.(rdf.Term); ok {
		return t
	}
	if s, ok := f.value.(string); ok {
		if f.namedNode {
			return rdf.NewNamedNode(s)
		}
		if f.language != "" {
			return rdf.NewLangLiteral(s, f.language)
		}
	}
	lexical, datatype := codec.Encode(f.value)
	return rdf.NewTypedLiteral(lexical, datatype)
}
