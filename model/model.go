// Package model implements the schema-driven, immutable view over the
// subgraph anchored at one subject, and its re-synchronization with
// remote storage.
//
// A model groups the statements about its subject into named fields
// according to a schema (field key to predicate IRI). Every mutator
// returns a new model; field slices that a mutation does not touch are
// shared structurally between versions. Removed fields move to a
// graveyard until a save confirms their deletion remotely.
package model

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/c360studio/ldmodel/field"
	"github.com/c360studio/ldmodel/rdf"
)

// ErrMissingSubject is returned when a model is built without a
// subject IRI.
var ErrMissingSubject = errors.New("model subject is required")

// ErrUnknownKey is returned when a field is created for a key the
// schema does not name.
var ErrUnknownKey = errors.New("unknown field key")

// Schema maps application-chosen field keys to predicate IRIs.
type Schema map[string]string

// Model is an immutable collection of named field groups for one
// subject. The zero Model is not valid; use New.
type Model struct {
	subject   string
	schema    Schema
	sources   field.SourceConfig
	fields    map[string][]field.Field
	graveyard []field.Field
	logger    *slog.Logger
}

// Option configures a model at build time.
type Option func(*Model)

// WithLogger sets the logger used by Save. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// New builds a model by querying g for every schema predicate with the
// given subject and converting each matching quad into a field. Keys
// with no matching statements get an empty field group. Fails when a
// loaded literal cannot be decoded as its declared datatype.
func New(g rdf.Graph, subject string, schema Schema, cfg field.SourceConfig, opts ...Option) (*Model, error) {
	if subject == "" {
		return nil, fmt.Errorf("new model: %w", ErrMissingSubject)
	}
	m := &Model{
		subject: subject,
		schema:  schema,
		sources: cfg,
		fields:  make(map[string][]field.Field, len(schema)),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	subjectNode := rdf.NewNamedNode(subject)
	for key, predicate := range schema {
		quads := g.StatementsMatching(subjectNode, rdf.NewNamedNode(predicate))
		group := make([]field.Field, 0, len(quads))
		for _, q := range quads {
			f, err := field.FromQuad(cfg, q)
			if err != nil {
				return nil, fmt.Errorf("new model %s: %w", key, err)
			}
			group = append(group, f)
		}
		m.fields[key] = group
	}
	return m, nil
}

// Subject returns the model's subject IRI.
func (m *Model) Subject() string { return m.subject }

// Fields returns the live field group for key, empty for unknown keys.
// The returned slice must not be modified.
func (m *Model) Fields(key string) []field.Field {
	return m.fields[key]
}

// Get returns the current values of the field group for key.
func (m *Model) Get(key string) []any {
	group := m.fields[key]
	values := make([]any, len(group))
	for i, f := range group {
		values[i] = f.Value()
	}
	return values
}

// Any returns the first value for key, or ok=false when the group is
// empty. Order is stable within one model instance but not across
// graph re-parsing.
func (m *Model) Any(key string) (any, bool) {
	group := m.fields[key]
	if len(group) == 0 {
		return nil, false
	}
	return group[0].Value(), true
}

// Graveyard returns the fields removed from the live view but not yet
// confirmed deleted remotely. The returned slice must not be modified.
func (m *Model) Graveyard() []field.Field {
	return m.graveyard
}

// NewField creates an ad hoc field for a schema key, sharing the
// model's source config. This is the constructor Add expects.
func (m *Model) NewField(key string, value any, changes ...field.Change) (field.Field, error) {
	predicate, ok := m.schema[key]
	if !ok {
		return field.Field{}, fmt.Errorf("new field %q: %w", key, ErrUnknownKey)
	}
	return field.New(m.sources, predicate, value, changes...)
}

// Add returns a new model with f appended to key's field group. No
// deduplication is performed.
func (m *Model) Add(key string, f field.Field) *Model {
	next := m.clone()
	next.fields[key] = append(slices.Clone(m.fields[key]), f)
	return next
}

// Remove returns a new model with f moved from its field group to the
// graveyard, matched by ID. When f is not among the live fields the
// receiver itself is returned unchanged.
func (m *Model) Remove(f field.Field) *Model {
	key, i := m.locate(f.ID())
	if i < 0 {
		return m
	}
	next := m.clone()
	removed := m.fields[key][i]
	next.fields[key] = slices.Delete(slices.Clone(m.fields[key]), i, i+1)
	next.graveyard = append(slices.Clone(m.graveyard), removed)
	return next
}

// Set returns a new model with the live field matching f's ID replaced
// by that field with the given changes applied. When no live field
// matches, the receiver itself is returned unchanged.
func (m *Model) Set(f field.Field, changes ...field.Change) *Model {
	key, i := m.locate(f.ID())
	if i < 0 {
		return m
	}
	next := m.clone()
	group := slices.Clone(m.fields[key])
	group[i] = group[i].Set(changes...)
	next.fields[key] = group
	return next
}

// SetAny replaces the first field for key with the given value, or adds
// a brand-new field when the group is empty. Callers needing
// deterministic targeting among several fields for one key must use
// Set directly.
func (m *Model) SetAny(key string, value any, changes ...field.Change) (*Model, error) {
	group := m.fields[key]
	if len(group) > 0 {
		all := append([]field.Change{field.WithValue(value)}, changes...)
		return m.Set(group[0], all...), nil
	}
	f, err := m.NewField(key, value, changes...)
	if err != nil {
		return nil, err
	}
	return m.Add(key, f), nil
}

// Map returns a new model with fn applied to every live field,
// preserving key grouping. The graveyard is untouched.
func (m *Model) Map(fn func(field.Field) field.Field) *Model {
	next := m.clone()
	for key, group := range m.fields {
		mapped := make([]field.Field, len(group))
		for i, f := range group {
			mapped[i] = fn(f)
		}
		next.fields[key] = mapped
	}
	return next
}

// locate finds a live field by ID, returning its key and index, or
// ("", -1) when absent.
func (m *Model) locate(id string) (string, int) {
	for key, group := range m.fields {
		for i, f := range group {
			if f.ID() == id {
				return key, i
			}
		}
	}
	return "", -1
}

// clone copies the model shell, sharing field slices with the
// receiver. Mutators replace exactly the slices they touch.
func (m *Model) clone() *Model {
	fields := make(map[string][]field.Field, len(m.fields))
	for key, group := range m.fields {
		fields[key] = group
	}
	return &Model{
		subject:   m.subject,
		schema:    m.schema,
		sources:   m.sources,
		fields:    fields,
		graveyard: m.graveyard,
		logger:    m.logger,
	}
}

// keys returns the schema keys in sorted order, for deterministic
// iteration.
func (m *Model) keys() []string {
	keys := make([]string, 0, len(m.fields))
	for key := range m.fields {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
