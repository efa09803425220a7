package model

import "github.com/c360studio/ldmodel/field"

// ChangeSet is the statements to delete from and insert into one
// resource, in single-statement N-Triples form.
type ChangeSet struct {
	Deletions  []string
	Insertions []string
}

// DiffMap maps each resource URI that needs patching to its change
// set. An empty map means the model matches storage.
type DiffMap map[string]ChangeSet

// Empty reports whether the diff contains no changes.
func (d DiffMap) Empty() bool { return len(d) == 0 }

// Diff computes the minimal per-resource change set that brings
// storage in line with the model's current state.
//
// For every live field, the current statement is compared against the
// original one (graph included). Unchanged fields contribute nothing;
// in particular, a loaded field whose value and visibility are
// untouched resolves to its original source and stays out of the diff.
// A changed field deletes its original statement under the original
// graph (when one exists) and inserts the current statement under the
// resolved graph. Graveyard fields only ever delete their original
// statement.
func (m *Model) Diff() DiffMap {
	acc := make(map[string]*ChangeSet)
	entry := func(resource string) *ChangeSet {
		cs, ok := acc[resource]
		if !ok {
			cs = &ChangeSet{}
			acc[resource] = cs
		}
		return cs
	}

	for _, key := range m.keys() {
		for _, f := range m.fields[key] {
			current := f.ToQuad(m.subject)
			original, ok := f.OriginalQuad(m.subject)
			if ok && current.Equals(original) {
				continue
			}
			if ok {
				cs := entry(original.GraphValue())
				cs.Deletions = append(cs.Deletions, original.String())
			}
			cs := entry(current.GraphValue())
			cs.Insertions = append(cs.Insertions, current.String())
		}
	}

	for _, f := range m.graveyard {
		if original, ok := f.OriginalQuad(m.subject); ok {
			cs := entry(original.GraphValue())
			cs.Deletions = append(cs.Deletions, original.String())
		}
	}

	diff := make(DiffMap, len(acc))
	for resource, cs := range acc {
		diff[resource] = *cs
	}
	return diff
}

// deletionTarget returns the resource a graveyard field's deletion is
// addressed to, or ok=false when the field was never persisted.
func deletionTarget(f field.Field, subject string) (string, bool) {
	original, ok := f.OriginalQuad(subject)
	if !ok {
		return "", false
	}
	return original.GraphValue(), true
}
