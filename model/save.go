package model

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/c360studio/ldmodel/field"
	"github.com/c360studio/ldmodel/patch"
)

// PartialSaveError reports a save in which some, but not all,
// per-resource patches failed. It is the only expected, recoverable
// error in the library: the caller can retry with Model (which has the
// succeeded patches already folded in and keeps failed deletions in
// its graveyard), or merge further edits first.
type PartialSaveError struct {
	// Model is the post-save model with every succeeded patch applied.
	// Calling Save on it again retries exactly the failed subset.
	Model *Model

	// Diff is the change set the failed save attempted.
	Diff DiffMap

	// Failed is the sorted set of resource URIs whose patch failed.
	Failed []string

	// Causes maps each failed resource URI to its patch error.
	Causes map[string]error
}

func (e *PartialSaveError) Error() string {
	return fmt.Sprintf("save: %d of %d resources failed: %s",
		len(e.Failed), len(e.Diff), strings.Join(e.Failed, ", "))
}

// Save computes the model's diff and applies it through client, one
// concurrent patch per resource. An empty diff returns the receiver
// without any network call.
//
// All patches are attempted regardless of individual failures. Fields
// whose resolved source was patched successfully are promoted so their
// original state matches what was persisted; fields on failed
// resources stay pending and show up in the next diff. Graveyard
// entries are dropped once their deletion is confirmed applied and
// retained when it failed, so a retry re-issues the deletion.
//
// When every resource succeeds the new model is returned with a nil
// error; otherwise the returned error is a *PartialSaveError carrying
// the same partially-updated model.
func (m *Model) Save(ctx context.Context, client patch.Client) (*Model, error) {
	diff := m.Diff()
	if diff.Empty() {
		return m, nil
	}
	m.logger.Debug("saving model",
		"subject", m.subject,
		"resources", len(diff))

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		failures = make(map[string]error)
	)
	for resource, cs := range diff {
		wg.Add(1)
		go func(resource string, cs ChangeSet) {
			defer wg.Done()
			err := client.Patch(ctx, resource, cs.Deletions, cs.Insertions)
			if err != nil {
				mu.Lock()
				failures[resource] = err
				mu.Unlock()
			}
		}(resource, cs)
	}
	wg.Wait()

	succeeded := func(resource string) bool {
		if _, attempted := diff[resource]; !attempted {
			return false
		}
		_, failed := failures[resource]
		return !failed
	}

	next := m.Map(func(f field.Field) field.Field {
		if succeeded(f.Source()) {
			return f.FromCurrentState(m.subject)
		}
		return f
	})

	var retained []field.Field
	for _, f := range m.graveyard {
		if target, ok := deletionTarget(f, m.subject); ok && !succeeded(target) {
			retained = append(retained, f)
		}
	}
	next = next.clone()
	next.graveyard = retained

	if len(failures) == 0 {
		return next, nil
	}
	failed := make([]string, 0, len(failures))
	for resource := range failures {
		failed = append(failed, resource)
	}
	slices.Sort(failed)
	for _, resource := range failed {
		m.logger.Warn("patch failed",
			"subject", m.subject,
			"resource", resource,
			"error", failures[resource])
	}
	return next, &PartialSaveError{
		Model:  next,
		Diff:   diff,
		Failed: failed,
		Causes: failures,
	}
}
