// Package patch defines the transport the synchronizer uses to apply a
// model diff, and provides an LDP HTTP implementation of it.
package patch

import "context"

// Client applies one resource's deletions and insertions in a single
// request. Implementations must treat the call as atomic per resource:
// either the whole change set applies or an error is returned.
// Statements are in single-statement N-Triples form.
type Client interface {
	Patch(ctx context.Context, resource string, deletions, insertions []string) error
}
