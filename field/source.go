package field

// SourceConfig classifies the named graphs ("sources") an application
// knows about as listed (public) or unlisted (private), and names the
// default graph for each classification. It is read-only and shared by
// every field and model derived from one schema.
type SourceConfig struct {
	// DefaultListed is the graph new public data is written to.
	DefaultListed string

	// DefaultUnlisted is the graph new private data is written to.
	DefaultUnlisted string

	// Index maps every known graph IRI to its classification.
	Index map[string]bool
}

// Classify returns the listed/unlisted classification of a graph IRI.
// Unknown graphs classify as unlisted.
func (c SourceConfig) Classify(graphIRI string) bool {
	return c.Index[graphIRI]
}

// DefaultFor returns the default graph for a classification.
func (c SourceConfig) DefaultFor(listed bool) string {
	if listed {
		return c.DefaultListed
	}
	return c.DefaultUnlisted
}
