package codec

import "fmt"

// DecodeError reports a literal whose lexical form cannot be parsed as
// its declared datatype.
type DecodeError struct {
	// Lexical is the offending lexical form.
	Lexical string

	// Datatype is the declared datatype IRI.
	Datatype string

	// Reason describes what was wrong with the lexical form.
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("codec: cannot decode %q as <%s>: %s", e.Lexical, e.Datatype, e.Reason)
}
