// Package rdf provides the minimal term and quad model the library is
// built on: named nodes, literals, quads with a named-graph component,
// N-Triples statement serialization, and the Graph read interface the
// model factory queries. It deliberately depends on no external RDF
// library so that any store binding able to produce these values can
// feed the model layer.
package rdf

import (
	"strings"

	"github.com/c360studio/ldmodel/vocabulary/xsd"
)

// Namespace is the base IRI of the RDF vocabulary itself.
const Namespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// IRIs from the RDF namespace used by the codec and serializer.
const (
	// Type is the rdf:type predicate.
	Type = Namespace + "type"

	// LangString is the datatype of language-tagged literals.
	LangString = Namespace + "langString"
)

// Kind discriminates the term variants.
type Kind string

const (
	// KindNamedNode is an IRI term.
	KindNamedNode Kind = "named-node"

	// KindLiteral is a literal term with a datatype and optional
	// language tag.
	KindLiteral Kind = "literal"
)

// Term is an immutable RDF term: a named node or a literal. The zero
// Term is "no term" and is used where a quad has no graph component.
type Term struct {
	kind     Kind
	value    string
	datatype string
	language string
}

// NewNamedNode returns an IRI term.
func NewNamedNode(iri string) Term {
	return Term{kind: KindNamedNode, value: iri}
}

// NewLiteral returns a plain string literal (datatype xsd:string).
func NewLiteral(value string) Term {
	return Term{kind: KindLiteral, value: value, datatype: xsd.String}
}

// NewTypedLiteral returns a literal with an explicit datatype. An empty
// datatype is normalized to xsd:string.
func NewTypedLiteral(value, datatype string) Term {
	if datatype == "" {
		datatype = xsd.String
	}
	return Term{kind: KindLiteral, value: value, datatype: datatype}
}

// NewLangLiteral returns a language-tagged literal (datatype
// rdf:langString).
func NewLangLiteral(value, language string) Term {
	return Term{kind: KindLiteral, value: value, datatype: LangString, language: language}
}

// Kind returns the term variant.
func (t Term) Kind() Kind { return t.kind }

// Value returns the IRI of a named node or the lexical form of a
// literal.
func (t Term) Value() string { return t.value }

// Datatype returns the datatype IRI of a literal, or "" for named
// nodes.
func (t Term) Datatype() string { return t.datatype }

// Language returns the language tag of an rdf:langString literal.
func (t Term) Language() string { return t.language }

// IsZero reports whether the term is the zero "no term" value.
func (t Term) IsZero() bool { return t.kind == "" }

// Equals reports term equality across kind, value, datatype and
// language.
func (t Term) Equals(other Term) bool { return t == other }

// String renders the term in N-Triples form: <iri> for named nodes,
// "value", "value"@lang or "value"^^<datatype> for literals. Plain
// xsd:string literals use the short form.
func (t Term) String() string {
	switch t.kind {
	case KindNamedNode:
		return "<" + t.value + ">"
	case KindLiteral:
		s := `"` + escapeLiteral(t.value) + `"`
		if t.language != "" {
			return s + "@" + t.language
		}
		if t.datatype != "" && t.datatype != xsd.String {
			return s + "^^<" + t.datatype + ">"
		}
		return s
	default:
		return ""
	}
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// escapeLiteral applies the N-Triples string escape rules.
func escapeLiteral(s string) string {
	return literalEscaper.Replace(s)
}
