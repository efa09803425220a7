package rdf_test

import (
	"testing"

	"github.com/c360studio/ldmodel/rdf"
	"github.com/c360studio/ldmodel/vocabulary/xsd"
)

func TestTermString(t *testing.T) {
	tests := []struct {
		name string
		term rdf.Term
		want string
	}{
		{
			name: "named node",
			term: rdf.NewNamedNode("https://ex.com/profile/card#me"),
			want: "<https://ex.com/profile/card#me>",
		},
		{
			name: "plain literal",
			term: rdf.NewLiteral("Alice"),
			want: `"Alice"`,
		},
		{
			name: "explicit xsd:string uses short form",
			term: rdf.NewTypedLiteral("Alice", xsd.String),
			want: `"Alice"`,
		},
		{
			name: "typed literal",
			term: rdf.NewTypedLiteral("24", xsd.Integer),
			want: `"24"^^<http://www.w3.org/2001/XMLSchema#integer>`,
		},
		{
			name: "language-tagged literal",
			term: rdf.NewLangLiteral("bonjour", "fr"),
			want: `"bonjour"@fr`,
		},
		{
			name: "escaped quotes and newline",
			term: rdf.NewLiteral("say \"hi\"\nplease"),
			want: `"say \"hi\"\nplease"`,
		},
		{
			name: "escaped backslash",
			term: rdf.NewLiteral(`C:\data`),
			want: `"C:\\data"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.term.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTermEquals(t *testing.T) {
	if !rdf.NewLiteral("a").Equals(rdf.NewTypedLiteral("a", xsd.String)) {
		t.Error("plain literal should equal explicit xsd:string literal")
	}
	if rdf.NewLiteral("a").Equals(rdf.NewNamedNode("a")) {
		t.Error("literal should not equal named node with same value")
	}
	if rdf.NewLangLiteral("a", "en").Equals(rdf.NewLangLiteral("a", "de")) {
		t.Error("language tags must participate in equality")
	}
}

func TestZeroTerm(t *testing.T) {
	var zero rdf.Term
	if !zero.IsZero() {
		t.Error("zero term should report IsZero")
	}
	if rdf.NewNamedNode("https://ex.com/g").IsZero() {
		t.Error("named node should not report IsZero")
	}
}

func TestQuadString(t *testing.T) {
	q := rdf.NewQuad(
		rdf.NewNamedNode("https://ex.com/card#me"),
		rdf.NewNamedNode("http://www.w3.org/2006/vcard/ns#fn"),
		rdf.NewLiteral("Alice"),
		"https://ex.com/card",
	)
	want := `<https://ex.com/card#me> <http://www.w3.org/2006/vcard/ns#fn> "Alice" .`
	if got := q.String(); got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
	if got := q.GraphValue(); got != "https://ex.com/card" {
		t.Errorf("GraphValue() = %s", got)
	}
}

func TestQuadEqualsIncludesGraph(t *testing.T) {
	s := rdf.NewNamedNode("https://ex.com/card#me")
	p := rdf.NewNamedNode("http://www.w3.org/2006/vcard/ns#fn")
	o := rdf.NewLiteral("Alice")

	a := rdf.NewQuad(s, p, o, "https://ex.com/card")
	b := rdf.NewQuad(s, p, o, "https://ex.com/card")
	c := rdf.NewQuad(s, p, o, "https://ex.com/private")

	if !a.Equals(b) {
		t.Error("identical quads should be equal")
	}
	if a.Equals(c) {
		t.Error("quads in different graphs should not be equal")
	}
}

func TestQuadDefaultGraph(t *testing.T) {
	q := rdf.NewQuad(
		rdf.NewNamedNode("https://ex.com/card#me"),
		rdf.NewNamedNode("http://www.w3.org/2006/vcard/ns#fn"),
		rdf.NewLiteral("Alice"),
		"",
	)
	if !q.Graph.IsZero() {
		t.Error("empty graph IRI should yield a zero graph term")
	}
	if q.GraphValue() != "" {
		t.Errorf("GraphValue() = %q, want empty", q.GraphValue())
	}
}
