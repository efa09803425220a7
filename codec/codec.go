// Package codec maps between native Go values and RDF literal lexical
// forms, keyed by datatype IRI.
//
// Decode and Encode are inverses for every supported datatype:
// Decode(Encode(v)) == v for booleans, integers, doubles, timestamps
// and strings. Unrecognized datatypes never fail; they pass the
// lexical form through as a string.
package codec

import (
	"fmt"
	"strconv"
	"time"

	"github.com/c360studio/ldmodel/rdf"
	"github.com/c360studio/ldmodel/vocabulary/xsd"
)

// Decode converts a literal's lexical form into a native value
// according to its datatype IRI. Malformed lexical forms for a
// recognized datatype return a *DecodeError. Literals with an
// unrecognized or empty datatype decode to the lexical form itself.
func Decode(lexical, datatype string) (any, error) {
	switch datatype {
	case xsd.Boolean:
		// Only the canonical short forms round-trip.
		switch lexical {
		case "1":
			return true, nil
		case "0":
			return false, nil
		default:
			return nil, &DecodeError{Lexical: lexical, Datatype: datatype, Reason: `boolean literals must be "0" or "1"`}
		}
	case xsd.Integer:
		n, err := strconv.ParseInt(lexical, 10, 64)
		if err != nil {
			return nil, &DecodeError{Lexical: lexical, Datatype: datatype, Reason: "not an integer"}
		}
		return n, nil
	case xsd.Decimal, xsd.Double:
		f, err := strconv.ParseFloat(lexical, 64)
		if err != nil {
			return nil, &DecodeError{Lexical: lexical, Datatype: datatype, Reason: "not a number"}
		}
		return f, nil
	case xsd.DateTime:
		t, err := time.Parse(time.RFC3339Nano, lexical)
		if err != nil {
			return nil, &DecodeError{Lexical: lexical, Datatype: datatype, Reason: "not an RFC 3339 timestamp"}
		}
		return t, nil
	default:
		// xsd:string, rdf:langString and anything unrecognized are
		// identity.
		return lexical, nil
	}
}

// Encode converts a native value into a literal lexical form, inferring
// the datatype IRI from the Go type. Values of unsupported types fall
// back to their fmt representation as plain strings, so encoding never
// fails.
func Encode(value any) (lexical, datatype string) {
	switch v := value.(type) {
	case bool:
		if v {
			return "1", xsd.Boolean
		}
		return "0", xsd.Boolean
	case int:
		return strconv.FormatInt(int64(v), 10), xsd.Integer
	case int32:
		return strconv.FormatInt(int64(v), 10), xsd.Integer
	case int64:
		return strconv.FormatInt(v, 10), xsd.Integer
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), xsd.Double
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), xsd.Double
	case time.Time:
		return v.Format(time.RFC3339Nano), xsd.DateTime
	case string:
		return v, xsd.String
	default:
		return fmt.Sprint(value), xsd.String
	}
}

// EncodeAs converts a native value into the lexical form of an explicit
// datatype. It fails when the value's Go type does not match the
// datatype.
func EncodeAs(value any, datatype string) (string, error) {
	lexical, inferred := Encode(value)
	switch datatype {
	case "", inferred:
		return lexical, nil
	case xsd.Decimal:
		if inferred == xsd.Double {
			return lexical, nil
		}
	case rdf.LangString:
		if inferred == xsd.String {
			return lexical, nil
		}
	}
	return "", fmt.Errorf("codec: cannot encode %T as <%s>", value, datatype)
}
