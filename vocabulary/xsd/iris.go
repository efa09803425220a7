package xsd

// Namespace is the base IRI for the XML Schema datatype vocabulary.
const Namespace = "http://www.w3.org/2001/XMLSchema#"

// Datatype IRIs the codec dispatches on.
const (
	// String is the plain string datatype. Literals with no datatype are
	// treated as xsd:string.
	String = Namespace + "string"

	// Boolean is the boolean datatype. This codec accepts only the
	// canonical-short lexical forms "0" and "1".
	Boolean = Namespace + "boolean"

	// Integer is the arbitrary-size integer datatype.
	Integer = Namespace + "integer"

	// Decimal is the decimal number datatype.
	Decimal = Namespace + "decimal"

	// Double is the IEEE double-precision float datatype.
	Double = Namespace + "double"

	// DateTime is the ISO-8601 timestamp datatype.
	DateTime = Namespace + "dateTime"

	// Date is the ISO-8601 calendar date datatype.
	Date = Namespace + "date"
)
