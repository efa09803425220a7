// Package xsd defines IRI constants for the XML Schema datatypes
// recognized by the value codec.
package xsd
