// Package vcard defines IRI constants for the W3C vCard ontology terms
// used by profile-editing applications built on this library.
package vcard
