package vcard

// Namespace is the base IRI for the vCard ontology.
const Namespace = "http://www.w3.org/2006/vcard/ns#"

// Common vCard predicates for personal profile documents.
const (
	// Fn is the formatted full name.
	Fn = Namespace + "fn"

	// Nickname is an informal name.
	Nickname = Namespace + "nickname"

	// HasEmail links a profile to a mailto: address resource.
	HasEmail = Namespace + "hasEmail"

	// HasTelephone links a profile to a tel: resource.
	HasTelephone = Namespace + "hasTelephone"

	// Note is free-form descriptive text.
	Note = Namespace + "note"

	// Role is the professional role or occupation.
	Role = Namespace + "role"

	// Organization is the organization name.
	Organization = Namespace + "organization-name"

	// Bday is the birth date.
	Bday = Namespace + "bday"
)
