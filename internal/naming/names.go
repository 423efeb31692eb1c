// Package naming derives the canonical identifier family for a resource:
// its snake case wire key, its plural forms, and the names of the
// generated wrapper types. Every derived name can be overridden through
// the resource directive; unset names are computed from the base name.
package naming

// Names holds the finalized identifiers for one resource. It is built
// once by Builder.Build and read by the code generator; it has no
// runtime existence beyond shaping the generated types.
type Names struct {
	// Name is the base resource type name, e.g. "MappingRule".
	Name string
	// NameSnake is the singular wire key, e.g. "mapping_rule".
	NameSnake string
	// Envelope is the type carrying an item plus optional metadata.
	Envelope string
	// Tag is the type binding an envelope to the singular wire key.
	Tag string
	// Plural is the collection type name, e.g. "MappingRules".
	Plural string
	// PluralSnake is the plural wire key, e.g. "mapping_rules".
	PluralSnake string
	// MetadataType is the caller-supplied metadata type name.
	MetadataType string
}
