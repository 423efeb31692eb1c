package naming

import "github.com/wrapgen/wrapgen/internal/trace"

// Builder accumulates overrides for the derived names of a resource.
// Calls chain; the last write to a field wins. Build computes defaults
// for anything left unset and never fails.
type Builder struct {
	name        string
	nameSnake   string
	envelope    string
	tag         string
	plural      string
	pluralSnake string
	metadata    string
}

// NewBuilder creates a builder for the given base resource name with
// every override slot empty.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Set applies an override value to the slot matching field. Unknown
// fields are ignored so unrelated directive attributes can share the
// declaration without breaking generation.
func (b *Builder) Set(field, value string) *Builder {
	switch field {
	case "name_snake":
		b.nameSnake = value
	case "name_and_metadata":
		b.envelope = value
	case "name_tag":
		b.tag = value
	case "plural":
		b.plural = value
	case "plural_snake":
		b.pluralSnake = value
	case "metadata":
		b.metadata = value
	default:
		trace.Warnf("unknown attribute %q ignored", field)
	}
	return b
}

// Build finalizes the identifier set. Defaults compose in dependency
// order: an overridden plural feeds the derived plural_snake.
func (b *Builder) Build() Names {
	plural := b.plural
	if plural == "" {
		plural = Pluralize(b.name)
	}

	n := Names{
		Name:         b.name,
		NameSnake:    b.nameSnake,
		Envelope:     b.envelope,
		Tag:          b.tag,
		Plural:       plural,
		PluralSnake:  b.pluralSnake,
		MetadataType: b.metadata,
	}
	if n.NameSnake == "" {
		n.NameSnake = ToSnakeCase(b.name)
	}
	if n.Envelope == "" {
		n.Envelope = b.name + "AndMetadata"
	}
	if n.Tag == "" {
		n.Tag = b.name + "Tag"
	}
	if n.PluralSnake == "" {
		n.PluralSnake = ToSnakeCase(plural)
	}
	if n.MetadataType == "" {
		n.MetadataType = "Metadata"
	}

	trace.Debugf("finalized names for %s: %+v", b.name, n)
	return n
}
