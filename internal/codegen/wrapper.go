package codegen

import (
	"github.com/wrapgen/wrapgen/internal/naming"
)

// GenerateFamily emits the wrapper family for one resource, in order:
// envelope, tag, collection, then the three conversions. The caller's
// struct declaration is never part of this output; see GenerateExpanded
// for the additive, declaration-plus-family rendering.
func (g *Generator) GenerateFamily(n naming.Names) {
	g.imports["encoding/json"] = true
	g.imports["reflect"] = true

	g.generateEnvelope(n)
	g.writeLine("")
	g.generateTag(n)
	g.writeLine("")
	g.generateCollection(n)
	g.writeLine("")
	g.generateConversions(n)
}

// GenerateExpanded emits the original declaration verbatim followed by
// its wrapper family.
func (g *Generator) GenerateExpanded(n naming.Names, source string) {
	g.buf.WriteString(source)
	g.writeLine("")
	g.writeLine("")
	g.GenerateFamily(n)
}

// generateEnvelope emits the item-plus-metadata type. Metadata takes
// part in deserialization only; serializing an envelope writes the item
// fields and nothing else.
func (g *Generator) generateEnvelope(n naming.Names) {
	g.writeLine("// %s carries one %s together with the read-only metadata", n.Envelope, n.Name)
	g.writeLine("// the server merges into responses.")
	g.writeLine("type %s struct {", n.Envelope)
	g.indent++
	g.writeLine("%s", n.Name)
	g.writeLine("Metadata *%s `json:\"-\"`", n.MetadataType)
	g.indent--
	g.writeLine("}")
	g.writeLine("")

	g.writeLine("// MarshalJSON writes the item fields only. Metadata is never sent")
	g.writeLine("// back to the server.")
	g.writeLine("func (e %s) MarshalJSON() ([]byte, error) {", n.Envelope)
	g.indent++
	g.writeLine("return json.Marshal(e.%s)", n.Name)
	g.indent--
	g.writeLine("}")
	g.writeLine("")

	g.writeLine("// UnmarshalJSON reads the item fields and, when the flat object also")
	g.writeLine("// carries metadata fields, fills the metadata slot. A response without")
	g.writeLine("// metadata leaves the slot nil.")
	g.writeLine("func (e *%s) UnmarshalJSON(data []byte) error {", n.Envelope)
	g.indent++
	g.writeLine("if err := json.Unmarshal(data, &e.%s); err != nil {", n.Name)
	g.indent++
	g.writeLine("return err")
	g.indent--
	g.writeLine("}")
	g.writeLine("var metadata %s", n.MetadataType)
	g.writeLine("if err := json.Unmarshal(data, &metadata); err != nil {")
	g.indent++
	g.writeLine("return nil")
	g.indent--
	g.writeLine("}")
	g.writeLine("if reflect.ValueOf(metadata).IsZero() {")
	g.indent++
	g.writeLine("return nil")
	g.indent--
	g.writeLine("}")
	g.writeLine("e.Metadata = &metadata")
	g.writeLine("return nil")
	g.indent--
	g.writeLine("}")
}

// generateTag emits the single-key wrapper binding an envelope to the
// singular resource key, reproducing the server habit of wrapping every
// collection element in an object with one key.
func (g *Generator) generateTag(n naming.Names) {
	g.writeLine("// %s wraps one envelope under the %q key.", n.Tag, n.NameSnake)
	g.writeLine("type %s struct {", n.Tag)
	g.indent++
	g.writeLine("%s %s `json:\"%s\"`", n.Name, n.Envelope, n.NameSnake)
	g.indent--
	g.writeLine("}")
}

// generateCollection emits the outer wrapper holding the tag sequence
// under the plural resource key.
func (g *Generator) generateCollection(n naming.Names) {
	field := naming.ToPascalCase(n.PluralSnake)

	g.writeLine("// %s is the collection envelope for %s values.", n.Plural, n.Name)
	g.writeLine("type %s struct {", n.Plural)
	g.indent++
	g.writeLine("%s []%s `json:\"%s\"`", field, n.Tag, n.PluralSnake)
	g.indent--
	g.writeLine("}")
}

// generateConversions emits the three total conversions: item list to
// collection, collection to envelope list, collection to item list.
// All of them preserve order and count.
func (g *Generator) generateConversions(n naming.Names) {
	field := naming.ToPascalCase(n.PluralSnake)

	g.writeLine("// New%s wraps a list of items into the collection shape. Freshly", n.Plural)
	g.writeLine("// constructed data has no server-assigned metadata.")
	g.writeLine("func New%s(items []%s) %s {", n.Plural, n.Name, n.Plural)
	g.indent++
	g.writeLine("tags := make([]%s, 0, len(items))", n.Tag)
	g.writeLine("for _, item := range items {")
	g.indent++
	g.writeLine("tags = append(tags, %s{%s: %s{%s: item}})", n.Tag, n.Name, n.Envelope, n.Name)
	g.indent--
	g.writeLine("}")
	g.writeLine("return %s{%s: tags}", n.Plural, field)
	g.indent--
	g.writeLine("}")
	g.writeLine("")

	g.writeLine("// Envelopes unwraps every tag, keeping items paired with their metadata.")
	g.writeLine("func (c %s) Envelopes() []%s {", n.Plural, n.Envelope)
	g.indent++
	g.writeLine("envelopes := make([]%s, 0, len(c.%s))", n.Envelope, field)
	g.writeLine("for _, tag := range c.%s {", field)
	g.indent++
	g.writeLine("envelopes = append(envelopes, tag.%s)", n.Name)
	g.indent--
	g.writeLine("}")
	g.writeLine("return envelopes")
	g.indent--
	g.writeLine("}")
	g.writeLine("")

	g.writeLine("// Items unwraps every tag and discards the metadata.")
	g.writeLine("func (c %s) Items() []%s {", n.Plural, n.Name)
	g.indent++
	g.writeLine("items := make([]%s, 0, len(c.%s))", n.Name, field)
	g.writeLine("for _, tag := range c.%s {", field)
	g.indent++
	g.writeLine("items = append(items, tag.%s.%s)", n.Name, n.Name)
	g.indent--
	g.writeLine("}")
	g.writeLine("return items")
	g.indent--
	g.writeLine("}")
}
