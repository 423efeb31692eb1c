// Package codegen emits the companion types for an annotated resource:
// the envelope carrying item plus read-only metadata, the single-key tag
// wrapper, the collection wrapper, and the conversions between plain
// item slices and the collection shape.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
)

// Generator accumulates generated Go source for one output file.
type Generator struct {
	buf     *bytes.Buffer
	indent  int
	imports map[string]bool
}

// NewGenerator creates a new code generator.
func NewGenerator() *Generator {
	return &Generator{
		buf:     &bytes.Buffer{},
		indent:  0,
		imports: make(map[string]bool),
	}
}

// writeLine writes an indented line; an empty format writes a blank line.
func (g *Generator) writeLine(format string, args ...interface{}) {
	if format == "" {
		g.buf.WriteString("\n")
		return
	}

	for i := 0; i < g.indent; i++ {
		g.buf.WriteString("\t")
	}

	if len(args) > 0 {
		g.buf.WriteString(fmt.Sprintf(format, args...))
	} else {
		g.buf.WriteString(format)
	}
	g.buf.WriteString("\n")
}

// String returns the accumulated source without the file preamble.
func (g *Generator) String() string {
	return g.buf.String()
}

// File assembles a complete generated file: header, package clause,
// imports, then the accumulated declarations, passed through gofmt.
func (g *Generator) File(pkg string, header string) ([]byte, error) {
	var out bytes.Buffer

	out.WriteString("// Code generated by wrapgen. DO NOT EDIT.\n")
	if header != "" {
		out.WriteString("// " + header + "\n")
	}
	out.WriteString("\n")
	out.WriteString(fmt.Sprintf("package %s\n\n", pkg))

	if len(g.imports) > 0 {
		out.WriteString("import (\n")
		for _, imp := range sortedImports(g.imports) {
			out.WriteString(fmt.Sprintf("\t%q\n", imp))
		}
		out.WriteString(")\n\n")
	}

	out.Write(g.buf.Bytes())

	formatted, err := format.Source(out.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code does not parse: %w", err)
	}
	return formatted, nil
}

func sortedImports(imports map[string]bool) []string {
	keys := make([]string, 0, len(imports))
	for k := range imports {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
