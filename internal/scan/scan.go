// Package scan locates annotated resource declarations in Go source.
// A resource is any struct type whose declaration carries a
// //wrapgen:resource directive comment.
package scan

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"
)

// Marker is the directive prefix recognized on type declarations.
const Marker = "wrapgen:resource"

// Resource is one annotated struct declaration.
type Resource struct {
	Name   string // struct type name
	Pkg    string // package name
	Dir    string // directory containing the source file
	File   string // source file path
	Args   string // directive attribute text, unparsed
	Source string // verbatim declaration source, directive excluded
	Fields []Field
	Pos    token.Position
}

// Field describes one struct field. Fields are passed through for
// reporting only; the generator never rewrites them.
type Field struct {
	Names []string
	Type  string
	Tag   string
}

// fromFile extracts annotated resources from a single parsed file.
// src must be the file's original bytes so declarations can be
// reproduced verbatim.
func fromFile(fset *token.FileSet, file *ast.File, filename string, src []byte) ([]*Resource, error) {
	var resources []*Resource

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		declArgs, declDirective := extractDirective(genDecl.Doc)

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			args, found := extractDirective(typeSpec.Doc)
			if !found && declDirective && len(genDecl.Specs) == 1 {
				args, found = declArgs, true
			}
			if !found {
				continue
			}

			pos := fset.Position(typeSpec.Pos())
			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				return nil, fmt.Errorf("%s: %s directive must be on a struct type, found %s",
					pos, Marker, typeSpec.Name.Name)
			}

			source, err := declSource(fset, typeSpec, src)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", pos, err)
			}

			resources = append(resources, &Resource{
				Name:   typeSpec.Name.Name,
				Pkg:    file.Name.Name,
				File:   filename,
				Args:   args,
				Source: source,
				Fields: structFields(structType),
				Pos:    pos,
			})
		}
	}

	return resources, nil
}

// extractDirective finds the directive line in a comment group and
// returns its attribute text.
func extractDirective(doc *ast.CommentGroup) (string, bool) {
	if doc == nil {
		return "", false
	}
	for _, comment := range doc.List {
		text := strings.TrimPrefix(comment.Text, "//")
		if !strings.HasPrefix(text, Marker) {
			continue
		}
		rest := text[len(Marker):]
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			continue // a longer, unrelated directive name
		}
		return strings.TrimSpace(rest), true
	}
	return "", false
}

// declSource slices the original file bytes covering the declaration.
// The directive comment sits above the declaration and is not included,
// which keeps expanded output from being picked up on a rescan.
func declSource(fset *token.FileSet, spec *ast.TypeSpec, src []byte) (string, error) {
	start := fset.Position(spec.Pos()).Offset
	end := fset.Position(spec.End()).Offset
	if start < 0 || end > len(src) || start > end {
		return "", fmt.Errorf("declaration of %s is outside the provided source", spec.Name.Name)
	}
	return "type " + string(src[start:end]), nil
}

func structFields(structType *ast.StructType) []Field {
	var fields []Field
	for _, field := range structType.Fields.List {
		var names []string
		for _, name := range field.Names {
			names = append(names, name.Name)
		}
		f := Field{Names: names, Type: types.ExprString(field.Type)}
		if field.Tag != nil {
			f.Tag = field.Tag.Value
		}
		fields = append(fields, f)
	}
	return fields
}
