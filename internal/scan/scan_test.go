package scan

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSource(t *testing.T, src string) ([]*Resource, error) {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "resource.go", src, parser.ParseComments)
	require.NoError(t, err)
	return fromFile(fset, file, "resource.go", []byte(src))
}

func TestFromFileFindsAnnotatedStruct(t *testing.T) {
	src := `package models

//wrapgen:resource name_snake = "application_plan", metadata = "PlanMetadata"
type Plan struct {
	ID   uint64 ` + "`json:\"id\"`" + `
	Name string ` + "`json:\"name\"`" + `
}

type NotAnnotated struct {
	ID uint64
}
`
	resources, err := parseSource(t, src)
	require.NoError(t, err)
	require.Len(t, resources, 1)

	r := resources[0]
	assert.Equal(t, "Plan", r.Name)
	assert.Equal(t, "models", r.Pkg)
	assert.Equal(t, `name_snake = "application_plan", metadata = "PlanMetadata"`, r.Args)

	require.Len(t, r.Fields, 2)
	assert.Equal(t, []string{"ID"}, r.Fields[0].Names)
	assert.Equal(t, "uint64", r.Fields[0].Type)
	assert.Equal(t, "`json:\"id\"`", r.Fields[0].Tag)
}

func TestFromFileSourceIsVerbatim(t *testing.T) {
	src := `package models

//wrapgen:resource
type Plan struct {
	ID uint64 ` + "`json:\"id\"`" + `
}
`
	resources, err := parseSource(t, src)
	require.NoError(t, err)
	require.Len(t, resources, 1)

	assert.Equal(t, "type Plan struct {\n\tID uint64 `json:\"id\"`\n}", resources[0].Source)
}

func TestFromFileBareDirective(t *testing.T) {
	src := `package models

//wrapgen:resource
type Service struct{}
`
	resources, err := parseSource(t, src)
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, "", resources[0].Args)
}

func TestFromFileRejectsNonStruct(t *testing.T) {
	src := `package models

//wrapgen:resource
type PlanID uint64
`
	_, err := parseSource(t, src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be on a struct type")
}

func TestFromFileIgnoresLongerDirectiveNames(t *testing.T) {
	src := `package models

//wrapgen:resourcelike
type Plan struct{}
`
	resources, err := parseSource(t, src)
	require.NoError(t, err)
	assert.Empty(t, resources)
}

func TestFromFileGroupedSpecDirective(t *testing.T) {
	src := `package models

type (
	//wrapgen:resource plural = "Media"
	Medium struct{}

	Untouched struct{}
)
`
	resources, err := parseSource(t, src)
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, "Medium", resources[0].Name)
	assert.Equal(t, `plural = "Media"`, resources[0].Args)
}
