package codegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrapgen/wrapgen/internal/naming"
)

func mappingRuleNames() naming.Names {
	return naming.NewBuilder("MappingRule").Set("metadata", "MyMetadata").Build()
}

func TestGenerateFamilyGolden(t *testing.T) {
	g := NewGenerator()
	g.GenerateFamily(mappingRuleNames())

	out, err := g.File("models", "")
	require.NoError(t, err)

	golden, err := os.ReadFile(filepath.Join("testdata", "mapping_rule_collection.golden"))
	require.NoError(t, err)

	assert.Equal(t, string(golden), string(out))
}

func TestGenerateFamilyOrder(t *testing.T) {
	g := NewGenerator()
	g.GenerateFamily(mappingRuleNames())
	out := g.String()

	envelope := strings.Index(out, "type MappingRuleAndMetadata struct")
	tag := strings.Index(out, "type MappingRuleTag struct")
	collection := strings.Index(out, "type MappingRules struct")
	fromList := strings.Index(out, "func NewMappingRules(")
	toEnvelopes := strings.Index(out, "func (c MappingRules) Envelopes()")
	toItems := strings.Index(out, "func (c MappingRules) Items()")

	for _, idx := range []int{envelope, tag, collection, fromList, toEnvelopes, toItems} {
		require.NotEqual(t, -1, idx)
	}
	assert.True(t, envelope < tag && tag < collection && collection < fromList &&
		fromList < toEnvelopes && toEnvelopes < toItems)
}

func TestGenerateFamilyHonorsOverrides(t *testing.T) {
	n := naming.NewBuilder("Plan").
		Set("name_snake", "application_plan").
		Set("metadata", "PlanMetadata").
		Build()

	g := NewGenerator()
	g.GenerateFamily(n)
	out := g.String()

	assert.Contains(t, out, "`json:\"application_plan\"`")
	assert.Contains(t, out, "`json:\"plans\"`")
	assert.Contains(t, out, "Metadata *PlanMetadata")
	assert.Contains(t, out, "func NewPlans(items []Plan) Plans")
}

func TestGenerateExpandedReproducesDeclaration(t *testing.T) {
	source := "type MappingRule struct {\n\tID uint64 `json:\"id\"`\n}"

	g := NewGenerator()
	g.GenerateExpanded(mappingRuleNames(), source)

	out, err := g.File("models", "")
	require.NoError(t, err)

	assert.True(t, strings.Contains(string(out), source))
	assert.Less(t,
		strings.Index(string(out), "type MappingRule struct"),
		strings.Index(string(out), "type MappingRuleAndMetadata struct"))
}

func TestFileHeader(t *testing.T) {
	g := NewGenerator()
	g.GenerateFamily(mappingRuleNames())

	out, err := g.File("models", "source: resource.go")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(out), "// Code generated by wrapgen. DO NOT EDIT.\n// source: resource.go\n"))
}
