package naming

import "testing"

func TestPluralize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Plan", "Plans"},
		{"MappingRule", "MappingRules"},
		{"Category", "Categories"},
		{"Proxy", "Proxies"},
		{"Bus", "Buses"},
		{"Box", "Boxes"},
		{"Batch", "Batches"},
		{"Person", "People"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Pluralize(tt.input)
			if result != tt.expected {
				t.Errorf("Pluralize(%s) = %s, want %s", tt.input, result, tt.expected)
			}
		})
	}
}

func TestPluralizeOverride(t *testing.T) {
	RegisterPlural("Schema", "Schemata")
	defer delete(pluralOverrides, "Schema")

	if got := Pluralize("Schema"); got != "Schemata" {
		t.Errorf("Pluralize(Schema) = %s, want Schemata", got)
	}
}
