package commands

import (
	"bytes"
	"strings"
	"testing"
)

func runNames(t *testing.T, args ...string) string {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"names", "--no-color"}, args...))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("names command failed: %v", err)
	}
	return out.String()
}

func TestNamesCommandDefaults(t *testing.T) {
	out := runNames(t, "MappingRule")

	for _, expected := range []string{
		"mapping_rule",
		"MappingRuleAndMetadata",
		"MappingRuleTag",
		"MappingRules",
		"mapping_rules",
		"Metadata",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("expected output to contain %q:\n%s", expected, out)
		}
	}
}

func TestNamesCommandOverrides(t *testing.T) {
	out := runNames(t, "Plan", "plural=Plans2", "metadata=PlanMetadata")

	if !strings.Contains(out, "plans2") {
		t.Errorf("expected overridden plural_snake in output:\n%s", out)
	}
	if !strings.Contains(out, "PlanMetadata") {
		t.Errorf("expected overridden metadata type in output:\n%s", out)
	}
}

func TestAttributeText(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"bare value gets quoted", []string{"plural=Plans2"}, `plural = "Plans2"`},
		{"quoted value kept", []string{`plural="Plans2"`}, `plural="Plans2"`},
		{"multiple args joined", []string{"a=1x", "b=2y"}, `a = "1x", b = "2y"`},
		{"no equals passed through", []string{"garbage"}, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := attributeText(tt.args); got != tt.expected {
				t.Errorf("attributeText(%v) = %q, want %q", tt.args, got, tt.expected)
			}
		})
	}
}
