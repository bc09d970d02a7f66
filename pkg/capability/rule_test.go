package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The release-generation rule is internal but carries enough policy to
// deserve direct coverage, permissive default included.
func TestModelCapable(t *testing.T) {
	t.Parallel()
	tests := []struct {
		model   string
		capable bool
	}{
		{model: "iPhone X", capable: false},
		{model: "Apple iPhone X", capable: false},
		{model: "iPhone XS", capable: true},
		{model: "iPhone XS Max", capable: true},
		{model: "iPhone XR", capable: true},
		{model: "iPhone 11", capable: true},
		{model: "iPhone 11 Pro", capable: true},
		{model: "iPhone 8", capable: false},
		{model: "iPhone 16 Pro Max", capable: true},
		// Unrecognized strings default to capable: preserved leniency.
		{model: "Mystery Handset 3000", capable: true},
		{model: "", capable: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.model, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.capable, modelCapable(tt.model))
		})
	}
}

func TestRuleVerdictANDSemantics(t *testing.T) {
	t.Parallel()

	assert.Equal(t, SupportIncapable, ruleVerdict([]string{"iPhone X", "iPhone XS"}),
		"one incapable candidate vetoes the set")
	assert.Equal(t, SupportCapable, ruleVerdict([]string{"iPhone XS", "iPhone 11"}))
	assert.Equal(t, SupportCapable,
		ruleVerdict([]string{"iPhone 12", "iPhone 13", "iPhone 13 Pro", "iPhone 14"}))
	assert.Equal(t, SupportUnknown, ruleVerdict(nil))
}
