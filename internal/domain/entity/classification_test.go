package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssueType_CategoryName(t *testing.T) {
	tests := []struct {
		name      string
		issueType IssueType
		expected  string
	}{
		{"billing maps to billing issues", IssueTypeBilling, "Billing Issues"},
		{"delivery maps to delivery issues", IssueTypeDelivery, "Delivery Issues"},
		{"technical maps to technical support", IssueTypeTechnical, "Technical Support"},
		{"none maps to uncategorized", IssueTypeNone, "Uncategorized"},
		{"unknown value maps to uncategorized", IssueType("Gardening"), "Uncategorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.issueType.CategoryName())
		})
	}
}

func TestIssueType_Detected(t *testing.T) {
	assert.True(t, IssueTypeBilling.Detected())
	assert.True(t, IssueTypeDelivery.Detected())
	assert.True(t, IssueTypeTechnical.Detected())
	assert.False(t, IssueTypeNone.Detected())
}
