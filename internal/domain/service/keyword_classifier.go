package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/radishdonuts/Insighta-WebSysLab/internal/domain/entity"
)

// PlaceholderConfidence is reported for every keyword classification until a
// real model backend produces calibrated scores.
const PlaceholderConfidence = 0.5

// ticketIDSentinel is embedded in the raw output when no ticket id was supplied
const ticketIDSentinel = "n/a"

var (
	negativeKeywords = []string{"angry", "delay", "failed", "denied", "worst", "frustrated"}
	positiveKeywords = []string{"great", "satisfied", "thank", "resolved"}

	highPriorityKeywords = []string{"urgent", "immediately", "critical", "asap"}
	lowPriorityKeywords  = []string{"whenever", "minor", "small issue"}

	billingKeywords   = []string{"refund", "charge", "billing", "invoice"}
	deliveryKeywords  = []string{"delivery", "shipment", "tracking", "late"}
	technicalKeywords = []string{"app", "login", "error", "bug", "crash"}
)

// KeywordClassifier labels ticket text by substring matching against fixed
// keyword lists. It is pure and stateless: identical input always yields an
// identical result, and classification cannot fail.
type KeywordClassifier struct{}

// NewKeywordClassifier creates the keyword-rule classifier
func NewKeywordClassifier() Classifier {
	return &KeywordClassifier{}
}

// Classify evaluates each rule in order against the lowercased text.
// Only the category rule depends on another rule's output (issue type).
func (c *KeywordClassifier) Classify(_ context.Context, text, ticketID string) (*ClassificationResult, error) {
	lower := strings.ToLower(text)

	issueType := detectIssueType(lower)
	result := &ClassificationResult{
		Sentiment:      string(detectSentiment(lower)),
		DetectedIntent: string(detectIntent(lower)),
		Priority:       string(detectPriority(lower)),
		CategoryName:   issueType.CategoryName(),
		Confidence:     PlaceholderConfidence,
		RawOutput:      rawOutput(ticketID),
	}
	if issueType.Detected() {
		s := string(issueType)
		result.IssueType = &s
	}

	return result, nil
}

func detectSentiment(lower string) entity.Sentiment {
	if containsAny(lower, negativeKeywords) {
		return entity.SentimentNegative
	}
	if containsAny(lower, positiveKeywords) {
		return entity.SentimentPositive
	}
	return entity.SentimentNeutral
}

func detectPriority(lower string) entity.Priority {
	if containsAny(lower, highPriorityKeywords) {
		return entity.PriorityHigh
	}
	if containsAny(lower, lowPriorityKeywords) {
		return entity.PriorityLow
	}
	return entity.PriorityMedium
}

func detectIssueType(lower string) entity.IssueType {
	if containsAny(lower, billingKeywords) {
		return entity.IssueTypeBilling
	}
	if containsAny(lower, deliveryKeywords) {
		return entity.IssueTypeDelivery
	}
	if containsAny(lower, technicalKeywords) {
		return entity.IssueTypeTechnical
	}
	return entity.IssueTypeNone
}

func detectIntent(lower string) entity.Intent {
	switch {
	case strings.Contains(lower, "refund"):
		return entity.IntentRequestRefund
	case strings.Contains(lower, "cancel"):
		return entity.IntentRequestCancellation
	case strings.Contains(lower, "status"), strings.Contains(lower, "update"):
		return entity.IntentRequestStatusUpdate
	default:
		return entity.IntentGeneralComplaint
	}
}

func rawOutput(ticketID string) string {
	if ticketID == "" {
		ticketID = ticketIDSentinel
	}
	return fmt.Sprintf("Processed: ticket=%s", ticketID)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
