package service

import "context"

// ClassificationResult represents the label bundle produced for a ticket.
// IssueType is nil when no issue type keyword matched; CategoryName is
// always populated ("Uncategorized" when no issue type was detected).
type ClassificationResult struct {
	Sentiment      string  `json:"sentiment"`
	DetectedIntent string  `json:"detectedIntent"`
	IssueType      *string `json:"issueType"`
	Priority       string  `json:"priority"`
	CategoryName   string  `json:"categoryName"`
	Confidence     float64 `json:"confidence"`
	RawOutput      string  `json:"rawOutput"`
}

// Classifier defines the interface for ticket text classification
type Classifier interface {
	// Classify produces the label bundle for a single ticket text
	Classify(ctx context.Context, text, ticketID string) (*ClassificationResult, error)
}
