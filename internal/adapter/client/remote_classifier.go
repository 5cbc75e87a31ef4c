package client

import (
	"context"
	"fmt"

	"github.com/radishdonuts/Insighta-WebSysLab/internal/domain/service"
)

// RemoteClassifier adapts NLPClient to the Classifier interface. It is the
// intended replacement for the keyword rules once a model service exists.
type RemoteClassifier struct {
	client *NLPClient
}

// NewRemoteClassifier creates a new RemoteClassifier
func NewRemoteClassifier(client *NLPClient) service.Classifier {
	return &RemoteClassifier{client: client}
}

// Classify classifies a single ticket text through the model service
func (c *RemoteClassifier) Classify(ctx context.Context, text, ticketID string) (*service.ClassificationResult, error) {
	resp, err := c.client.Classify(ctx, text, ticketID)
	if err != nil {
		return nil, err
	}

	rawOutput := resp.RawOutput
	if rawOutput == "" {
		id := ticketID
		if id == "" {
			id = "n/a"
		}
		rawOutput = fmt.Sprintf("Processed: ticket=%s", id)
	}

	return &service.ClassificationResult{
		Sentiment:      resp.Sentiment,
		DetectedIntent: resp.DetectedIntent,
		IssueType:      resp.IssueType,
		Priority:       resp.Priority,
		CategoryName:   resp.CategoryName,
		Confidence:     resp.Confidence,
		RawOutput:      rawOutput,
	}, nil
}
