package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/radishdonuts/Insighta-WebSysLab/internal/domain/service"
	"github.com/radishdonuts/Insighta-WebSysLab/internal/infrastructure/metrics"
)

// Error definitions for nlp usecase
var (
	ErrInvalidRequest        = errors.New("invalid request")
	ErrClassifierUnavailable = errors.New("classifier unavailable")
)

// ClassifyInput represents the input for classifying a ticket
type ClassifyInput struct {
	Text     string `json:"text" binding:"required"`
	TicketID string `json:"ticketId"`
}

// ClassifyOutput represents the label bundle returned to the caller.
// IssueType may be null; CategoryName is always set.
type ClassifyOutput struct {
	Sentiment      string  `json:"sentiment"`
	DetectedIntent string  `json:"detectedIntent"`
	IssueType      *string `json:"issueType"`
	Priority       string  `json:"priority"`
	CategoryName   string  `json:"categoryName"`
	Confidence     float64 `json:"confidence"`
	RawOutput      string  `json:"rawOutput"`
}

// NLPUsecase defines the interface for ticket classification business logic
type NLPUsecase interface {
	Classify(ctx context.Context, input *ClassifyInput) (*ClassifyOutput, error)
}

type nlpUsecase struct {
	classifier service.Classifier
	backend    string
}

// NewNLPUsecase creates a new nlp usecase
func NewNLPUsecase(classifier service.Classifier, backend string) NLPUsecase {
	return &nlpUsecase{
		classifier: classifier,
		backend:    backend,
	}
}

func (u *nlpUsecase) Classify(ctx context.Context, input *ClassifyInput) (*ClassifyOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, ErrInvalidRequest
	}
	ticketID := strings.TrimSpace(input.TicketID)

	start := time.Now()
	result, err := u.classifier.Classify(ctx, text, ticketID)
	if err != nil {
		metrics.ClassificationFailures.WithLabelValues(u.backend).Inc()
		return nil, fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}
	metrics.ClassificationDuration.WithLabelValues(u.backend).Observe(time.Since(start).Seconds())

	issueType := "none"
	if result.IssueType != nil {
		issueType = *result.IssueType
	}
	metrics.ClassificationsTotal.WithLabelValues(result.Sentiment, result.Priority, issueType).Inc()

	return toClassifyOutput(result), nil
}

func toClassifyOutput(result *service.ClassificationResult) *ClassifyOutput {
	return &ClassifyOutput{
		Sentiment:      result.Sentiment,
		DetectedIntent: result.DetectedIntent,
		IssueType:      result.IssueType,
		Priority:       result.Priority,
		CategoryName:   result.CategoryName,
		Confidence:     result.Confidence,
		RawOutput:      result.RawOutput,
	}
}
