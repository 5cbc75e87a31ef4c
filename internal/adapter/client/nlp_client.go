package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ClassifyRequest represents a request to the model service
type ClassifyRequest struct {
	Text     string `json:"text"`
	TicketID string `json:"ticketId,omitempty"`
}

// ClassifyResponse represents the label bundle returned by the model service
type ClassifyResponse struct {
	Sentiment      string  `json:"sentiment"`
	DetectedIntent string  `json:"detectedIntent"`
	IssueType      *string `json:"issueType"`
	Priority       string  `json:"priority"`
	CategoryName   string  `json:"categoryName"`
	Confidence     float64 `json:"confidence"`
	RawOutput      string  `json:"rawOutput"`
	ModelVersion   string  `json:"model_version"`
}

// HealthResponse represents the model service health check response
type HealthResponse struct {
	Status       string `json:"status"`
	ModelLoaded  bool   `json:"model_loaded"`
	ModelVersion string `json:"model_version"`
}

// NLPClient is an HTTP client for an external model-backed classification service
type NLPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewNLPClient creates a new model service client
func NewNLPClient(baseURL string, timeout time.Duration) *NLPClient {
	return &NLPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Classify sends a single ticket text for classification
func (c *NLPClient) Classify(ctx context.Context, text, ticketID string) (*ClassifyResponse, error) {
	reqBody := ClassifyRequest{
		Text:     text,
		TicketID: ticketID,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/classify", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("model service returned status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("model service returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result ClassifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}

// Health checks the model service health
func (c *NLPClient) Health(ctx context.Context) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model service returned status %d", resp.StatusCode)
	}

	var result HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}

// Ready checks if the model service is ready
func (c *NLPClient) Ready(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ready", http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model service not ready: status %d", resp.StatusCode)
	}

	return nil
}
