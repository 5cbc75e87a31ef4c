package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNLPClient_Classify(t *testing.T) {
	t.Run("successful classification", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/classify", r.URL.Path)
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req ClassifyRequest
			err := json.NewDecoder(r.Body).Decode(&req)
			require.NoError(t, err)
			assert.Equal(t, "my refund was denied", req.Text)
			assert.Equal(t, "T-123", req.TicketID)

			issueType := "Billing"
			resp := ClassifyResponse{
				Sentiment:      "Negative",
				DetectedIntent: "Request Refund",
				IssueType:      &issueType,
				Priority:       "Medium",
				CategoryName:   "Billing Issues",
				Confidence:     0.92,
				RawOutput:      "Processed: ticket=T-123",
				ModelVersion:   "mock-v1.0.0",
			}
			w.Header().Set("Content-Type", "application/json")
			err = json.NewEncoder(w).Encode(resp)
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewNLPClient(server.URL, 5*time.Second)
		result, err := client.Classify(context.Background(), "my refund was denied", "T-123")

		require.NoError(t, err)
		assert.Equal(t, "Negative", result.Sentiment)
		assert.Equal(t, "Request Refund", result.DetectedIntent)
		require.NotNil(t, result.IssueType)
		assert.Equal(t, "Billing", *result.IssueType)
		assert.Equal(t, 0.92, result.Confidence)
		assert.Equal(t, "mock-v1.0.0", result.ModelVersion)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, err := w.Write([]byte("internal error"))
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewNLPClient(server.URL, 5*time.Second)
		_, err := client.Classify(context.Background(), "test", "")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("connection error", func(t *testing.T) {
		client := NewNLPClient("http://localhost:99999", 1*time.Second)
		_, err := client.Classify(context.Background(), "test", "")

		assert.Error(t, err)
	})
}

func TestNLPClient_Health(t *testing.T) {
	t.Run("healthy service", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			assert.Equal(t, "GET", r.Method)

			resp := HealthResponse{
				Status:       "healthy",
				ModelLoaded:  true,
				ModelVersion: "mock-v1.0.0",
			}
			w.Header().Set("Content-Type", "application/json")
			err := json.NewEncoder(w).Encode(resp)
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewNLPClient(server.URL, 5*time.Second)
		result, err := client.Health(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "healthy", result.Status)
		assert.True(t, result.ModelLoaded)
	})
}

func TestNLPClient_Ready(t *testing.T) {
	t.Run("ready service", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ready", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewNLPClient(server.URL, 5*time.Second)
		err := client.Ready(context.Background())

		assert.NoError(t, err)
	})

	t.Run("not ready service", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewNLPClient(server.URL, 5*time.Second)
		err := client.Ready(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not ready")
	})
}
