package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/keyterms"
	kthttp "github.com/fwojciec/keyterms/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ExtractKeywords(t *testing.T) {
	t.Parallel()

	req := &keyterms.ExtractionRequest{Text: "ai and ml", TopN: 2}

	t.Run("returns keywords on success", func(t *testing.T) {
		t.Parallel()

		var got map[string]any
		var requestID string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/extract-keywords", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			requestID = r.Header.Get("X-Request-ID")
			_ = json.NewDecoder(r.Body).Decode(&got)
			_, _ = w.Write([]byte(`{"status":"success","keywords":[{"keyword":"ai","score":0.9},{"keyword":"ml","score":0.4}],"count":2,"extraction_time":0.12}`))
		}))
		defer server.Close()

		client := kthttp.NewClient(server.URL)
		ext, err := client.ExtractKeywords(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, []keyterms.ScoredTerm{{Term: "ai", Score: 0.9}, {Term: "ml", Score: 0.4}}, ext.Keywords)
		assert.Equal(t, 2, ext.Count)
		assert.InDelta(t, 0.12, ext.ExtractionTime, 1e-9)
		assert.Equal(t, map[string]any{"text": "ai and ml", "top_n": float64(2)}, got)
		assert.NotEmpty(t, requestID)
	})

	t.Run("trims trailing slash from base URL", func(t *testing.T) {
		t.Parallel()

		var path string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			_, _ = w.Write([]byte(`{"status":"success","keywords":[],"count":0,"extraction_time":0}`))
		}))
		defer server.Close()

		_, err := kthttp.NewClient(server.URL+"/").ExtractKeywords(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "/api/extract-keywords", path)
	})

	tests := []struct {
		name    string
		status  int
		body    string
		code    string
		message string
	}{
		{
			name:    "maps logical failure to service error",
			status:  http.StatusOK,
			body:    `{"status":"error","error":"Text input is empty"}`,
			code:    keyterms.ESERVICE,
			message: "Text input is empty",
		},
		{
			name:    "falls back to generic service message",
			status:  http.StatusOK,
			body:    `{"status":"error"}`,
			code:    keyterms.ESERVICE,
			message: keyterms.ServiceErrorMessage,
		},
		{
			name:    "uses error field of failed status",
			status:  http.StatusBadRequest,
			body:    `{"status":"error","error":"No data provided"}`,
			code:    keyterms.ESERVICE,
			message: "No data provided",
		},
		{
			name:    "maps failed status without body to transport error",
			status:  http.StatusInternalServerError,
			body:    `<html>Internal Server Error</html>`,
			code:    keyterms.ETRANSPORT,
			message: keyterms.TransportErrorMessage,
		},
		{
			name:    "maps malformed success body to transport error",
			status:  http.StatusOK,
			body:    `{"status":`,
			code:    keyterms.ETRANSPORT,
			message: keyterms.TransportErrorMessage,
		},
		{
			name:    "rejects negative scores",
			status:  http.StatusOK,
			body:    `{"status":"success","keywords":[{"keyword":"ai","score":-1}],"count":1}`,
			code:    keyterms.ETRANSPORT,
			message: keyterms.TransportErrorMessage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := kthttp.NewClient(server.URL).ExtractKeywords(context.Background(), req)

			require.Error(t, err)
			assert.Equal(t, tt.code, keyterms.ErrorCode(err))
			assert.Equal(t, tt.message, keyterms.ErrorMessage(err))
		})
	}

	t.Run("maps unreachable service to network error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		url := server.URL
		server.Close()

		_, err := kthttp.NewClient(url).ExtractKeywords(context.Background(), req)

		assert.Equal(t, keyterms.ENETWORK, keyterms.ErrorCode(err))
		assert.Equal(t, keyterms.NetworkErrorMessage, keyterms.ErrorMessage(err))
	})

	t.Run("maps timeout to network error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
		}))
		defer server.Close()

		client := kthttp.NewClient(server.URL, kthttp.WithClientTimeout(10*time.Millisecond))
		_, err := client.ExtractKeywords(context.Background(), req)

		assert.Equal(t, keyterms.ENETWORK, keyterms.ErrorCode(err))
	})

	t.Run("maps cancelled context to unknown error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := kthttp.NewClient(server.URL).ExtractKeywords(ctx, req)

		assert.Equal(t, keyterms.EUNKNOWN, keyterms.ErrorCode(err))
		assert.Equal(t, keyterms.UnknownErrorMessage, keyterms.ErrorMessage(err))
	})

	t.Run("maps invalid base URL to unknown error", func(t *testing.T) {
		t.Parallel()

		_, err := kthttp.NewClient("http://bad host").ExtractKeywords(context.Background(), req)

		assert.Equal(t, keyterms.EUNKNOWN, keyterms.ErrorCode(err))
	})

	t.Run("waits for rate limiter", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"success","keywords":[],"count":0}`))
		}))
		defer server.Close()

		client := kthttp.NewClient(server.URL, kthttp.WithRateLimit(20))
		begin := time.Now()
		for range 3 {
			_, err := client.ExtractKeywords(context.Background(), req)
			require.NoError(t, err)
		}

		assert.GreaterOrEqual(t, time.Since(begin), 80*time.Millisecond)
	})
}

func TestClient_Health(t *testing.T) {
	t.Parallel()

	t.Run("returns reported status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/health", r.URL.Path)
			_, _ = w.Write([]byte(`{"status":"healthy","message":"API is running"}`))
		}))
		defer server.Close()

		health, err := kthttp.NewClient(server.URL).Health(context.Background())

		require.NoError(t, err)
		assert.Equal(t, &keyterms.Health{Status: "healthy", Message: "API is running"}, health)
	})

	t.Run("maps failed status to transport error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := kthttp.NewClient(server.URL).Health(context.Background())

		assert.Equal(t, keyterms.ETRANSPORT, keyterms.ErrorCode(err))
	})
}

var _ keyterms.KeywordService = (*kthttp.Client)(nil)
