package recommender

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefineClassification(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantKind    ResultKind
		wantErrKind ResultKind
		wantMsgPart string
	}{
		{
			name:        "well-formed JSON success",
			status:      http.StatusOK,
			contentType: "application/json",
			body:        `{"recommendations":[{"name":"Example University"}],"search_summary":"one match"}`,
			wantKind:    KindJSON,
		},
		{
			name:        "HTML error page is a hard failure",
			status:      http.StatusBadGateway,
			contentType: "text/html; charset=utf-8",
			body:        "<html><body><h1>502 Bad Gateway</h1></body></html>",
			wantErrKind: KindHTML,
			wantMsgPart: "502 Bad Gateway",
		},
		{
			name:        "HTML with 200 status is still a failure",
			status:      http.StatusOK,
			contentType: "text/html",
			body:        "<html>maintenance page</html>",
			wantErrKind: KindHTML,
			wantMsgPart: "maintenance",
		},
		{
			name:        "JSON error with detail field",
			status:      http.StatusUnprocessableEntity,
			contentType: "application/json",
			body:        `{"detail":"initial_query is required"}`,
			wantErrKind: KindJSON,
			wantMsgPart: "initial_query is required",
		},
		{
			name:        "JSON error with error field",
			status:      http.StatusInternalServerError,
			contentType: "application/json",
			body:        `{"error":"model overloaded"}`,
			wantErrKind: KindJSON,
			wantMsgPart: "model overloaded",
		},
		{
			name:        "JSON error without usable fields keeps the JSON tag",
			status:      http.StatusBadGateway,
			contentType: "application/json",
			body:        `{"unexpected":"shape"}`,
			wantErrKind: KindJSON,
			wantMsgPart: "status 502",
		},
		{
			name:        "non-JSON error body falls back to status message",
			status:      http.StatusServiceUnavailable,
			contentType: "text/plain",
			body:        "upstream timeout",
			wantErrKind: KindText,
			wantMsgPart: "status 503",
		},
		{
			name:        "2xx with unparseable body degrades to text",
			status:      http.StatusOK,
			contentType: "application/json",
			body:        "this is not json at all",
			wantKind:    KindText,
		},
		{
			name:        "2xx mislabeled JSON still parses",
			status:      http.StatusOK,
			contentType: "text/plain",
			body:        `{"recommendations":[],"search_summary":"nothing found"}`,
			wantKind:    KindJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/colleges/refinements", r.URL.Path)
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL)
			result, err := client.Refine(context.Background(), &RefinementRequest{InitialQuery: "engineering"})

			if tt.wantErrKind != "" {
				require.Error(t, err)
				ue, ok := err.(*UpstreamError)
				require.True(t, ok, "expected UpstreamError, got %T", err)
				assert.Equal(t, tt.wantErrKind, ue.Kind)
				assert.Equal(t, tt.status, ue.StatusCode)
				assert.Contains(t, ue.Message, tt.wantMsgPart)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, result.Kind)
			assert.Equal(t, tt.status, result.StatusCode)
			assert.NotNil(t, result.Recommendations)
		})
	}
}

func TestRefineTextDegradationKeepsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("plain answer from the model"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	result, err := client.Refine(context.Background(), &RefinementRequest{InitialQuery: "arts"})

	require.NoError(t, err)
	assert.Equal(t, KindText, result.Kind)
	assert.Empty(t, result.Recommendations)
	assert.Equal(t, "plain answer from the model", result.SearchSummary)
	assert.Nil(t, result.Body)
}

func TestHTMLSnippetTruncation(t *testing.T) {
	longPage := "<html>" + strings.Repeat("x", 2000)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(longPage))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Refine(context.Background(), &RefinementRequest{InitialQuery: "science"})

	require.Error(t, err)
	ue, ok := err.(*UpstreamError)
	require.True(t, ok)
	assert.Equal(t, KindHTML, ue.Kind)

	const prefix = "Recommendation service returned an error page: "
	assert.True(t, strings.HasPrefix(ue.Message, prefix))
	assert.Len(t, strings.TrimPrefix(ue.Message, prefix), 500)
}

func TestNetworkFailure(t *testing.T) {
	// Server started and immediately closed: the port refuses connections.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Refine(context.Background(), &RefinementRequest{InitialQuery: "music"})

	require.Error(t, err)
	ue, ok := err.(*UpstreamError)
	require.True(t, ok)
	assert.Equal(t, KindNetworkFailure, ue.Kind)
	assert.True(t, IsNetworkFailure(err))
}

func TestJobStatusPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/jobs/job-42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"search_summary":"running"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	result, err := client.JobStatus(context.Background(), "job-42")

	require.NoError(t, err)
	assert.Equal(t, "running", result.SearchSummary)
}

func TestBaseURLTrimmed(t *testing.T) {
	client := NewClient("http://recommender.internal:8000\n")
	assert.Equal(t, "http://recommender.internal:8000", client.BaseURL)
}
