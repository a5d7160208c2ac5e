package recommender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const snippetLimit = 500

// Client talks to the upstream recommendation backend. Every response goes
// through classify before any JSON decoding is trusted: in practice a large
// share of upstream failures are HTML error pages emitted by intermediating
// infrastructure, not the application's own JSON error shape.
type Client struct {
	BaseURL string
	Client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSpace(baseURL),
		// No default timeout: refinement calls can run for minutes while
		// the upstream model works. JobStatus sets its own deadline.
		Client: &http.Client{},
	}
}

// Refine forwards a refinement request and returns the normalized result.
func (c *Client) Refine(ctx context.Context, req *RefinementRequest) (*Result, error) {
	return c.forward(ctx, http.MethodPost, "/api/colleges/refinements", req)
}

// Compare forwards a comparison request.
func (c *Client) Compare(ctx context.Context, payload interface{}) (*Result, error) {
	return c.forward(ctx, http.MethodPost, "/api/colleges/comparisons", payload)
}

// Chat proxies a chat turn to the upstream conversational endpoint.
func (c *Client) Chat(ctx context.Context, payload interface{}) (*Result, error) {
	return c.forward(ctx, http.MethodPost, "/api/chat", payload)
}

// JobStatus checks an async job. Unlike the other calls this one carries a
// 10 second timeout.
func (c *Client) JobStatus(ctx context.Context, jobID string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return c.forward(ctx, http.MethodGet, "/api/jobs/"+jobID, nil)
}

func (c *Client) forward(ctx context.Context, method, path string, payload interface{}) (*Result, error) {
	var body io.Reader
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewBuffer(payloadBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		// No response at all. Distinguished from application-level errors
		// (a response was received but carried a non-2xx status).
		return nil, &UpstreamError{
			Kind:    KindNetworkFailure,
			Message: "Recommendation service unreachable: no response received",
		}
	}
	defer resp.Body.Close()

	return classify(resp)
}

// classify performs the three-way response classification:
// HTML error page / malformed JSON / well-formed JSON.
func classify(resp *http.Response) (*Result, error) {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{
			Kind:       KindNetworkFailure,
			StatusCode: resp.StatusCode,
			Message:    "Recommendation service response could not be read",
		}
	}

	contentType := resp.Header.Get("Content-Type")

	// 1. HTML is a hard failure regardless of status. Never .json() it.
	if strings.Contains(contentType, "text/html") {
		return nil, &UpstreamError{
			Kind:       KindHTML,
			StatusCode: resp.StatusCode,
			Message:    "Recommendation service returned an error page: " + snippet(bodyBytes),
		}
	}

	isJSON := strings.Contains(contentType, "application/json")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		kind := KindText
		if isJSON {
			kind = KindJSON
			// Application-level error shape: prefer detail, then error.
			var errBody struct {
				Detail string `json:"detail"`
				Error  string `json:"error"`
			}
			if json.Unmarshal(bodyBytes, &errBody) == nil {
				msg := errBody.Detail
				if msg == "" {
					msg = errBody.Error
				}
				if msg != "" {
					return nil, &UpstreamError{
						Kind:       KindJSON,
						StatusCode: resp.StatusCode,
						Message:    msg,
					}
				}
			}
		}
		return nil, &UpstreamError{
			Kind:       kind,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("Recommendation service error (status %d)", resp.StatusCode),
		}
	}

	// 2xx: parse, with a manual fallback for upstreams that mislabel the
	// content type, then degrade to "something, not nothing".
	result, ok := parsePayload(bodyBytes)
	if ok {
		result.Kind = KindJSON
		result.StatusCode = resp.StatusCode
		result.Body = bodyBytes
		return result, nil
	}

	return &Result{
		Kind:            KindText,
		StatusCode:      resp.StatusCode,
		Recommendations: []CollegeRecord{},
		SearchSummary:   string(bodyBytes),
	}, nil
}

func parsePayload(body []byte) (*Result, bool) {
	var payload struct {
		Recommendations []CollegeRecord `json:"recommendations"`
		SearchSummary   string          `json:"search_summary"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, false
	}
	if payload.Recommendations == nil {
		payload.Recommendations = []CollegeRecord{}
	}
	return &Result{
		Recommendations: payload.Recommendations,
		SearchSummary:   payload.SearchSummary,
	}, true
}

func snippet(body []byte) string {
	s := string(body)
	if len(s) > snippetLimit {
		return s[:snippetLimit]
	}
	return s
}
