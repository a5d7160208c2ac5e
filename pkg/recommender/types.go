package recommender

import "encoding/json"

// ResultKind tags how the upstream response was classified before any
// field of Result is trusted. Keeping the classification explicit (rather
// than nested conditionals at the call site) is what makes the branching
// testable in isolation.
type ResultKind string

const (
	// KindJSON: well-formed JSON body, Result fields are populated from it.
	KindJSON ResultKind = "json"
	// KindHTML: the upstream (or an intermediating proxy / load balancer)
	// returned an HTML error page. Never parsed as JSON.
	KindHTML ResultKind = "html"
	// KindText: a non-JSON, non-HTML body. On a 2xx the pipeline degrades
	// to an empty recommendation list with the raw text as the
	// human-readable summary; on an error status it tags the generic
	// status-code failure.
	KindText ResultKind = "text"
	// KindNetworkFailure: no response was received at all.
	KindNetworkFailure ResultKind = "network_failure"
)

// Result is the normalized representation of an upstream response,
// independent of the wire format the upstream actually produced.
type Result struct {
	Kind            ResultKind      `json:"kind"`
	StatusCode      int             `json:"status_code"`
	Recommendations []CollegeRecord `json:"recommendations"`
	SearchSummary   string          `json:"search_summary"`
	// Body is the full normalized JSON payload, returned verbatim to the
	// caller on success. Nil for non-JSON classifications.
	Body json.RawMessage `json:"body,omitempty"`
}

// CollegeRecord mirrors the upstream recommendation shape. Field types are
// deliberately loose: the upstream emits ids as either numbers or strings,
// and the nested cost/size objects are frequently absent.
type CollegeRecord struct {
	ID             json.RawMessage `json:"id"`
	Name           string          `json:"name"`
	State          string          `json:"state"`
	City           string          `json:"city"`
	Type           string          `json:"type"`
	Cost           *CostInfo       `json:"cost"`
	Size           *SizeInfo       `json:"size"`
	AcceptanceRate json.RawMessage `json:"acceptance_rate"`
	Website        string          `json:"website"`
	Description    string          `json:"description"`
	ImageURL       string          `json:"image_url"`
	TopMajors      []string        `json:"top_majors"`
}

type CostInfo struct {
	Amount json.RawMessage `json:"amount"`
}

type SizeInfo struct {
	Students json.RawMessage `json:"students"`
}

// RefinementRequest is the payload forwarded to the refinement endpoint.
type RefinementRequest struct {
	InitialQuery           string                   `json:"initial_query"`
	FollowUpAnswers        []map[string]string      `json:"follow_up_answers"`
	UserProfile            map[string]interface{}   `json:"user_profile"`
	ConversationHistory    []map[string]interface{} `json:"conversation_history"`
	CurrentRecommendations []map[string]interface{} `json:"current_recommendations"`
}

// UpstreamError carries the classification alongside a client-safe message.
type UpstreamError struct {
	Kind       ResultKind
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

func IsNetworkFailure(err error) bool {
	ue, ok := err.(*UpstreamError)
	return ok && ue.Kind == KindNetworkFailure
}

func IsHTMLResponse(err error) bool {
	ue, ok := err.(*UpstreamError)
	return ok && ue.Kind == KindHTML
}
