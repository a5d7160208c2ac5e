package dto

import "time"

type CollegeResponse struct {
	Id             string    `json:"id"`
	Name           string    `json:"name"`
	State          string    `json:"state,omitempty"`
	City           string    `json:"city,omitempty"`
	Type           string    `json:"type,omitempty"`
	Tuition        *int      `json:"tuition"`
	AcceptanceRate *float64  `json:"acceptance_rate"`
	EnrollmentSize *int      `json:"enrollment_size"`
	Website        string    `json:"website,omitempty"`
	Description    string    `json:"description,omitempty"`
	ImageURL       string    `json:"image_url,omitempty"`
	Majors         []string  `json:"majors,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type ListCollegesRequest struct {
	State  string `query:"state"`
	Type   string `query:"type"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

type ListCollegesResponse struct {
	Colleges []*CollegeResponse `json:"colleges"`
	Total    int64              `json:"total"`
}
