package dto

// Preferences travel as an opaque map: the academic profile's fields (GPA,
// test scores, languages and so on) are owned by the frontend and the
// upstream backend; this service stores and merges them without caring
// about individual keys.
type PreferencesResponse struct {
	Preferences map[string]interface{} `json:"preferences"`
}

type SavePreferencesRequest struct {
	Preferences map[string]interface{} `json:"preferences" validate:"required"`
}

// DefaultPreferences is the structurally-complete object returned when a
// user has never saved preferences. Callers always get the same shape back.
func DefaultPreferences() map[string]interface{} {
	return map[string]interface{}{
		"gpa":           "",
		"satScore":      "",
		"actScore":      "",
		"intendedMajor": "",
		"languages": []map[string]interface{}{
			{"language": "English", "proficiency": "Native"},
		},
	}
}
