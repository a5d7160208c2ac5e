package service

import (
	"encoding/json"
	"testing"

	"college-compass-be/pkg/recommender"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCollegeID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "string id", raw: `"mit-001"`, want: "mit-001"},
		{name: "numeric id", raw: `42`, want: "42"},
		{name: "float id keeps its representation", raw: `42.5`, want: "42.5"},
		{name: "string with surrounding whitespace", raw: `"  uc-berkeley  "`, want: "uc-berkeley"},
		{name: "absent", raw: ``, want: ""},
		{name: "null", raw: `null`, want: ""},
		{name: "object is not an id", raw: `{"id": 1}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeCollegeID(json.RawMessage(tt.raw))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIntAcceptsNumbersAndNumericStrings(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *int
	}{
		{name: "number", raw: `52000`, want: intPtr(52000)},
		{name: "numeric string", raw: `"52000"`, want: intPtr(52000)},
		{name: "padded numeric string", raw: `" 52000 "`, want: intPtr(52000)},
		{name: "float truncates", raw: `52000.9`, want: intPtr(52000)},
		{name: "word", raw: `"expensive"`, want: nil},
		{name: "absent", raw: ``, want: nil},
		{name: "null", raw: `null`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseInt(json.RawMessage(tt.raw))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *float64
	}{
		{name: "number", raw: `0.07`, want: floatPtr(0.07)},
		{name: "numeric string", raw: `"0.07"`, want: floatPtr(0.07)},
		{name: "word", raw: `"selective"`, want: nil},
		{name: "absent", raw: ``, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFloat(json.RawMessage(tt.raw))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatFieldsNilWhenNestedObjectsAbsent(t *testing.T) {
	record := recommender.CollegeRecord{Name: "No Stats College"}

	assert.Nil(t, tuitionOf(record))
	assert.Nil(t, enrollmentOf(record))
	assert.Nil(t, acceptanceRateOf(record))
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
