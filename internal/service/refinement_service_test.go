package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeProfiles(t *testing.T) {
	tests := []struct {
		name       string
		storedJSON string
		request    map[string]interface{}
		want       map[string]interface{}
		wantErr    bool
	}{
		{
			name:       "no stored blob yields exactly the request",
			storedJSON: "",
			request:    map[string]interface{}{"gpa": 3.8},
			want:       map[string]interface{}{"gpa": 3.8},
		},
		{
			name:       "request keys win on conflict",
			storedJSON: `{"gpa": 3.5, "satScore": 1400}`,
			request:    map[string]interface{}{"gpa": 3.8},
			want:       map[string]interface{}{"gpa": 3.8, "satScore": float64(1400)},
		},
		{
			name:       "stored keys survive when not overridden",
			storedJSON: `{"intendedMajor": "Physics"}`,
			request:    map[string]interface{}{},
			want:       map[string]interface{}{"intendedMajor": "Physics"},
		},
		{
			name:       "nil request leaves stored profile intact",
			storedJSON: `{"actScore": 30}`,
			request:    nil,
			want:       map[string]interface{}{"actScore": float64(30)},
		},
		{
			name:       "malformed stored blob surfaces an error",
			storedJSON: `{"gpa": `,
			request:    map[string]interface{}{"gpa": 3.8},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, err := MergeProfiles(tt.storedJSON, tt.request)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, merged)
		})
	}
}

func TestMergeProfilesDoesNotMutateRequest(t *testing.T) {
	request := map[string]interface{}{"gpa": 3.9}

	merged, err := MergeProfiles(`{"satScore": 1500}`, request)

	require.NoError(t, err)
	assert.Len(t, merged, 2)
	assert.Equal(t, map[string]interface{}{"gpa": 3.9}, request)
}
