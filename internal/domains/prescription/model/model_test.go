package model_test

import (
	"eyeslot/internal/domains/prescription/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestData_Scan(t *testing.T) {
	tests := []struct {
		name     string
		src      any
		expected model.Data
		wantErr  bool
	}{
		{
			name: "jsonb bytes",
			src:  []byte(`{"rightEye":{"spherical":"-1.25","cylindrical":"-0.50","axis":"180"},"leftEye":{"spherical":"-1.00","cylindrical":"","axis":""}}`),
			expected: model.Data{
				RightEye: model.Eye{Spherical: "-1.25", Cylindrical: "-0.50", Axis: "180"},
				LeftEye:  model.Eye{Spherical: "-1.00"},
			},
		},
		{
			name:     "text",
			src:      `{"leftEye":{"axis":"90"}}`,
			expected: model.Data{LeftEye: model.Eye{Axis: "90"}},
		},
		{
			name:     "null",
			src:      nil,
			expected: model.Data{},
		},
		{
			name:    "unsupported type",
			src:     42,
			wantErr: true,
		},
		{
			name:    "malformed json",
			src:     []byte(`{"rightEye":`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := model.Data{RightEye: model.Eye{Axis: "stale"}}

			err := data.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, data)
		})
	}
}

func TestData_ScanReplacesPreviousValue(t *testing.T) {
	data := model.Data{
		RightEye: model.Eye{Spherical: "-2.00", Cylindrical: "-0.75", Axis: "90"},
		LeftEye:  model.Eye{Spherical: "-1.50"},
	}

	require.NoError(t, data.Scan([]byte(`{"rightEye":{"spherical":"-0.25"}}`)))
	assert.Equal(t, model.Data{RightEye: model.Eye{Spherical: "-0.25"}}, data)

	require.Error(t, data.Scan([]byte(`{"leftEye":`)))
	assert.Equal(t, model.Data{RightEye: model.Eye{Spherical: "-0.25"}}, data)
}

func TestData_Value(t *testing.T) {
	value, err := model.Data{RightEye: model.Eye{Spherical: "+0.75"}}.Value()
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"rightEye":{"spherical":"+0.75","cylindrical":"","axis":""},"leftEye":{"spherical":"","cylindrical":"","axis":""}}`,
		string(value.([]byte)))
}

func TestData_IsZero(t *testing.T) {
	assert.True(t, model.Data{}.IsZero())
	assert.False(t, model.Data{LeftEye: model.Eye{Axis: "1"}}.IsZero())
}
