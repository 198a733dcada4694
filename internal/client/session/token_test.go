package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveToken(t *testing.T) {
	tests := []struct {
		name    string
		stored  string
		want    string
		wantErr error
	}{
		{
			name:   "nested data envelope",
			stored: `{"data":{"token":"abc"}}`,
			want:   "abc",
		},
		{
			name:   "flat envelope",
			stored: `{"token":"abc"}`,
			want:   "abc",
		},
		{
			name:   "raw token",
			stored: "abc",
			want:   "abc",
		},
		{
			name:   "raw jwt",
			stored: "eyJhbGciOiJIUzI1NiJ9.eyJ1c2VybmFtZSI6ImEifQ.sig",
			want:   "eyJhbGciOiJIUzI1NiJ9.eyJ1c2VybmFtZSI6ImEifQ.sig",
		},
		{
			name:    "absent",
			stored:  "",
			wantErr: ErrNoToken,
		},
		{
			name:   "nested wins over flat",
			stored: `{"data":{"token":"nested"},"token":"flat"}`,
			want:   "nested",
		},
		{
			name:   "empty nested falls back to flat",
			stored: `{"data":{"token":""},"token":"flat"}`,
			want:   "flat",
		},
		{
			name:   "data of wrong type falls back to flat",
			stored: `{"data":"oops","token":"flat"}`,
			want:   "flat",
		},
		{
			name:   "json object without token falls back to raw",
			stored: `{"foo":"bar"}`,
			want:   `{"foo":"bar"}`,
		},
		{
			name:   "malformed json falls back to raw",
			stored: `{"data":{"token":`,
			want:   `{"data":{"token":`,
		},
		{
			name:   "json string falls back to raw",
			stored: `"abc"`,
			want:   `"abc"`,
		},
		{
			name:   "json null falls back to raw",
			stored: `null`,
			want:   `null`,
		},
		{
			name:   "non-string token falls back to raw",
			stored: `{"token":42}`,
			want:   `{"token":42}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveToken(tt.stored)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeEnvelope(t *testing.T) {
	raw, err := EncodeEnvelope("abc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"token":"abc"}}`, raw)

	// Канонический конверт должен разрешаться обратно в тот же токен
	token, err := ResolveToken(raw)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = EncodeEnvelope("")
	assert.ErrorIs(t, err, ErrNoToken)
}
