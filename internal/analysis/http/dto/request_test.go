package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAskRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request AskRequest
		wantErr string
	}{
		{
			name:    "valid",
			request: AskRequest{LogID: "0190b3c4-7a1e-7c3d-9f00-2b8e4a6d1c55", Question: "Any brute force?"},
		},
		{
			name:    "missing log id",
			request: AskRequest{Question: "Any brute force?"},
			wantErr: "log_id",
		},
		{
			name:    "log id is not a uuid",
			request: AskRequest{LogID: "42", Question: "Any brute force?"},
			wantErr: "must be a valid UUID",
		},
		{
			name:    "blank question",
			request: AskRequest{LogID: "0190b3c4-7a1e-7c3d-9f00-2b8e4a6d1c55", Question: "   "},
			wantErr: "question",
		},
		{
			name: "question too long",
			request: AskRequest{
				LogID:    "0190b3c4-7a1e-7c3d-9f00-2b8e4a6d1c55",
				Question: strings.Repeat("?", 4001),
			},
			wantErr: "question",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
