package assistant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/suryalaha/EcoTrack-app-manage/internal/assistant"
)

func TestParseETA(t *testing.T) {
	tests := []struct {
		answer string
		want   string
	}{
		{"15", "15 min"},
		{"  7\n", "7 min"},
		{"12 minutes", "12 min"},
		{"0", "< 1 min"},
		{"-2", "< 1 min"},
		{"About 25 minutes by car.", "25 min"},
		{"It takes 1 minute", "1 min"},
		{"0 minutes away", "< 1 min"},
		{"half an hour", "Not available"},
		{"", "Not available"},
	}
	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			assert.Equal(t, tt.want, assistant.ParseETA(tt.answer))
		})
	}
}
