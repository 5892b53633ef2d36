package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    string
	}{
		{"zero", 0, "0h 0min"},
		{"seconds truncated", 59, "0h 0min"},
		{"minutes only", 125, "0h 2min"},
		{"one hour thirty", 5430, "1h 30min"},
		{"exact hours", 7200, "2h 0min"},
		{"long shift", 8*3600 + 45*60 + 59, "8h 45min"},
		{"negative clamped", -10, "0h 0min"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.seconds))
		})
	}
}
