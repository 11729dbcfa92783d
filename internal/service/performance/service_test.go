package performance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/peopledesk/hr-backend-go/internal/domain/performance"
)

func TestOverallScore(t *testing.T) {
	tests := []struct {
		name    string
		ratings performance.Ratings
		want    string
	}{
		{
			name:    "all tens",
			ratings: performance.Ratings{QualityOfWork: 10, Productivity: 10, Communication: 10, Teamwork: 10, Initiative: 10, Attendance: 10},
			want:    "10",
		},
		{
			name:    "mixed ratings round to two places",
			ratings: performance.Ratings{QualityOfWork: 8, Productivity: 7, Communication: 9, Teamwork: 6, Initiative: 8, Attendance: 7},
			want:    "7.5",
		},
		{
			name:    "repeating fraction",
			ratings: performance.Ratings{QualityOfWork: 8, Productivity: 8, Communication: 8, Teamwork: 8, Initiative: 8, Attendance: 9},
			want:    "8.17",
		},
		{
			name:    "all ones",
			ratings: performance.Ratings{QualityOfWork: 1, Productivity: 1, Communication: 1, Teamwork: 1, Initiative: 1, Attendance: 1},
			want:    "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OverallScore(tt.ratings)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestGrade(t *testing.T) {
	tests := []struct {
		score string
		want  string
	}{
		{"10", "A+"},
		{"9", "A+"},
		{"8.99", "A"},
		{"8", "A"},
		{"7.5", "B"},
		{"7", "B"},
		{"6.17", "C"},
		{"6", "C"},
		{"5.5", "D"},
		{"5", "D"},
		{"4.99", "F"},
		{"1", "F"},
	}

	for _, tt := range tests {
		t.Run(tt.score, func(t *testing.T) {
			assert.Equal(t, tt.want, Grade(decimal.RequireFromString(tt.score)))
		})
	}
}
