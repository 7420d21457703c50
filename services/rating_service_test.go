package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound1(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"single review", []int{1}, 1.0},
		{"exact half", []int{5, 4}, 4.5},
		{"rounds down", []int{5, 4, 4}, 4.3},
		{"rounds up", []int{5, 5, 4}, 4.7},
		{"half rounds away from zero", []int{4, 5, 4, 4}, 4.3},
		{"all fives", []int{5, 5, 5}, 5.0},
		{"no reviews", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sum int
			for _, r := range tt.ratings {
				sum += r
			}
			mean := 0.0
			if len(tt.ratings) > 0 {
				mean = float64(sum) / float64(len(tt.ratings))
			}
			assert.Equal(t, tt.want, Round1(mean))
		})
	}
}
