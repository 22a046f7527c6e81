package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTuning(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		expected Tuning
	}{
		{"defaults", nil, Tuning{Alpha: 2.0 / 3.0, Iterations: 10}},
		{"alpha only", []Option{WithAlpha(0.5)}, Tuning{Alpha: 0.5, Iterations: 10}},
		{"iterations only", []Option{WithIterations(25)}, Tuning{Alpha: 2.0 / 3.0, Iterations: 25}},
		{"later option wins", []Option{WithIterations(5), WithIterations(7)}, Tuning{Alpha: 2.0 / 3.0, Iterations: 7}},
		{"partial tuning keeps defaults", []Option{WithTuning(Tuning{Iterations: 3})}, Tuning{Alpha: 2.0 / 3.0, Iterations: 3}},
		{"full tuning", []Option{WithTuning(Tuning{Alpha: 0.9, Iterations: 50})}, Tuning{Alpha: 0.9, Iterations: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewTuning(tt.opts...))
		})
	}
}
