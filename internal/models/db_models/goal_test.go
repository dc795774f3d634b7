package db_models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoal_ProgressPercent(t *testing.T) {
	cases := []struct {
		name     string
		progress float64
		target   float64
		want     int
	}{
		{"not started", 0, 10, 0},
		{"rounded", 1, 3, 33},
		{"past target", 3, 2, 150},
		{"zero target", 5, 0, 0},
		{"tiny target", 5, 1e-300, math.MaxInt32},
		{"infinite ratio", math.MaxFloat64, 1e-300, math.MaxInt32},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := Goal{Progress: tc.progress, Target: tc.target}
			assert.Equal(t, tc.want, g.ProgressPercent())
		})
	}
}
