package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haulpath/tripplan/pkg/utils"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.0},
		{297.33499, 297.33},
		{297.335001, 297.34},
		{-1.255, -1.25},
		{0, 0},
	}

	for _, tc := range tests {
		assert.InDelta(t, tc.want, utils.Round2(tc.in), 1e-9, "Round2(%v)", tc.in)
	}
}
