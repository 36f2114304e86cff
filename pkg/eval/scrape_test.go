package eval_test

import (
	"testing"

	"github.com/adze-cad/adze/pkg/eval"
	"github.com/stretchr/testify/require"
)

func TestScraperNumber(t *testing.T) {
	s := eval.NewScraper()

	tests := []struct {
		text string
		want float64
		ok   bool
	}{
		{"cube(12)", 12, true},
		{"sphere(r = 2.5);", 2.5, true},
		{"translate(-7.25)", -7.25, true},
		{"first 1 then 2", 1, true},
		{"no digits here", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := s.Number(tt.text)
		require.Equal(t, tt.ok, ok, "text %q", tt.text)
		require.Equal(t, tt.want, got, "text %q", tt.text)
	}
}

func TestScraperTriple(t *testing.T) {
	s := eval.NewScraper()

	tests := []struct {
		text string
		want [3]float64
		ok   bool
	}{
		{"[1, 2, 3]", [3]float64{1, 2, 3}, true},
		{"translate([ 10 , -20 , 30.5 ])", [3]float64{10, -20, 30.5}, true},
		{"[1, 2]", [3]float64{}, false},
		{"1, 2, 3", [3]float64{}, false},
		{"", [3]float64{}, false},
	}

	for _, tt := range tests {
		got, ok := s.Triple(tt.text)
		require.Equal(t, tt.ok, ok, "text %q", tt.text)
		require.Equal(t, tt.want, got, "text %q", tt.text)
	}
}

func TestScraperUnwrapped(t *testing.T) {
	s := eval.NewScraper()

	tests := []struct {
		text string
		want float64
		ok   bool
	}{
		{"(5)", 5, true},
		{"( -3.5 )", -3.5, true},
		{"[7]", 7, true},
		{"()", 0, false},
		{"(a)", 0, false},
	}

	for _, tt := range tests {
		got, ok := s.Unwrapped(tt.text)
		require.Equal(t, tt.ok, ok, "text %q", tt.text)
		require.Equal(t, tt.want, got, "text %q", tt.text)
	}
}
