package basics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	assert.Equal(t, 30, Add(10, 20))
	assert.Equal(t, 0, Add(0, 0))
	assert.Equal(t, -3, Add(-5, 2))
}

func TestParseAndAdd(t *testing.T) {
	sum, err := ParseAndAdd("10", "20")
	require.NoError(t, err)
	assert.Equal(t, 30, sum)

	sum, err = ParseAndAdd(" -4 ", "9")
	require.NoError(t, err)
	assert.Equal(t, 5, sum)
}

func TestParseAndAdd_NonInteger(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"first not integer", "text", "10"},
		{"second not integer", "10", "3.5"},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAndAdd(tt.a, tt.b)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "parse and add")
		})
	}
}

func TestDescribe(t *testing.T) {
	report := Describe("learning Go")

	assert.Equal(t, "learning Go", report.Text)
	assert.Equal(t, 11, report.Length)
	assert.Equal(t, "LEARNING GO", report.Upper)
}

func TestDescribe_CountsRunes(t *testing.T) {
	// Multi-byte text must be counted in runes, not bytes.
	report := Describe("こんにちは")
	assert.Equal(t, 5, report.Length)
}

func TestAggregate(t *testing.T) {
	stats, err := Aggregate([]int{1, 2, 3, 4, 5, 10, 15, 20})
	require.NoError(t, err)

	assert.Equal(t, 60, stats.Sum)
	assert.InDelta(t, 7.5, stats.Mean, 1e-9)
	assert.Equal(t, 20, stats.Max)
	assert.Equal(t, 1, stats.Min)
}

func TestAggregate_SingleElement(t *testing.T) {
	stats, err := Aggregate([]int{-7})
	require.NoError(t, err)

	assert.Equal(t, -7, stats.Sum)
	assert.InDelta(t, -7, stats.Mean, 1e-9)
	assert.Equal(t, -7, stats.Max)
	assert.Equal(t, -7, stats.Min)
}

func TestAggregate_Empty(t *testing.T) {
	_, err := Aggregate(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyList)
}
