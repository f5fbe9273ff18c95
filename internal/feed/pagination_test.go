package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
	}{
		{name: "Valid page", raw: "3", expected: 3},
		{name: "First page", raw: "1", expected: 1},
		{name: "Empty value falls back to page 1", raw: "", expected: 1},
		{name: "Garbage falls back to page 1", raw: "abc", expected: 1},
		{name: "Zero falls back to page 1", raw: "0", expected: 1},
		{name: "Negative falls back to page 1", raw: "-2", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePage(tt.raw))
		})
	}
}

func TestPageOffset(t *testing.T) {
	// Avec 13 posts et des pages de 10 : la page 1 couvre 0-9, la page 2
	// couvre 10-12, la page 3 commence après le dernier post
	assert.Equal(t, 0, PageOffset(1))
	assert.Equal(t, 10, PageOffset(2))
	assert.Equal(t, 20, PageOffset(3))
	assert.Equal(t, 0, PageOffset(0))
}
