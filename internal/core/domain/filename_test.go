package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputFilename(t *testing.T) {
	tests := []struct {
		arrayPath string
		idPath    string
		id        string
		want      string
	}{
		{"Apple.Banana", "id", "12", "Apple.Banana-id-12.json"},
		{"Apple", "Banana.id", "12", "Apple-Banana.id-12.json"},
		{"Apple.Banana", "Cherry.id", "x", "Apple.Banana-Cherry.id-x.json"},
		{"a", "b", "", "a-b-.json"},
		{"a", "b", "with/slash", "a-b-with/slash.json"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputFilename(tt.arrayPath, tt.idPath, tt.id))
		})
	}
}

func TestOutputFilename_Deterministic(t *testing.T) {
	first := OutputFilename("Apple.Banana", "id", "12")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, OutputFilename("Apple.Banana", "id", "12"))
	}
}
