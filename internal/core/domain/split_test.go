package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitRequest_Validate(t *testing.T) {
	valid := SplitRequest{
		ArrayPath: ParsePath("items"),
		IDPath:    ParsePath("id"),
		Files:     []string{"in.json"},
	}
	assert.NoError(t, valid.Validate())

	t.Run("empty paths", func(t *testing.T) {
		req := valid
		req.ArrayPath = ParsePath("")
		req.IDPath = ParsePath("")
		assert.NoError(t, req.Validate())
	})

	t.Run("no files", func(t *testing.T) {
		req := valid
		req.Files = nil

		err := req.Validate()
		assert.True(t, errors.Is(err, ErrInvalidInput))
		assert.Contains(t, err.Error(), "input files")
	})
}

func TestIDSet(t *testing.T) {
	s := NewIDSet()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has("x"))

	s.Add("x")
	assert.True(t, s.Has("x"))
	assert.Equal(t, 1, s.Len())

	s.Add("x")
	assert.Equal(t, 1, s.Len())

	s.Add("y")
	assert.Equal(t, 2, s.Len())
}
