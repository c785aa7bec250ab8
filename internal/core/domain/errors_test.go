package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrIO", ErrIO},
		{"ErrParse", ErrParse},
		{"ErrInvalidKey", ErrInvalidKey},
		{"ErrNotAnObject", ErrNotAnObject},
		{"ErrNotAnArray", ErrNotAnArray},
		{"ErrIDNotString", ErrIDNotString},
		{"ErrIDCollision", ErrIDCollision},
		{"ErrInvalidInput", ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrInvalidKey, ErrNotAnObject))
	assert.False(t, errors.Is(ErrNotAnArray, ErrIDNotString))
	assert.False(t, errors.Is(ErrIO, ErrParse))
}

func TestPathError_InvalidKeyMessage(t *testing.T) {
	err := &PathError{
		Path:    ParsePath("A.B"),
		Segment: "B",
		Reached: ParsePath("A"),
		Found:   KindObject,
		Err:     ErrInvalidKey,
	}

	assert.True(t, errors.Is(err, ErrInvalidKey))
	assert.Equal(t, `invalid key: "B" not found at "A" while resolving "A.B"`, err.Error())
}

func TestPathError_NotAnObjectMessage(t *testing.T) {
	err := &PathError{
		Path:    ParsePath("A.B"),
		Segment: "B",
		Reached: ParsePath("A"),
		Found:   KindNumber,
		Err:     ErrNotAnObject,
	}

	assert.True(t, errors.Is(err, ErrNotAnObject))
	assert.Contains(t, err.Error(), "found number at \"A\"")
	assert.Contains(t, err.Error(), `next key "B"`)
}

func TestPathError_RootLocation(t *testing.T) {
	err := &PathError{Path: ParsePath("x"), Segment: "x", Found: KindObject, Err: ErrInvalidKey}
	assert.Contains(t, err.Error(), "document root")
}

func TestKindError(t *testing.T) {
	err := &KindError{Want: KindArray, Got: NewValue(5), Err: ErrNotAnArray}

	assert.True(t, errors.Is(err, ErrNotAnArray))
	assert.Equal(t, "value is not an array: want array, found number 5", err.Error())

	var kindErr *KindError
	require.True(t, errors.As(err, &kindErr))
	assert.Equal(t, KindNumber, kindErr.Got.Kind())
}

func TestKindError_Null(t *testing.T) {
	err := &KindError{Want: KindString, Got: Value{}, Err: ErrIDNotString}
	assert.Equal(t, "ID value is not a string: want string, found null", err.Error())
}

func TestCollisionError(t *testing.T) {
	err := &CollisionError{ID: "x", File: "in.json"}

	assert.True(t, errors.Is(err, ErrIDCollision))
	assert.Equal(t, `ID collision: "x" in in.json`, err.Error())
}
