package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent the failure kinds of a split run.
// Every one of them is fatal and ends the run.
var (
	// ErrIO indicates an input file could not be read or an output file written.
	ErrIO = errors.New("i/o failure")

	// ErrParse indicates an input file is not valid JSON.
	ErrParse = errors.New("invalid JSON")

	// ErrInvalidKey indicates a path segment does not exist in the current object.
	ErrInvalidKey = errors.New("invalid key")

	// ErrNotAnObject indicates path descent reached a non-object value
	// while segments remained.
	ErrNotAnObject = errors.New("value is not an object")

	// ErrNotAnArray indicates the value at the array path is not an array.
	ErrNotAnArray = errors.New("value is not an array")

	// ErrIDNotString indicates the value at the ID path is not a string.
	ErrIDNotString = errors.New("ID value is not a string")

	// ErrIDCollision indicates a duplicate ID while collisions are not tolerated.
	ErrIDCollision = errors.New("ID collision")

	// ErrInvalidInput indicates a malformed request, such as a missing path.
	ErrInvalidInput = errors.New("invalid input")
)

// PathError describes a failed dotted path resolution.
type PathError struct {
	// Path is the full path being resolved.
	Path DottedPath

	// Segment is the key that could not be followed.
	Segment string

	// Reached is the prefix of Path resolved before the failure.
	Reached DottedPath

	// Found is the kind of the value at Reached.
	Found Kind

	// Err is ErrInvalidKey or ErrNotAnObject.
	Err error
}

func (e *PathError) Error() string {
	if errors.Is(e.Err, ErrNotAnObject) {
		return fmt.Sprintf("%v: found %s at %s while resolving %q (next key %q)",
			e.Err, e.Found, e.Reached.describe(), e.Path.String(), e.Segment)
	}
	return fmt.Sprintf("%v: %q not found at %s while resolving %q",
		e.Err, e.Segment, e.Reached.describe(), e.Path.String())
}

func (e *PathError) Unwrap() error { return e.Err }

// KindError reports a value of the wrong kind where a specific kind was required.
type KindError struct {
	// Want is the required kind.
	Want Kind

	// Got is the value that was found.
	Got Value

	// Err is the sentinel describing the failure, e.g. ErrNotAnArray.
	Err error
}

func (e *KindError) Error() string {
	if e.Got.Kind() == KindNull {
		return fmt.Sprintf("%v: want %s, found null", e.Err, e.Want)
	}
	return fmt.Sprintf("%v: want %s, found %s %s", e.Err, e.Want, e.Got.Kind(), e.Got.Summary())
}

func (e *KindError) Unwrap() error { return e.Err }

// CollisionError reports a duplicate element ID.
type CollisionError struct {
	// ID is the duplicated value.
	ID string

	// File is the input file holding the duplicate.
	File string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("%v: %q in %s", ErrIDCollision, e.ID, e.File)
}

func (e *CollisionError) Unwrap() error { return ErrIDCollision }
