package domain

import (
	"fmt"
	"strings"
)

// DottedPath is a sequence of object keys used to walk into a JSON document.
//
// Keys are assumed not to contain a literal '.'; a path string is split on
// every dot and no escaping is supported. Changing this would change output
// file names for existing users.
type DottedPath struct {
	raw string
}

// ParsePath builds a DottedPath from its configuration string.
// The empty string is the empty path, which resolves to the input value.
func ParsePath(s string) DottedPath {
	return DottedPath{raw: s}
}

// String returns the path exactly as configured.
func (p DottedPath) String() string { return p.raw }

// IsEmpty reports whether p has no segments.
func (p DottedPath) IsEmpty() bool { return p.raw == "" }

// Segments returns the keys walked by Resolve, in order.
// A trailing dot ends the walk, so "A." has the single segment "A".
func (p DottedPath) Segments() []string {
	var segs []string
	rest := p.raw
	for rest != "" {
		var seg string
		seg, rest, _ = strings.Cut(rest, ".")
		segs = append(segs, seg)
	}
	return segs
}

// Resolve walks v one key at a time and returns the value at the end of p.
//
// Each step requires the current value to be an object. A missing key fails
// with ErrInvalidKey and a non-object value with ErrNotAnObject, both
// wrapped in a *PathError.
func (p DottedPath) Resolve(v Value) (Value, error) {
	cur := v
	segs := p.Segments()
	for i, seg := range segs {
		if cur.Kind() != KindObject {
			return Value{}, &PathError{
				Path:    p,
				Segment: seg,
				Reached: joinSegments(segs[:i]),
				Found:   cur.Kind(),
				Err:     ErrNotAnObject,
			}
		}
		next, ok := cur.Field(seg)
		if !ok {
			return Value{}, &PathError{
				Path:    p,
				Segment: seg,
				Reached: joinSegments(segs[:i]),
				Found:   KindObject,
				Err:     ErrInvalidKey,
			}
		}
		cur = next
	}
	return cur, nil
}

// describe names the location for error messages.
func (p DottedPath) describe() string {
	if p.IsEmpty() {
		return "document root"
	}
	return fmt.Sprintf("%q", p.raw)
}

func joinSegments(segs []string) DottedPath {
	return DottedPath{raw: strings.Join(segs, ".")}
}
