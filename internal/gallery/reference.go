package gallery

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformedReference is returned when an image reference cannot be parsed.
var ErrMalformedReference = errors.New("malformed image reference")

// Reference identifies one image: a base URL plus a numeric sequence id.
// Its string form is "<base>?<id>".
type Reference struct {
	Base string
	ID   int
}

// NewReference builds a Reference from its parts.
func NewReference(base string, id int) Reference {
	return Reference{Base: base, ID: id}
}

// ParseReference splits s on its first '?' into a base and an integer id.
func ParseReference(s string) (Reference, error) {
	base, rawID, ok := strings.Cut(s, "?")
	if !ok {
		return Reference{}, fmt.Errorf("%w: %q has no '?' separator", ErrMalformedReference, s)
	}
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return Reference{}, fmt.Errorf("%w: id %q in %q is not an integer", ErrMalformedReference, rawID, s)
	}
	return Reference{Base: base, ID: id}, nil
}

// ParseReferenceParts builds a Reference from a separate base and id, as
// carried by the "base" and "id" query parameters.
func ParseReferenceParts(base, rawID string) (Reference, error) {
	if rawID == "" {
		return Reference{}, fmt.Errorf("%w: missing id", ErrMalformedReference)
	}
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return Reference{}, fmt.Errorf("%w: id %q is not an integer", ErrMalformedReference, rawID)
	}
	return Reference{Base: base, ID: id}, nil
}

// String returns the composite "<base>?<id>" form.
func (r Reference) String() string {
	return r.Base + "?" + strconv.Itoa(r.ID)
}

// Prev returns the reference one step to the left. ok is false when the id
// is already the smallest int.
func (r Reference) Prev() (prev Reference, ok bool) {
	if r.ID == math.MinInt {
		return Reference{}, false
	}
	return Reference{Base: r.Base, ID: r.ID - 1}, true
}

// Next returns the reference one step to the right. ok is false when the id
// is already the largest int.
func (r Reference) Next() (next Reference, ok bool) {
	if r.ID == math.MaxInt {
		return Reference{}, false
	}
	return Reference{Base: r.Base, ID: r.ID + 1}, true
}
