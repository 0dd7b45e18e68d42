package gallery

// Direction is the navigation direction that opened a modal.
// The zero value means no direction was given.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

// ParseDirection maps a query token to a Direction. Matching is exact and
// case-sensitive; an empty or unknown token yields DirectionNone.
func ParseDirection(token string) Direction {
	switch token {
	case "left":
		return DirectionLeft
	case "right":
		return DirectionRight
	default:
		return DirectionNone
	}
}

// String returns the query token for d, or "" for DirectionNone.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}
