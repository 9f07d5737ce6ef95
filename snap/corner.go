// This package resolves which of the four container corners a
// floating element should settle into when a drag gesture releases
// it, and which motion profile the transition should use.
//
// The resolution is a plain quadrant test against the container's
// midpoint, usually fed with the projected gesture end point rather
// than the raw release position, so a flick toward a corner wins even
// if the finger lifts off near the center. See
// [github.com/FradSer/fluid.Project]().
package snap

// One of the four corners of a container. The leading/trailing naming
// matches the interaction pattern this package reproduces; leading is
// simply the left edge here.
type Corner uint8

const (
	TopLeading Corner = iota
	TopTrailing
	BottomLeading
	BottomTrailing
)

// Returns a human-readable corner name, mostly for debug overlays.
func (self Corner) String() string {
	switch self {
	case TopLeading:
		return "top-leading"
	case TopTrailing:
		return "top-trailing"
	case BottomLeading:
		return "bottom-leading"
	case BottomTrailing:
		return "bottom-trailing"
	default:
		return "invalid-corner"
	}
}

// Returns the absolute pinned position of an element with the given
// dimensions sitting in this corner of a width x height container.
func (self Corner) Offset(width, height, elementWidth, elementHeight float64) (x, y float64) {
	switch self {
	case TopLeading:
		return 0, 0
	case TopTrailing:
		return width - elementWidth, 0
	case BottomLeading:
		return 0, height - elementHeight
	case BottomTrailing:
		return width - elementWidth, height - elementHeight
	default:
		panic(invalidCorner)
	}
}

// Maps a point to the corner of its quadrant within a width x height
// container. The test is strict on both axes: a point sitting exactly
// on either midline belongs to no quadrant, and the function reports
// resolved == false. That is a legitimate outcome the caller handles
// (typically by keeping the previous corner), not an error.
//
// Will panic unless width and height are both > 0.
func Resolve(width, height, x, y float64) (corner Corner, resolved bool) {
	if width <= 0 || height <= 0 {
		panic(invalidContainer)
	}
	midX, midY := width/2.0, height/2.0
	switch {
	case x < midX && y < midY:
		return TopLeading, true
	case x > midX && y < midY:
		return TopTrailing, true
	case x < midX && y > midY:
		return BottomLeading, true
	case x > midX && y > midY:
		return BottomTrailing, true
	default:
		return 0, false
	}
}

// How a corner transition should move.
type TransitionKind uint8

const (
	// Velocity-seeded spring motion; the element sails into the
	// corner carrying the gesture's momentum.
	TransitionSpringy TransitionKind = iota

	// Plain motion with no seeded velocity, for when the release had
	// no usable direction.
	TransitionDirect
)

// A resolved corner transition: where to go and how to get there.
type Transition struct {
	Corner Corner
	Kind   TransitionKind
}

// Two-phase resolution for release handling. The projected end point
// is tested first; if it resolves, the transition is springy, since
// the gesture's momentum points somewhere meaningful. If the
// projection sits exactly on a midline, the current position decides
// instead with a direct transition. If neither resolves, resolved is
// false and the caller keeps the element where it was.
//
// Will panic unless width and height are both > 0.
func ResolveMotion(width, height, projectedX, projectedY, currentX, currentY float64) (transition Transition, resolved bool) {
	if corner, ok := Resolve(width, height, projectedX, projectedY); ok {
		return Transition{Corner: corner, Kind: TransitionSpringy}, true
	}
	if corner, ok := Resolve(width, height, currentX, currentY); ok {
		return Transition{Corner: corner, Kind: TransitionDirect}, true
	}
	return Transition{}, false
}

// --- errors ---

const invalidContainer = "snap: container width and height must be > 0"
const invalidCorner = "snap: invalid Corner value"
