package action

// Gesture identifies a recognized gesture on a keyboard button. The
// dispatcher produces gestures; the behavior policy is keyed on the
// (gesture, action) pair.
type Gesture uint8

const (
	// GestureNone indicates no gesture.
	GestureNone Gesture = iota
	// GesturePress is the initial touch-down.
	GesturePress
	// GestureRelease is a release that completes a tap.
	GestureRelease
	// GestureLongPress is a press held past the long-press delay.
	GestureLongPress
	// GestureDoubleTap is two presses within the double-tap window.
	GestureDoubleTap
	// GestureRepeat is a periodic tick while a key is held.
	GestureRepeat
	// GestureDrag is pointer movement during a press.
	GestureDrag
)

// String returns a string representation of the gesture.
func (g Gesture) String() string {
	switch g {
	case GesturePress:
		return "press"
	case GestureRelease:
		return "release"
	case GestureLongPress:
		return "longPress"
	case GestureDoubleTap:
		return "doubleTap"
	case GestureRepeat:
		return "repeat"
	case GestureDrag:
		return "drag"
	default:
		return "none"
	}
}
