package game

const (
	// NumFrames is the number of frames in a game
	NumFrames = 10
	// MaxPins is the number of pins in a full rack
	MaxPins = 10
)

// Frame is one of the ten frames of a game
type Frame struct {
	Number int
	First  Roll
	Second Roll
	Third  Roll // frame 10 only

	Strike bool
	Spare  bool

	// Score includes bonus pins credited by later frames and may grow until
	// those frames are resolved.
	Score        int
	RunningTotal int
	Resolved     bool
}

// IsTenth reports whether this is the final frame
func (f Frame) IsTenth() bool {
	return f.Number == NumFrames
}

// Open reports whether the frame was resolved without a strike or spare
func (f Frame) Open() bool {
	return f.Resolved && !f.Strike && !f.Spare
}

// Rack describes the pins facing a ball.
type Rack struct {
	Standing int  // pins standing before the ball
	Fresh    bool // a full rack set for this ball
}

var freshRack = Rack{Standing: MaxPins, Fresh: true}

// leftAfter is the rack facing the ball that follows r on the same pins
func leftAfter(r Roll) Rack {
	if r.IsStrike() {
		return freshRack
	}
	return Rack{Standing: MaxPins - r.Value()}
}
