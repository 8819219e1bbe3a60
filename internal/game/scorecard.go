package game

import (
	"fmt"
	"math"
)

// ScoreCard holds the rolls and scores of a single game
type ScoreCard struct {
	frames     [NumFrames + 1]Frame // Index 0 unused, 1-10 for frames
	resolved   int                  // highest resolved frame
	strikes    int
	openFrames int
	total      int
}

// NewScoreCard creates an empty score card
func NewScoreCard() *ScoreCard {
	sc := &ScoreCard{}
	for n := 1; n <= NumFrames; n++ {
		sc.frames[n].Number = n
	}
	return sc
}

// RecordFirstRoll records the first ball of a frame
func (sc *ScoreCard) RecordFirstRoll(frame, pins int) error {
	if err := sc.checkWritable(frame); err != nil {
		return err
	}
	if err := checkPins(pins); err != nil {
		return err
	}

	f := &sc.frames[frame]
	if f.First.Bowled() {
		return fmt.Errorf("%w: frame %d first roll", ErrAlreadyRecorded, frame)
	}
	if frame != sc.resolved+1 {
		return fmt.Errorf("%w: frame %d bowled before frame %d", ErrOutOfSequence, frame, sc.resolved+1)
	}

	f.First = Pins(pins)
	if pins == MaxPins {
		sc.strikes++
	}
	return nil
}

// RecordSecondRoll records the second ball of a frame
func (sc *ScoreCard) RecordSecondRoll(frame, pins int) error {
	if err := sc.checkWritable(frame); err != nil {
		return err
	}
	if err := checkPins(pins); err != nil {
		return err
	}

	f := &sc.frames[frame]
	switch {
	case f.Second.Bowled():
		return fmt.Errorf("%w: frame %d second roll", ErrAlreadyRecorded, frame)
	case !f.First.Bowled():
		return fmt.Errorf("%w: frame %d second roll before first", ErrOutOfSequence, frame)
	case f.First.IsStrike() && !f.IsTenth():
		return fmt.Errorf("%w: frame %d has no second roll after a strike", ErrOutOfSequence, frame)
	}

	rack := leftAfter(f.First)
	if pins > rack.Standing {
		return fmt.Errorf("%w: %d pins with %d standing", ErrInvalidPinCount, pins, rack.Standing)
	}

	f.Second = Pins(pins)
	if f.IsTenth() && f.First.IsStrike() && pins == MaxPins {
		sc.strikes++
	}
	return nil
}

// ResolveFrame scores a frame once its rolls are recorded, crediting bonus
// pins to the one or two frames before it and recomputing running totals.
func (sc *ScoreCard) ResolveFrame(frame int) error {
	if err := sc.checkWritable(frame); err != nil {
		return err
	}

	f := &sc.frames[frame]
	switch {
	case f.Resolved:
		return fmt.Errorf("%w: frame %d already resolved", ErrAlreadyRecorded, frame)
	case frame != sc.resolved+1:
		return fmt.Errorf("%w: frame %d resolved before frame %d", ErrOutOfSequence, frame, sc.resolved+1)
	case !f.First.Bowled() || sc.NeedsSecondRoll(frame):
		return fmt.Errorf("%w: frame %d rolls incomplete", ErrOutOfSequence, frame)
	}

	first, second := f.First.Value(), f.Second.Value()
	// An unbowled second roll counts as zero, so a frames 1-9 strike pays
	// exactly its one known ball here and the rest when the next frame resolves.
	sc.payBonuses(frame, first, first+second)

	switch {
	case f.First.IsStrike():
		f.Strike = true
		f.Score = MaxPins
		if f.IsTenth() {
			f.Score += second
		}
	case first+second == MaxPins:
		f.Spare = true
		f.Score = MaxPins
	default:
		f.Score = first + second
		sc.openFrames++
	}

	f.Resolved = true
	sc.resolved = frame
	sc.recomputeRunningTotals(frame)
	sc.total = f.RunningTotal
	return nil
}

// payBonuses credits earlier frames with the balls thrown in frame.
// nextBall is the frame's first ball; nextBalls is every ball of the frame
// known so far.
func (sc *ScoreCard) payBonuses(frame, nextBall, nextBalls int) {
	if frame < 2 {
		return
	}
	prev := &sc.frames[frame-1]

	// Two strikes in a row: the older one is still owed this frame's first ball.
	if frame > 2 && prev.Strike && sc.frames[frame-2].Strike {
		sc.frames[frame-2].Score += nextBall
	}

	switch {
	case prev.Strike:
		prev.Score += nextBalls
	case prev.Spare:
		prev.Score += nextBall
	}
}

func (sc *ScoreCard) recomputeRunningTotals(through int) {
	running := 0
	for n := 1; n <= through; n++ {
		running += sc.frames[n].Score
		sc.frames[n].RunningTotal = running
	}
}

// RecordThirdRoll records the bonus ball of frame 10
func (sc *ScoreCard) RecordThirdRoll(pins int) error {
	tenth := &sc.frames[NumFrames]
	if tenth.Third.Bowled() {
		return fmt.Errorf("%w: frame %d third roll", ErrAlreadyRecorded, NumFrames)
	}
	if err := checkPins(pins); err != nil {
		return err
	}
	if sc.IsComplete() {
		return ErrGameComplete
	}
	if !sc.NeedsThirdRoll() {
		return fmt.Errorf("%w: no third roll earned in frame %d", ErrOutOfSequence, NumFrames)
	}

	rack, err := sc.Rack(NumFrames, 3)
	if err != nil {
		return err
	}
	if pins > rack.Standing {
		return fmt.Errorf("%w: %d pins with %d standing", ErrInvalidPinCount, pins, rack.Standing)
	}

	tenth.Third = Pins(pins)
	tenth.Score += pins
	tenth.RunningTotal = sc.frames[NumFrames-1].RunningTotal + tenth.Score
	sc.total = tenth.RunningTotal

	if tenth.Second.Value() == MaxPins && pins == MaxPins {
		sc.strikes++
	}
	return nil
}

// NeedsSecondRoll reports whether frame is waiting on its second ball
func (sc *ScoreCard) NeedsSecondRoll(frame int) bool {
	if frame < 1 || frame > NumFrames {
		return false
	}
	f := sc.frames[frame]
	if !f.First.Bowled() || f.Second.Bowled() {
		return false
	}
	return f.IsTenth() || !f.First.IsStrike()
}

// NeedsThirdRoll reports whether frame 10 has earned a bonus ball that has
// not been recorded yet
func (sc *ScoreCard) NeedsThirdRoll() bool {
	tenth := sc.frames[NumFrames]
	return tenth.Resolved && !tenth.Third.Bowled() && (tenth.Strike || tenth.Spare)
}

// IsComplete reports whether every frame, including any bonus ball, is scored
func (sc *ScoreCard) IsComplete() bool {
	return sc.resolved == NumFrames && !sc.NeedsThirdRoll()
}

// Rack returns the pins facing ball (1-3) of frame. The earlier balls of
// the frame must already be recorded.
func (sc *ScoreCard) Rack(frame, ball int) (Rack, error) {
	if frame < 1 || frame > NumFrames {
		return Rack{}, fmt.Errorf("%w: %d", ErrInvalidFrameIndex, frame)
	}
	f := sc.frames[frame]

	switch {
	case ball == 1:
		return freshRack, nil
	case ball == 2 && f.First.Bowled():
		return leftAfter(f.First), nil
	case ball == 3 && f.IsTenth() && f.Second.Bowled():
		if f.First.IsStrike() {
			return leftAfter(f.Second), nil
		}
		if f.First.Value()+f.Second.Value() == MaxPins {
			return freshRack, nil
		}
	}
	return Rack{}, fmt.Errorf("%w: no ball %d in frame %d", ErrOutOfSequence, ball, frame)
}

// AverageFirstRoll returns the mean first-ball pin count rounded half-up to
// two decimals. A frame 10 bonus ball counts as an extra first ball.
func (sc *ScoreCard) AverageFirstRoll() float64 {
	sum, count := 0, 0
	for n := 1; n <= NumFrames; n++ {
		if first := sc.frames[n].First; first.Bowled() {
			sum += first.Value()
			count++
		}
	}
	if third := sc.frames[NumFrames].Third; third.Bowled() {
		sum += third.Value()
		count++
	}

	if count == 0 {
		return 0
	}
	return roundHalfUp(float64(sum) / float64(count))
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// Frame returns a copy of frame n
func (sc *ScoreCard) Frame(n int) (Frame, error) {
	if n < 1 || n > NumFrames {
		return Frame{}, fmt.Errorf("%w: %d", ErrInvalidFrameIndex, n)
	}
	return sc.frames[n], nil
}

// Frames returns a copy of all ten frames in order
func (sc *ScoreCard) Frames() []Frame {
	frames := make([]Frame, NumFrames)
	copy(frames, sc.frames[1:])
	return frames
}

// TotalScore returns the running total through the last resolved frame
func (sc *ScoreCard) TotalScore() int {
	return sc.total
}

// StrikeCount returns the number of strike events recorded
func (sc *ScoreCard) StrikeCount() int {
	return sc.strikes
}

// OpenFrameCount returns the number of frames without a strike or spare
func (sc *ScoreCard) OpenFrameCount() int {
	return sc.openFrames
}

// ResolvedFrames returns how many frames have been resolved
func (sc *ScoreCard) ResolvedFrames() int {
	return sc.resolved
}

func (sc *ScoreCard) checkWritable(frame int) error {
	if frame < 1 || frame > NumFrames {
		return fmt.Errorf("%w: %d", ErrInvalidFrameIndex, frame)
	}
	if sc.IsComplete() {
		return ErrGameComplete
	}
	return nil
}

func checkPins(pins int) error {
	if pins < 0 || pins > MaxPins {
		return fmt.Errorf("%w: %d", ErrInvalidPinCount, pins)
	}
	return nil
}
