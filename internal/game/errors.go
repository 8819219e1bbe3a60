package game

import "errors"

var (
	// ErrInvalidFrameIndex is returned for frame numbers outside 1..10.
	ErrInvalidFrameIndex = errors.New("game: invalid frame index")
	// ErrInvalidPinCount is returned for pin counts outside 0..10 or more
	// pins than are standing.
	ErrInvalidPinCount = errors.New("game: invalid pin count")
	// ErrOutOfSequence is returned when a roll or resolve arrives out of order.
	ErrOutOfSequence = errors.New("game: out of sequence")
	// ErrAlreadyRecorded is returned when a roll or frame result is written twice.
	ErrAlreadyRecorded = errors.New("game: already recorded")
	// ErrGameComplete is returned for any change after the game has finished.
	ErrGameComplete = errors.New("game: game complete")
)
