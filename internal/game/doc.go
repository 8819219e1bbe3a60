// Package game implements ten-pin bowling scoring for a single game.
//
// The main type is ScoreCard, which records rolls frame by frame and keeps
// per-frame scores and running totals current as strikes and spares collect
// their bonus balls.
//
// # Basic Usage
//
// Record the rolls of a frame, then resolve it:
//
//	card := game.NewScoreCard()
//	_ = card.RecordFirstRoll(1, 7)
//	_ = card.RecordSecondRoll(1, 3)
//	_ = card.ResolveFrame(1)
//	// Frame 1 is a spare; its score grows once frame 2 is resolved.
//
// Frame 10 earns a third roll after a strike or spare:
//
//	if card.NeedsThirdRoll() {
//	    _ = card.RecordThirdRoll(10)
//	}
//
// # Scoring Model
//
// Bonus pins are pushed backward. When a frame is resolved, the frame before
// it (and, after two strikes, the frame before that) is credited with the
// pins it is owed, then every running total from frame 1 is recomputed. A
// frame's score is therefore provisional until the frames that can still pay
// it a bonus have been resolved.
//
// # Validation
//
// ScoreCard rejects out-of-range frames and pin counts, pin totals that exceed
// the pins standing, and out-of-order calls. Rejected calls leave the card
// unchanged, so a caller can re-prompt and try again.
package game
