package game

// Summary holds the end-of-game statistics
type Summary struct {
	Total            int
	OpenFrames       int
	Strikes          int     // strike events, not frames
	AverageFirstRoll float64 // rounded to two decimals
}

// Summary returns the statistics for the game so far
func (sc *ScoreCard) Summary() Summary {
	return Summary{
		Total:            sc.total,
		OpenFrames:       sc.openFrames,
		Strikes:          sc.strikes,
		AverageFirstRoll: sc.AverageFirstRoll(),
	}
}
