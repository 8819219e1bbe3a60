package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bowl plays one slice of rolls per frame. A third roll in the last slice is
// recorded as the frame 10 bonus ball.
func bowl(t *testing.T, frames ...[]int) *ScoreCard {
	t.Helper()
	card := NewScoreCard()
	for i, rolls := range frames {
		n := i + 1
		require.NoError(t, card.RecordFirstRoll(n, rolls[0]), "frame %d first roll", n)
		if len(rolls) > 1 {
			require.NoError(t, card.RecordSecondRoll(n, rolls[1]), "frame %d second roll", n)
		}
		require.NoError(t, card.ResolveFrame(n), "frame %d resolve", n)
		if len(rolls) > 2 {
			require.NoError(t, card.RecordThirdRoll(rolls[2]), "frame %d third roll", n)
		}
	}
	return card
}

func repeat(rolls []int, times int) [][]int {
	frames := make([][]int, times)
	for i := range frames {
		frames[i] = rolls
	}
	return frames
}

func runningTotals(card *ScoreCard) []int {
	var totals []int
	for _, f := range card.Frames() {
		totals = append(totals, f.RunningTotal)
	}
	return totals
}

func frameScores(card *ScoreCard) []int {
	var scores []int
	for _, f := range card.Frames() {
		scores = append(scores, f.Score)
	}
	return scores
}

func TestPerfectGame(t *testing.T) {
	t.Parallel()
	frames := append(repeat([]int{10}, 9), []int{10, 10, 10})
	card := bowl(t, frames...)

	assert.True(t, card.IsComplete())
	assert.Equal(t, 300, card.TotalScore())
	assert.Equal(t, 12, card.StrikeCount())
	assert.Equal(t, 0, card.OpenFrameCount())
	assert.Equal(t, 10.0, card.AverageFirstRoll())

	want := []int{30, 60, 90, 120, 150, 180, 210, 240, 270, 300}
	if diff := cmp.Diff(want, runningTotals(card)); diff != "" {
		t.Errorf("running totals mismatch (-want +got):\n%s", diff)
	}
}

func TestGutterGame(t *testing.T) {
	t.Parallel()
	card := bowl(t, repeat([]int{0, 0}, 10)...)

	assert.True(t, card.IsComplete())
	assert.False(t, card.NeedsThirdRoll())
	assert.Equal(t, 0, card.TotalScore())
	assert.Equal(t, 10, card.OpenFrameCount())
	assert.Equal(t, 0, card.StrikeCount())
	assert.Equal(t, 0.0, card.AverageFirstRoll())
}

func TestAllOnes(t *testing.T) {
	t.Parallel()
	card := bowl(t, repeat([]int{1, 1}, 10)...)

	assert.Equal(t, 20, card.TotalScore())
	assert.Equal(t, 1.0, card.AverageFirstRoll())
}

func TestSpareEarnsNextBall(t *testing.T) {
	t.Parallel()
	frames := append([][]int{{5, 5}, {3, 0}}, repeat([]int{0, 0}, 8)...)
	card := bowl(t, frames...)

	first, err := card.Frame(1)
	require.NoError(t, err)
	assert.True(t, first.Spare)
	assert.Equal(t, 13, first.Score)
	assert.Equal(t, 13, first.RunningTotal)
	assert.Equal(t, 16, card.TotalScore())
	assert.Equal(t, 9, card.OpenFrameCount())
}

func TestStrikeInNinthThenSpareInTenth(t *testing.T) {
	t.Parallel()
	frames := append(repeat([]int{0, 0}, 8), []int{10}, []int{4, 6, 7})
	card := bowl(t, frames...)

	ninth, err := card.Frame(9)
	require.NoError(t, err)
	assert.Equal(t, 20, ninth.Score)

	tenth, err := card.Frame(10)
	require.NoError(t, err)
	assert.True(t, tenth.Spare)
	assert.Equal(t, 17, tenth.Score)
	assert.Equal(t, 37, tenth.RunningTotal)
	assert.Equal(t, 37, card.TotalScore())
	assert.Equal(t, 1, card.StrikeCount())
	// (10 + 4 + 7) / 11
	assert.Equal(t, 1.91, card.AverageFirstRoll())
}

func TestMixedGame(t *testing.T) {
	t.Parallel()
	card := bowl(t,
		[]int{10},
		[]int{7, 3},
		[]int{9, 0},
		[]int{10},
		[]int{0, 8},
		[]int{8, 2},
		[]int{0, 6},
		[]int{10},
		[]int{10},
		[]int{10, 8, 1},
	)

	wantScores := []int{20, 19, 9, 18, 8, 10, 6, 30, 28, 19}
	if diff := cmp.Diff(wantScores, frameScores(card)); diff != "" {
		t.Errorf("frame scores mismatch (-want +got):\n%s", diff)
	}
	wantTotals := []int{20, 39, 48, 66, 74, 84, 90, 120, 148, 167}
	if diff := cmp.Diff(wantTotals, runningTotals(card)); diff != "" {
		t.Errorf("running totals mismatch (-want +got):\n%s", diff)
	}

	summary := card.Summary()
	assert.Equal(t, Summary{Total: 167, OpenFrames: 3, Strikes: 5, AverageFirstRoll: 6.82}, summary)
}

func TestProvisionalScoresAreRevised(t *testing.T) {
	t.Parallel()
	card := NewScoreCard()

	require.NoError(t, card.RecordFirstRoll(1, 10))
	require.NoError(t, card.ResolveFrame(1))
	assert.Equal(t, []int{10}, frameScores(card)[:1])

	require.NoError(t, card.RecordFirstRoll(2, 10))
	require.NoError(t, card.ResolveFrame(2))
	assert.Equal(t, []int{20, 10}, frameScores(card)[:2])
	assert.Equal(t, 30, card.TotalScore())

	require.NoError(t, card.RecordFirstRoll(3, 4))
	require.NoError(t, card.RecordSecondRoll(3, 5))
	require.NoError(t, card.ResolveFrame(3))
	assert.Equal(t, []int{24, 19, 9}, frameScores(card)[:3])
	assert.Equal(t, []int{24, 43, 52}, runningTotals(card)[:3])
	assert.Equal(t, 52, card.TotalScore())
}

func TestTenthFrameStrikeEvents(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		tenth   []int
		strikes int
		score   int
	}{
		{"triple strike", []int{10, 10, 10}, 3, 30},
		{"double strike then count", []int{10, 10, 5}, 2, 25},
		{"strike then spare", []int{10, 3, 7}, 1, 20},
		{"strike then open", []int{10, 3, 4}, 1, 17},
		{"strike gutter then ten", []int{10, 0, 10}, 1, 20},
		{"spare then strike", []int{0, 10, 10}, 1, 20},
		{"spare then count", []int{4, 6, 5}, 0, 15},
		{"open", []int{4, 5}, 0, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			frames := append(repeat([]int{0, 0}, 9), tt.tenth)
			card := bowl(t, frames...)

			assert.True(t, card.IsComplete())
			assert.Equal(t, tt.strikes, card.StrikeCount())
			assert.Equal(t, tt.score, card.TotalScore())
		})
	}
}

func TestAverageFirstRollCountsBonusBall(t *testing.T) {
	t.Parallel()

	t.Run("after a spare", func(t *testing.T) {
		frames := append(repeat([]int{0, 10}, 9), []int{0, 10, 10})
		card := bowl(t, frames...)
		// 10 / 11, not 10 / 10
		assert.Equal(t, 0.91, card.AverageFirstRoll())
		assert.Equal(t, 110, card.TotalScore())
	})

	t.Run("after a strike", func(t *testing.T) {
		frames := append(repeat([]int{0, 0}, 9), []int{10, 3, 4})
		card := bowl(t, frames...)
		// 14 / 11
		assert.Equal(t, 1.27, card.AverageFirstRoll())
	})

	t.Run("rounds half up", func(t *testing.T) {
		// 5 / 8 = 0.625
		frames := append(repeat([]int{1, 0}, 5), []int{0, 0}, []int{0, 0})
		frames = append(frames, []int{0, 0})
		card := bowl(t, frames...)
		assert.Equal(t, 0.63, card.AverageFirstRoll())
	})

	t.Run("empty card", func(t *testing.T) {
		assert.Equal(t, 0.0, NewScoreCard().AverageFirstRoll())
	})
}

func TestOpenFrameScoreEqualsPins(t *testing.T) {
	t.Parallel()
	card := bowl(t,
		[]int{3, 4},
		[]int{10},
		[]int{6, 4},
		[]int{2, 2},
		[]int{0, 10},
		[]int{9, 0},
		[]int{10},
		[]int{10},
		[]int{5, 1},
		[]int{7, 2},
	)

	for _, f := range card.Frames()[:9] {
		pins := f.First.Value() + f.Second.Value()
		assert.Equal(t, f.Open(), f.Score == pins, "frame %d", f.Number)
	}
}

func TestRunningTotalsNeverDecrease(t *testing.T) {
	t.Parallel()
	games := [][][]int{
		append(repeat([]int{10}, 9), []int{10, 10, 10}),
		append(repeat([]int{9, 1}, 9), []int{9, 1, 9}),
		{{10}, {7, 3}, {9, 0}, {10}, {0, 8}, {8, 2}, {0, 6}, {10}, {10}, {10, 8, 1}},
	}

	for _, frames := range games {
		card := NewScoreCard()
		for i, rolls := range frames {
			n := i + 1
			require.NoError(t, card.RecordFirstRoll(n, rolls[0]))
			if len(rolls) > 1 {
				require.NoError(t, card.RecordSecondRoll(n, rolls[1]))
			}
			require.NoError(t, card.ResolveFrame(n))

			totals := runningTotals(card)[:n]
			for j := 1; j < len(totals); j++ {
				assert.GreaterOrEqual(t, totals[j], totals[j-1], "after frame %d", n)
			}
		}
	}
}

func TestValidation(t *testing.T) {
	t.Parallel()

	t.Run("frame index", func(t *testing.T) {
		card := NewScoreCard()
		assert.ErrorIs(t, card.RecordFirstRoll(0, 5), ErrInvalidFrameIndex)
		assert.ErrorIs(t, card.RecordFirstRoll(11, 5), ErrInvalidFrameIndex)
		assert.ErrorIs(t, card.RecordSecondRoll(11, 5), ErrInvalidFrameIndex)
		assert.ErrorIs(t, card.ResolveFrame(0), ErrInvalidFrameIndex)
		_, err := card.Frame(11)
		assert.ErrorIs(t, err, ErrInvalidFrameIndex)
	})

	t.Run("pin range", func(t *testing.T) {
		card := NewScoreCard()
		assert.ErrorIs(t, card.RecordFirstRoll(1, -1), ErrInvalidPinCount)
		assert.ErrorIs(t, card.RecordFirstRoll(1, 11), ErrInvalidPinCount)
		assert.False(t, card.frames[1].First.Bowled())
	})

	t.Run("too many pins leaves state unchanged", func(t *testing.T) {
		card := NewScoreCard()
		require.NoError(t, card.RecordFirstRoll(1, 5))
		assert.ErrorIs(t, card.RecordSecondRoll(1, 6), ErrInvalidPinCount)
		assert.True(t, card.NeedsSecondRoll(1))
		require.NoError(t, card.RecordSecondRoll(1, 5))
	})

	t.Run("second roll after strike", func(t *testing.T) {
		card := NewScoreCard()
		require.NoError(t, card.RecordFirstRoll(1, 10))
		assert.False(t, card.NeedsSecondRoll(1))
		assert.ErrorIs(t, card.RecordSecondRoll(1, 0), ErrOutOfSequence)
	})

	t.Run("second roll before first", func(t *testing.T) {
		card := NewScoreCard()
		assert.ErrorIs(t, card.RecordSecondRoll(1, 3), ErrOutOfSequence)
	})

	t.Run("frames out of order", func(t *testing.T) {
		card := NewScoreCard()
		assert.ErrorIs(t, card.RecordFirstRoll(2, 3), ErrOutOfSequence)
		require.NoError(t, card.RecordFirstRoll(1, 3))
		assert.ErrorIs(t, card.RecordFirstRoll(1, 4), ErrAlreadyRecorded)
		assert.ErrorIs(t, card.ResolveFrame(1), ErrOutOfSequence)
		require.NoError(t, card.RecordSecondRoll(1, 4))
		assert.ErrorIs(t, card.RecordSecondRoll(1, 4), ErrAlreadyRecorded)
		assert.ErrorIs(t, card.ResolveFrame(2), ErrOutOfSequence)
		require.NoError(t, card.ResolveFrame(1))
		assert.ErrorIs(t, card.ResolveFrame(1), ErrAlreadyRecorded)
		assert.Equal(t, 7, card.TotalScore())
	})

	t.Run("tenth frame second ball", func(t *testing.T) {
		card := bowl(t, repeat([]int{0, 0}, 9)...)
		require.NoError(t, card.RecordFirstRoll(10, 5))
		assert.ErrorIs(t, card.RecordSecondRoll(10, 6), ErrInvalidPinCount)

		card = bowl(t, repeat([]int{0, 0}, 9)...)
		require.NoError(t, card.RecordFirstRoll(10, 10))
		assert.True(t, card.NeedsSecondRoll(10))
		require.NoError(t, card.RecordSecondRoll(10, 10))
	})

	t.Run("third roll", func(t *testing.T) {
		card := bowl(t, repeat([]int{0, 0}, 9)...)
		require.NoError(t, card.RecordFirstRoll(10, 10))
		require.NoError(t, card.RecordSecondRoll(10, 3))
		assert.ErrorIs(t, card.RecordThirdRoll(5), ErrOutOfSequence)

		require.NoError(t, card.ResolveFrame(10))
		assert.True(t, card.NeedsThirdRoll())
		assert.False(t, card.IsComplete())
		assert.ErrorIs(t, card.RecordThirdRoll(8), ErrInvalidPinCount)
		require.NoError(t, card.RecordThirdRoll(7))
		assert.ErrorIs(t, card.RecordThirdRoll(7), ErrAlreadyRecorded)
		assert.Equal(t, 20, card.TotalScore())
	})

	t.Run("third roll not earned", func(t *testing.T) {
		frames := append(repeat([]int{0, 0}, 9), []int{4, 5})
		card := bowl(t, frames...)
		assert.ErrorIs(t, card.RecordThirdRoll(5), ErrGameComplete)
	})

	t.Run("complete game rejects more rolls", func(t *testing.T) {
		card := bowl(t, repeat([]int{1, 1}, 10)...)
		assert.ErrorIs(t, card.RecordFirstRoll(10, 1), ErrGameComplete)
		assert.ErrorIs(t, card.ResolveFrame(10), ErrGameComplete)
	})
}

func TestRack(t *testing.T) {
	t.Parallel()

	card := bowl(t, repeat([]int{0, 0}, 9)...)
	require.NoError(t, card.RecordFirstRoll(10, 10))

	rack, err := card.Rack(10, 1)
	require.NoError(t, err)
	assert.Equal(t, Rack{Standing: 10, Fresh: true}, rack)

	rack, err = card.Rack(10, 2)
	require.NoError(t, err)
	assert.Equal(t, Rack{Standing: 10, Fresh: true}, rack)

	_, err = card.Rack(10, 3)
	assert.ErrorIs(t, err, ErrOutOfSequence)

	require.NoError(t, card.RecordSecondRoll(10, 4))
	rack, err = card.Rack(10, 3)
	require.NoError(t, err)
	assert.Equal(t, Rack{Standing: 6}, rack)

	tests := []struct {
		name  string
		tenth []int
		want  Rack
	}{
		{"after double strike", []int{10, 10}, Rack{Standing: 10, Fresh: true}},
		{"after spare", []int{3, 7}, Rack{Standing: 10, Fresh: true}},
		{"after strike and gutter", []int{10, 0}, Rack{Standing: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := bowl(t, append(repeat([]int{0, 0}, 9), tt.tenth)...)
			rack, err := card.Rack(10, 3)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rack)
		})
	}

	card = NewScoreCard()
	require.NoError(t, card.RecordFirstRoll(1, 0))
	rack, err = card.Rack(1, 2)
	require.NoError(t, err)
	assert.Equal(t, Rack{Standing: 10}, rack)

	_, err = card.Rack(1, 3)
	assert.ErrorIs(t, err, ErrOutOfSequence)
	_, err = card.Rack(0, 1)
	assert.ErrorIs(t, err, ErrInvalidFrameIndex)
}

func TestRollString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "-", Roll{}.String())
	assert.Equal(t, "0", Pins(0).String())
	assert.False(t, Roll{}.Bowled())
	assert.True(t, Pins(0).Bowled())
	assert.True(t, Pins(10).IsStrike())
	assert.False(t, Roll{}.IsStrike())
}
