package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/lox/bowling-cli/internal/game"
)

// Renderer formats score cards and messages for a terminal
type Renderer struct {
	lg     *lipgloss.Renderer
	styles *Styles
}

// NewRenderer creates a renderer for output written to w. Plain output drops
// all colour and text attributes.
func NewRenderer(w io.Writer, plain bool) *Renderer {
	lg := lipgloss.NewRenderer(w)
	if plain {
		lg.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		lg:     lg,
		styles: NewStyles(lg),
	}
}

// Styles returns the styles used by the renderer
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Scorecard renders the frame results, frame scores and running totals
func (r *Renderer) Scorecard(frames []game.Frame) string {
	headers := []string{"Frame"}
	results := []string{"Result"}
	scores := []string{"Frame Score"}
	totals := []string{"Running Total"}

	for _, f := range frames {
		headers = append(headers, strconv.Itoa(f.Number))
		results = append(results, FrameResult(f))

		// Frames not yet resolved have no score to show
		if f.Resolved {
			scores = append(scores, strconv.Itoa(f.Score))
			totals = append(totals, strconv.Itoa(f.RunningTotal))
		} else {
			scores = append(scores, "")
			totals = append(totals, "")
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.styles.Border).
		Headers(headers...).
		Rows(results, scores, totals).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return r.styles.Header
			case col == 0:
				return r.styles.Label
			default:
				return r.styles.Cell
			}
		})

	return t.String()
}

// FrameResult returns the scorecard marks for a frame: X for a strike,
// N/ for a spare, N,M for an open frame. Frame 10 chains its bonus balls,
// as in XX5, X3/ or 4/X.
func FrameResult(f game.Frame) string {
	var b strings.Builder

	fresh := true
	standing := game.MaxPins
	for _, roll := range []game.Roll{f.First, f.Second, f.Third} {
		if !roll.Bowled() {
			break
		}
		pins := roll.Value()

		switch {
		case fresh && pins == game.MaxPins:
			b.WriteString("X")
		case fresh:
			b.WriteString(strconv.Itoa(pins))
			fresh = false
			standing = game.MaxPins - pins
			continue
		case pins == standing:
			b.WriteString("/")
		default:
			b.WriteString("," + strconv.Itoa(pins))
		}

		// Rack cleared or frame closed; any further ball faces a full rack
		fresh = true
		standing = game.MaxPins
	}

	return b.String()
}

// Summary renders the end-of-game statistics
func (r *Renderer) Summary(s game.Summary) string {
	var b strings.Builder

	b.WriteString(r.styles.Banner.Render("== End Stats =="))
	b.WriteString("\n")

	stats := []struct {
		label string
		value string
	}{
		{"Final Score", strconv.Itoa(s.Total)},
		{"Open frames", strconv.Itoa(s.OpenFrames)},
		{"Strikes", strconv.Itoa(s.Strikes)},
		{"Average first ball", fmt.Sprintf("%.2f", s.AverageFirstRoll)},
	}
	for _, stat := range stats {
		b.WriteString("  ")
		b.WriteString(r.styles.Stat.Render(stat.label + ":"))
		b.WriteString(" ")
		b.WriteString(r.styles.Value.Render(stat.value))
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}
