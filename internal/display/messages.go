package display

import "strings"

// Welcome renders the title and instructions shown before the first frame
func (r *Renderer) Welcome() string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render(" Bowling Scorecard "))
	b.WriteString("\n\n")
	b.WriteString(r.Instructions())
	b.WriteString("\n\n")
	b.WriteString(r.styles.Banner.Render("Let's begin."))
	return b.String()
}

// Instructions renders the input help
func (r *Renderer) Instructions() string {
	lines := []string{
		"Your game is scored frame by frame, with a few statistics at the end.",
		"For each ball, enter the pins knocked down (0-10).",
		"Shortcuts: X for a strike, / for a spare.",
		"The scorecard and running total are shown after every frame.",
		"Type help to see this again, or quit to stop.",
	}
	return r.styles.Info.Render(strings.Join(lines, "\n"))
}

// Notice renders a message asking the player to try again
func (r *Renderer) Notice(msg string) string {
	return r.styles.Notice.Render(msg)
}

// Farewell renders the closing banner
func (r *Renderer) Farewell() string {
	return r.styles.Banner.Render("*** END OF GAME ***")
}
