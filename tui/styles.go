package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Ahmed-Samir101/tedxbeixinqiao/review"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ef4444"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#9ca3af"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#374151"))

	selectedMarkStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#22c55e"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280"))

	badgeApplicationStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#111827")).
				Background(lipgloss.Color("#f3f4f6")).
				Padding(0, 1)

	badgeNominationStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f9fafb")).
				Background(lipgloss.Color("#4b5563")).
				Padding(0, 1)

	starStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#facc15"))

	emptyStarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4b5563"))

	statusLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fbbf24"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280"))

	detailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ef4444")).
			Padding(1, 2)
)

// renderStatus renders the colored dot plus label for any stored value,
// falling back to the gray "Unknown" dot for values this build doesn't know.
func renderStatus(status string) string {
	dot := lipgloss.NewStyle().
		Foreground(lipgloss.Color(review.StatusColor(status))).
		Render("●")
	return fmt.Sprintf("%s %s", dot, review.StatusLabel(status))
}

// renderStars renders k filled stars out of five.
func renderStars(k int) string {
	var out string
	for i := 1; i <= 5; i++ {
		if i <= k {
			out += starStyle.Render("★")
		} else {
			out += emptyStarStyle.Render("☆")
		}
	}
	return out
}

func renderTypeBadge(t review.EntryType) string {
	if t == review.TypeApplication {
		return badgeApplicationStyle.Render("Application")
	}
	return badgeNominationStyle.Render("Nomination")
}
