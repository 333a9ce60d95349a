package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zoharmedia/zohar/pkg/domain"
)

// Shimmer animation for the ZOHAR logo.
type shimmerTickMsg time.Time

func shimmerTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return shimmerTickMsg(t)
	})
}

// renderShimmerLogo renders "Z O H A R" as a slow wave of amber light,
// from deep bronze (#3a2a10) to warm gold (#f5b942).
func renderShimmerLogo(frame int) string {
	const text = "ZOHAR"
	n := len(text)
	t := float64(frame)

	var out strings.Builder
	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)
		phase := t*0.1 - x*3.0
		phase += math.Sin(t*0.023) * 2.0

		b := math.Sin(phase)*0.5 + 0.5
		b = math.Pow(b, 1.3)
		b = b*0.75 + math.Sin(t*0.035)*0.12 + 0.18
		if b > 1.0 {
			b = 1.0
		} else if b < 0.05 {
			b = 0.05
		}

		r := clampByte(58 + b*(245-58))
		g := clampByte(42 + b*(185-42))
		bl := clampByte(16 + b*(66-16))
		color := fmt.Sprintf("#%02X%02X%02X", r, g, bl)

		out.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).Render(string(text[i])))
		if i < n-1 {
			out.WriteString("  ")
		}
	}
	return out.String()
}

func clampByte(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

var (
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	searchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f5b942")).
			Bold(true)

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e8a838"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4a844")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e06060"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f0944a"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60a0e0"))

	starStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#facc15"))

	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#606878"))

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#e8a838")).
				Bold(true)

	inputPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#343c4a"))

	selectedRowBg = lipgloss.NewStyle().Background(lipgloss.Color("#1e1e2a"))

	// Status badge colors, keyed by the local status name.
	statusColors = map[string]lipgloss.Color{
		string(domain.InquiryUnread):        lipgloss.Color("#f0944a"),
		string(domain.InquiryResponded):    lipgloss.Color("#60a0e0"),
		string(domain.InquiryResolved):     lipgloss.Color("#4ade80"),
		string(domain.TestimonialPending):  lipgloss.Color("#f0944a"),
		string(domain.TestimonialApproved): lipgloss.Color("#4ade80"),
		string(domain.TestimonialRejected): lipgloss.Color("#e06060"),
		string(domain.MemberActive):        lipgloss.Color("#4ade80"),
		string(domain.MemberInactive):      lipgloss.Color("#606878"),
		string(domain.PortfolioCompleted):  lipgloss.Color("#4ade80"),
		string(domain.PortfolioInProgress): lipgloss.Color("#60a0e0"),
		string(domain.PortfolioDraft):      lipgloss.Color("#8890a0"),
		string(domain.MediaImage):          lipgloss.Color("#c084e0"),
		string(domain.MediaVideo):          lipgloss.Color("#3ecce4"),
	}
)

// StatusStyle returns the badge style for a status or media type.
func StatusStyle(status string) lipgloss.Style {
	if c, ok := statusColors[status]; ok {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#8890a0"))
}

// badge renders a colored status label.
func badge(status string) string {
	return StatusStyle(status).Render(status)
}

// stars renders a rating out of five. Out-of-range ratings are clamped.
func stars(rating int) string {
	n := min(max(rating, domain.MinRating), domain.MaxRating)
	return starStyle.Render(strings.Repeat("★", n)) + metaStyle.Render(strings.Repeat("☆", domain.MaxRating-n))
}

// swatch renders a category color chip; invalid colors render dim.
func swatch(hex string) string {
	if len(strings.TrimPrefix(hex, "#")) != 6 {
		return metaStyle.Render("■")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■")
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}

func helpBar(entries ...[2]string) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = helpEntry(e[0], e[1])
	}
	return " " + strings.Join(parts, "  ")
}

// helpItem is a selectable link in the help overlay.
type helpItem struct {
	label string
	desc  string
	url   string
}

func helpItems(siteURL string) []helpItem {
	if siteURL == "" {
		return nil
	}
	return []helpItem{
		{"Website", siteURL, siteURL},
	}
}

// helpView renders the help overlay with a cursor over the links.
func helpView(items []helpItem, cursor int) string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f5b942")).
		Bold(true).
		Render("Z O H A R")

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	linkSelected := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f5b942"))
	linkDescStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)

	commands := []struct{ cmd, desc string }{
		{"zohar", "Open the admin dashboard"},
		{"zohar upload <files>", "Upload files to the media library"},
		{"zohar stats", "Print the dashboard counters"},
		{"zohar login <token>", "Save an API token"},
		{"zohar logout", "Remove the saved API token"},
		{"zohar version", "Show version"},
	}
	keys := []struct{ key, desc string }{
		{"1-7", "switch section"},
		{"/", "search"},
		{"n / e", "new / edit"},
		{"d", "delete"},
		{"x", "clear filters"},
		{"r", "reload"},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n  %s\n\n", title, descStyle.Render("Studio administration console"))

	fmt.Fprintf(&b, "  %s\n", sectionStyle.Render("Commands"))
	for _, c := range commands {
		fmt.Fprintf(&b, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-22s", c.cmd)), descStyle.Render(c.desc))
	}

	fmt.Fprintf(&b, "\n  %s\n", sectionStyle.Render("Keys"))
	for _, k := range keys {
		fmt.Fprintf(&b, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-22s", k.key)), descStyle.Render(k.desc))
	}

	if len(items) > 0 {
		fmt.Fprintf(&b, "\n  %s\n", sectionStyle.Render("Links (enter to open)"))
		for i, item := range items {
			label := cmdStyle.Render(fmt.Sprintf("%-22s", item.label))
			prefix := "    "
			if i == cursor {
				label = linkSelected.Render(fmt.Sprintf("%-22s", item.label))
				prefix = "  > "
			}
			fmt.Fprintf(&b, "%s%s  %s\n", prefix, label, linkDescStyle.Render(item.desc))
		}
	}
	return b.String()
}
