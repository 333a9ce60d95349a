package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/lipgloss"
)

var signedOutLines = [...]string{
	"The edit bay is dark. Somebody has the key.",
	"Unread inquiries do not answer themselves.",
	"The portfolio is waiting for its next cut.",
	"Nothing renders without a token.",
	"Testimonials are piling up in review.",
	"The media library is locked for the night.",
}

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5b942")).Bold(true)
	quoteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	cmdStyle   = lipgloss.NewStyle().Bold(true)
	descStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func printHelp(out io.Writer) {
	commands := []struct{ cmd, desc string }{
		{"zohar", "Open the admin dashboard (interactive TUI)"},
		{"zohar upload <files>", "Upload files; -parallel, -folder, -register, -tags"},
		{"zohar stats", "Print the dashboard counters"},
		{"zohar login <token>", "Save an API token to ~/.zohar/token"},
		{"zohar logout", "Remove the saved token"},
		{"zohar version", "Show version"},
		{"zohar help", "You are here"},
	}

	fmt.Fprintf(out, "\n  %s\n\n  %s\n\n  Commands:\n", titleStyle.Render("Z O H A R"), quoteStyle.Render("Studio administration console"))
	for _, c := range commands {
		fmt.Fprintf(out, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-22s", c.cmd)), descStyle.Render(c.desc))
	}
	fmt.Fprintf(out, "\n  %s\n\n", descStyle.Render("Configuration: ZOHAR_API_URL, ZOHAR_TOKEN, ZOHAR_ENV (see .env)"))
}

func printSignedOut(out io.Writer) {
	msg := signedOutLines[rand.Intn(len(signedOutLines))]
	hint := descStyle.Render("Set ZOHAR_TOKEN or run: zohar login <token>")
	fmt.Fprintf(out, "\n%s\n\n%s\n\n%s\n\n", titleStyle.Render("ZOHAR"), quoteStyle.Render(msg), hint)
}
