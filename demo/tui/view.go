package tui

import (
	"fmt"
	"strings"

	"balitai/hotspots"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render("🗞️  BalitAI Corruption Scanner Demo"))
	b.WriteString("\n\n")

	// Current state
	b.WriteString(m.getStateText())
	b.WriteString("\n\n")

	// Results
	if m.State == StateComplete && m.Response != nil {
		b.WriteString(BoxStyle.Render(m.formatScanResult()))
		b.WriteString("\n\n")
	}

	// Help text
	if m.State == StateComplete {
		b.WriteString(InfoStyle.Render("Press 's' to scan again | Press 'q' or Ctrl+C to exit"))
	} else {
		b.WriteString(InfoStyle.Render("Press 'q' or Ctrl+C to quit"))
	}

	return b.String()
}

// formatScanResult renders articles and a hotspot summary.
func (m Model) formatScanResult() string {
	resp := m.Response
	var b strings.Builder

	b.WriteString(HighlightStyle.Render(fmt.Sprintf("Scan %s: %d articles", resp.ScanID, len(resp.Articles))))
	b.WriteString("\n\n")

	for i, a := range resp.Articles {
		title := a.Title
		if len(title) > 70 {
			title = title[:67] + "..."
		}
		b.WriteString(fmt.Sprintf("%2d. %s\n", i+1, StatusStyle.Render(title)))
		line := "    " + a.Source
		if a.Geo != nil {
			line += " | 📍 " + a.Geo.LocationName
		}
		b.WriteString(InfoStyle.Render(line))
		b.WriteString("\n")
	}

	locations := hotspots.Locations(hotspots.FromArticles(resp.Articles))
	stats := hotspots.Stats(locations)
	b.WriteString("\n")
	b.WriteString(HighlightStyle.Render("Hotspots"))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(fmt.Sprintf("Locations: %d | Geolocated articles: %d", stats.TotalLocations, stats.TotalArticles)))
	b.WriteString("\n")
	for _, loc := range locations {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("  %s (%s): %d article(s)", loc.City, loc.Severity, len(loc.Articles))))
		b.WriteString("\n")
	}

	return b.String()
}
