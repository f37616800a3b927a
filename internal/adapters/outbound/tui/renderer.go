package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/camelcase"
	"github.com/hexaview/hexaview/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 90:
		return success
	case score >= 70:
		return warning
	default:
		return danger
	}
}

// LayerLabel turns a layer identifier into a display label,
// e.g. "inboundAdapters" -> "Inbound Adapters".
func LayerLabel(l domain.Layer) string {
	words := camelcase.Split(string(l))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// RenderReport produces the terminal view of an analysis report: score box,
// per-layer module counts, and the violation list.
func RenderReport(report *domain.AnalysisReport) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("hexaview")
	subtitle := dimStyle.Render("Architecture Report")
	score := report.Metrics.ArchitectureScore
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(score)).
		Render(fmt.Sprintf("%d / 100", score))
	stats := dimStyle.Render(fmt.Sprintf("%d modules  ·  ", report.Metrics.TotalModules)) +
		violationTag(report.Metrics.TotalViolations)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "\n" + stats))
	b.WriteString("\n\n")

	// ── Layers ──
	b.WriteString("  " + titleStyle.Render("Layers") + "\n")
	for _, l := range domain.AllLayers {
		summary := report.Layers[l]
		if summary.Count == 0 && l == domain.LayerUnknown {
			continue
		}
		label := fmt.Sprintf("%-20s", LayerLabel(l))
		count := fmt.Sprintf("%3d", summary.Count)
		if summary.Count == 0 {
			b.WriteString("    " + faintStyle.Render(label+count) + "\n")
		} else {
			b.WriteString("    " + dimStyle.Render(label) + titleStyle.Render(count) + "\n")
		}
	}
	b.WriteString("\n")

	// ── Violations ──
	b.WriteString("  " + separatorLine + "\n\n")
	if len(report.Violations) == 0 {
		b.WriteString("  " + passStyle.Render("No layering violations found.") + "\n")
	} else {
		b.WriteString("  " + titleStyle.Render("Violations") + "  " + violationTag(len(report.Violations)) + "\n\n")
		for _, v := range report.Violations {
			renderViolation(&b, v)
		}
	}

	b.WriteString("\n")
	return b.String()
}

func violationTag(count int) string {
	if count == 0 {
		return passStyle.Render("0 violations")
	}
	return failStyle.Render(fmt.Sprintf("%d violations", count))
}

func renderViolation(b *strings.Builder, v domain.Violation) {
	tag := errorTagStyle.Render("✘ error")
	if v.Severity == domain.SeverityWarning {
		tag = warnTagStyle.Render("▲ warning")
	}
	b.WriteString(fmt.Sprintf("  %s  %s\n", tag, warnStyle.Render(v.Rule)))
	b.WriteString("    " + dimStyle.Render(v.From+" → "+v.To) + "\n")
}

// RenderHistory lists past report entries, newest last.
func RenderHistory(entries []domain.ReportEntry) string {
	if len(entries) == 0 {
		return "\n  " + dimStyle.Render("No history yet.") + "\n\n"
	}

	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render("History") + "\n\n")
	for _, e := range entries {
		commit := e.CommitHash
		if len(commit) > 8 {
			commit = commit[:8]
		}
		if commit == "" {
			commit = "-"
		}
		line := fmt.Sprintf("%s  %-8s  %3d modules  %3d violations  score %3d",
			e.Timestamp, commit, e.Modules, e.Violations, e.Score)
		b.WriteString("  " + dimStyle.Render(line) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}
