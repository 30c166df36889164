package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/jmnayar/PRT/internal/config"
	"github.com/jmnayar/PRT/internal/util"
)

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

func padCell(text string, width int) string {
	text = truncateLabel(text, width)
	gap := width - ansi.StringWidth(text)
	if gap > 0 {
		text += strings.Repeat(" ", gap)
	}
	return text
}

func boxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CurrentTheme.Border).
		Padding(0, 1)
}

// renderTable draws a fixed-width table with an optional focused row.
// cursor < 0 disables row highlighting. Rows beyond MaxVisibleRows scroll
// so the cursor stays visible.
func renderTable(headers []string, widths []int, rows [][]string, cursor int) string {
	var b strings.Builder

	headerCells := make([]string, len(headers))
	for i, h := range headers {
		headerCells[i] = CurrentTheme.TableHeader.Render(padCell(h, widths[i]))
	}
	b.WriteString(strings.Join(headerCells, "  ") + "\n")

	start := 0
	if cursor >= config.MaxVisibleRows {
		start = cursor - config.MaxVisibleRows + 1
	}
	end := start + config.MaxVisibleRows
	if end > len(rows) {
		end = len(rows)
	}

	for idx := start; idx < end; idx++ {
		row := rows[idx]
		style := CurrentTheme.Value
		marker := "  "
		if idx == cursor {
			style = CurrentTheme.RowFocused
			marker = CurrentTheme.Focused.Render("> ")
		}
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = style.Render(padCell(cell, widths[i]))
		}
		b.WriteString(marker + strings.Join(cells, "  ") + "\n")
	}
	if end < len(rows) {
		b.WriteString(CurrentTheme.Dim.Render(fmt.Sprintf("  … %d more", len(rows)-end)) + "\n")
	}
	return b.String()
}

// renderBarChart draws one labeled bar per bucket, scaled to the largest
// count.
func renderBarChart(labels []string, counts []int, width int) string {
	if len(labels) == 0 {
		return CurrentTheme.Dim.Render("  (no data)")
	}
	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	if maxCount == 0 {
		return CurrentTheme.Dim.Render("  (no data)")
	}

	labelWidth := 0
	for _, l := range labels {
		if w := ansi.StringWidth(l); w > labelWidth {
			labelWidth = w
		}
	}
	chartWidth := util.Clamp(width-labelWidth-8, 10, config.MaxChartWidth)

	var b strings.Builder
	for i, l := range labels {
		filled := int(float64(counts[i]) / float64(maxCount) * float64(chartWidth))
		if counts[i] > 0 && filled == 0 {
			filled = 1
		}
		bar := CurrentTheme.Bar.Render(strings.Repeat("#", filled)) +
			CurrentTheme.Dim.Render(strings.Repeat(".", chartWidth-filled))
		b.WriteString(fmt.Sprintf("%s %3d %s\n", padCell(l, labelWidth), counts[i], bar))
	}
	return b.String()
}

// renderMetric draws one dashboard metric as "label: value".
func renderMetric(label string, value int) string {
	return CurrentTheme.Label.Render(label+": ") + CurrentTheme.Focused.Render(fmt.Sprintf("%d", value))
}

// renderStatusLine renders a transient success or error message.
func renderStatusLine(msg string, isErr bool) string {
	if msg == "" {
		return ""
	}
	if isErr {
		return CurrentTheme.Error.Render("✗ " + msg)
	}
	return CurrentTheme.Success.Render("✓ " + msg)
}

// renderConfirm renders an inline yes/no prompt.
func renderConfirm(question string) string {
	return CurrentTheme.Error.Render(question) + CurrentTheme.Dim.Render("  [y] yes  [n] no")
}
