package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/televisionhq/television/internal/entry"
)

// View renders ctx into the full-screen string bubbletea displays.
func View(ctx Context) string {
	if ctx.Width <= 0 || ctx.Height <= 0 {
		return ""
	}

	if scale := ctx.Scale; scale > 0 && scale < 100 {
		fullWidth, fullHeight := ctx.Width, ctx.Height
		scaled := ctx
		scaled.Scale = 0
		scaled.Width = fullWidth * scale / 100
		scaled.Height = fullHeight * scale / 100
		return lipgloss.Place(fullWidth, fullHeight, lipgloss.Center, lipgloss.Center, View(scaled))
	}

	inputBar := renderInputBar(ctx)
	body := renderBody(ctx)

	var b strings.Builder
	if ctx.InputBarTop {
		b.WriteString(inputBar)
		b.WriteString("\n")
		b.WriteString(body)
	} else {
		b.WriteString(body)
		b.WriteString("\n")
		b.WriteString(inputBar)
	}

	if ctx.ShowStatusBar {
		b.WriteString("\n")
		b.WriteString(renderStatusBar(ctx))
	}

	if ctx.HelpVisible {
		b.WriteString("\n")
		b.WriteString(renderHelp())
	}

	return b.String()
}

func renderInputBar(ctx Context) string {
	prefix := "> "
	if ctx.Mode == ModeRemoteControl {
		prefix = "channels> "
	}
	text := prefix + ctx.Input
	return inputBarStyle.Render(text)
}

func renderBody(ctx Context) string {
	if ctx.Mode == ModeRemoteControl || !ctx.ShowPreview {
		return resultsBoxStyle.Width(ctx.Width - 2).Render(renderResults(ctx))
	}

	size := ctx.PreviewSize
	if size <= 0 || size > 100 {
		size = 50
	}

	switch ctx.PreviewPosition {
	case "left":
		previewWidth := ctx.Width * size / 100
		resultsWidth := ctx.Width - previewWidth
		preview := previewBoxStyle.Width(previewWidth - 2).Render(renderPreview(ctx.Preview))
		results := resultsBoxStyle.Width(resultsWidth - 2).Render(renderResults(ctx))
		return lipgloss.JoinHorizontal(lipgloss.Top, preview, results)

	case "top":
		previewHeight := ctx.Height * size / 100
		preview := previewBoxStyle.Width(ctx.Width - 2).Height(previewHeight).Render(renderPreview(ctx.Preview))
		results := resultsBoxStyle.Width(ctx.Width - 2).Render(renderResults(ctx))
		return lipgloss.JoinVertical(lipgloss.Left, preview, results)

	case "bottom":
		previewHeight := ctx.Height * size / 100
		results := resultsBoxStyle.Width(ctx.Width - 2).Render(renderResults(ctx))
		preview := previewBoxStyle.Width(ctx.Width - 2).Height(previewHeight).Render(renderPreview(ctx.Preview))
		return lipgloss.JoinVertical(lipgloss.Left, results, preview)

	default: // "right"
		previewWidth := ctx.Width * size / 100
		resultsWidth := ctx.Width - previewWidth
		results := resultsBoxStyle.Width(resultsWidth - 2).Render(renderResults(ctx))
		preview := previewBoxStyle.Width(previewWidth - 2).Render(renderPreview(ctx.Preview))
		return lipgloss.JoinHorizontal(lipgloss.Top, results, preview)
	}
}

func renderResults(ctx Context) string {
	var lines []string
	for i, row := range ctx.Rows {
		lines = append(lines, renderRow(row, i == ctx.Selected))
	}
	if len(lines) == 0 {
		return statusBarStyle.Render("no results")
	}
	return strings.Join(lines, "\n")
}

func renderRow(row Row, selected bool) string {
	display := highlightMatches(row.Display, row.Matches)

	mark := "  "
	if row.Selected {
		mark = multiSelectedMarkStyle.Render("✓ ")
	}

	line := mark + display
	if selected {
		return selectedRowStyle.Render(line)
	}
	return rowStyle.Render(line)
}

func highlightMatches(s string, ranges []entry.Range) string {
	if len(ranges) == 0 {
		return s
	}
	runes := []rune(s)
	var b strings.Builder
	matched := make([]bool, len(runes))
	for _, r := range ranges {
		for i := r.Start; i < r.End && int(i) < len(runes); i++ {
			matched[i] = true
		}
	}
	i := 0
	for i < len(runes) {
		if !matched[i] {
			b.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		for j < len(runes) && matched[j] {
			j++
		}
		b.WriteString(matchStyle.Render(string(runes[i:j])))
		i = j
	}
	return b.String()
}

func renderPreview(p PreviewView) string {
	if len(p.Lines) == 0 {
		return statusBarStyle.Render("no preview")
	}

	title := channelNameStyle.Render(p.Title)
	start := p.Scroll
	if start > len(p.Lines) {
		start = len(p.Lines)
	}
	body := strings.Join(p.Lines[start:], "\n")
	return title + "\n" + body
}

func renderStatusBar(ctx Context) string {
	status := fmt.Sprintf("%s  %d/%d", ctx.ChannelName, ctx.Matched, ctx.Total)
	if ctx.Running {
		status += "  loading..."
	}
	if ctx.StatusMessage != "" {
		status += "  [" + ctx.StatusMessage + "]"
	}
	return statusBarStyle.Render(status)
}

func renderHelp() string {
	return statusBarStyle.Render("tab: select  enter: confirm  ctrl+r: channels  ctrl+c: quit")
}
