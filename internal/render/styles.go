package render

import "github.com/charmbracelet/lipgloss"

// Colors, named after the teacher's VSCode-inspired sober palette
// (_examples/eviltik-docker-tui/src/styles.go), repurposed for a
// search-results-plus-preview layout instead of a container dashboard.
const (
	bgDefault  = "#1e1e1e"
	bgSelected = "#264f78"
	bgBorder   = "#3c3c3c"

	fgDefault = "#cccccc"
	fgBright  = "#ffffff"
	fgDim     = "#808080"

	colorMatch   = "#dcdcaa"
	colorAccent  = "#4fc1ff"
	colorError   = "#f48771"
	colorSuccess = "#89d185"
)

var (
	inputBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(fgBright)).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(fgDim))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(fgDefault))

	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(bgSelected)).
				Foreground(lipgloss.Color(fgBright)).
				Bold(true)

	multiSelectedMarkStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(colorSuccess)).
				Bold(true)

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMatch)).
			Bold(true)

	previewBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(bgBorder)).
				Padding(0, 1)

	resultsBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(bgBorder)).
			Padding(0, 1)

	channelNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(colorAccent)).
				Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorError)).
			Bold(true)
)
