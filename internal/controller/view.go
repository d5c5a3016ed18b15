package controller

import (
	"github.com/televisionhq/television/internal/config"
	"github.com/televisionhq/television/internal/render"
)

// View builds a render.Context snapshot and hands it to the drawing layer.
// Producing the context is O(visible rows) (spec §4.6): only the rows
// within the current viewport are read out of the matcher's snapshot.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return render.View(m.context())
}

func (m *Model) context() render.Context {
	ctx := render.Context{
		Input:           string(m.input),
		Cursor:          m.cursor,
		Width:           m.width,
		Height:          m.height,
		Scale:           m.ui.Scale,
		Mode:            render.Mode(m.mode),
		HelpVisible:     m.helpVisible,
		InputBarTop:     m.ui.InputBarPosition == config.InputBarTop,
		ShowPreview:     m.ui.Features&config.FeaturePreviewPanel != 0,
		ShowStatusBar:   m.ui.Features&config.FeatureStatusBar != 0,
		PreviewPosition: string(m.ui.PreviewPanel.Position),
		PreviewSize:     m.ui.PreviewPanel.Size,
		StatusMessage:   m.statusMessage,
	}

	if m.mode == ModeRemoteControl {
		ctx.ChannelName = "Remote Control"
		ctx.Total = m.rcMatcher.Snapshot().Total
		ctx.Matched = m.rcMatcher.Snapshot().Matched
		ctx.Running = m.rcMatcher.Snapshot().Running

		offset, rows := m.visibleWindow(ctx.Matched)
		ctx.ViewOffset = offset
		for i := offset; i < offset+rows; i++ {
			if r, ok := m.rcMatcher.GetResult(i); ok {
				ctx.Rows = append(ctx.Rows, render.Row{Display: r.Item})
			}
		}
	} else if m.active != nil {
		ctx.ChannelName = m.sources[m.sourceIndex].Name
		ctx.Total = m.active.TotalCount()
		ctx.Matched = m.active.ResultCount()
		ctx.Running = m.active.Running()

		offset, rows := m.visibleWindow(ctx.Matched)
		ctx.ViewOffset = offset
		for i := offset; i < offset+rows; i++ {
			if e, ok := m.active.GetResult(i); ok {
				row := render.Row{Display: e.Display, Matches: e.DisplayMatches}
				if e.Value != nil {
					row.Value = *e.Value
				}
				_, row.Selected = m.selected[e.Key()]
				ctx.Rows = append(ctx.Rows, row)
			}
		}
	}

	if idx, ok := m.picker.Selected(); ok {
		ctx.Selected = idx - ctx.ViewOffset
	} else {
		ctx.Selected = -1
	}

	if m.currentArtifact != nil {
		ctx.Preview = render.PreviewView{
			Title:  m.currentArtifact.Title,
			Status: int(m.currentArtifact.Status),
			Scroll: m.previewScroll,
		}
		for _, l := range m.currentArtifact.Body {
			ctx.Preview.Lines = append(ctx.Preview.Lines, l.Text)
		}
	}

	return ctx
}

func (m *Model) visibleWindow(total int) (offset, rows int) {
	offset = m.picker.ViewOffset()
	rows = m.viewportHeight()
	if offset+rows > total {
		rows = total - offset
	}
	if rows < 0 {
		rows = 0
	}
	return offset, rows
}
