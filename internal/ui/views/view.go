package views

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tekstitv/internal/domain"
	"tekstitv/internal/parser"
)

// Phase selects which of the reader screens to draw.
type Phase int

const (
	PhaseOpening Phase = iota
	PhaseLoading
	PhaseComplete
	PhaseFailed
	PhaseFailedFirst
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width     int
	Height    int
	Phase     Phase
	Document  domain.Document
	PageLabel string
	Clock     time.Time
	Spinner   string
	Err       error
	HelpView  string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Width == 0 {
		return "Opening..."
	}

	content := &strings.Builder{}
	content.WriteString(r.renderHeader(state))
	content.WriteString("\n\n")

	switch state.Phase {
	case PhaseOpening:
		content.WriteString(r.centered(state.Width, "Opening..."))
	case PhaseLoading:
		content.WriteString(r.centered(state.Width, state.Spinner+" Loading..."))
	case PhaseFailed:
		content.WriteString(r.centered(state.Width, r.styles.Error.Render("Load failed...")))
		content.WriteString("\n")
		content.WriteString(r.centered(state.Width, r.styles.Dim.Render("e: return to previous page  r: try again")))
	case PhaseFailedFirst:
		content.WriteString(r.centered(state.Width, r.styles.Error.Render("Load failed...")))
		content.WriteString("\n")
		content.WriteString(r.centered(state.Width, r.styles.Dim.Render("r: try again")))
	case PhaseComplete:
		content.WriteString(r.renderDocument(state))
	}

	content.WriteString("\n")
	content.WriteString(r.styles.Help.Render(state.HelpView))
	return content.String()
}

// renderHeader draws "P100  <title>  02.01. 15:04:05" aligned with the
// page body.
func (r *Renderer) renderHeader(state ViewState) string {
	title := ""
	if state.Phase == PhaseComplete {
		title = state.Document.Title()
	}
	clock := state.Clock.Format("02.01. 15:04:05")

	label := r.styles.Header.Render(state.PageLabel)
	gap := state.Width - lipgloss.Width(label) - lipgloss.Width(clock) - lipgloss.Width(title)
	if gap < 2 {
		return label + " " + r.styles.Title.Render(title)
	}
	left := gap / 2
	return label + strings.Repeat(" ", left) + r.styles.Title.Render(title) +
		strings.Repeat(" ", gap-left) + r.styles.Dim.Render(clock)
}

func (r *Renderer) centered(width int, line string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}

func (r *Renderer) renderDocument(state ViewState) string {
	doc := state.Document
	switch doc.Kind {
	case domain.PageKindImage:
		if doc.Image != nil {
			return r.renderImagePage(state, doc.Image)
		}
	default:
		if doc.Text != nil {
			return r.renderTextPage(state, doc.Text)
		}
	}
	return ""
}

func (r *Renderer) renderItem(item domain.NavigationItem) string {
	if item.Kind == domain.ItemLink {
		return r.styles.Link.Render(item.Link.Label)
	}
	return r.styles.Text.Render(item.Text)
}

// bodyIndent aligns the body area: rows are centered around the fixed
// body column width.
func bodyIndent(width int) string {
	pad := (width - parser.MiddleTextMaxLen) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad)
}

func (r *Renderer) renderNavigationRow(width int, items []domain.NavigationItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, r.renderItem(item))
	}
	return r.centered(width, strings.Join(parts, " | "))
}

func (r *Renderer) renderTextPage(state ViewState, page *domain.TextDocument) string {
	content := &strings.Builder{}
	indent := bodyIndent(state.Width)

	content.WriteString(r.renderNavigationRow(state.Width, page.PageNavigation))
	content.WriteString("\n\n")

	for _, row := range page.MiddleRows {
		content.WriteString(indent)
		for _, item := range row {
			content.WriteString(r.renderItem(item))
		}
		content.WriteString("\n")
	}

	if len(page.SubPages) > 0 {
		content.WriteString(indent)
		for _, item := range page.SubPages {
			content.WriteString(r.renderItem(item))
		}
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(r.renderNavigationRow(state.Width, page.PageNavigation))
	content.WriteString("\n")

	links := make([]string, 0, len(page.BottomNavigation))
	for _, link := range page.BottomNavigation {
		links = append(links, r.styles.Link.Render(link.Label))
	}
	content.WriteString(r.centered(state.Width, strings.Join(links, " | ")))
	content.WriteString("\n")

	return content.String()
}

// renderImagePage draws the decoded PNG as half blocks with the arrow
// navigation row underneath. Hidden navigation slots render dimmed.
func (r *Renderer) renderImagePage(state ViewState, page *domain.ImageDocument) string {
	content := &strings.Builder{}

	// Header and nav rows plus the help line take a few rows of the
	// window; the rest belongs to the image.
	rows := state.Height - 7
	if rows < 4 {
		rows = 4
	}

	img, err := renderImage(page.Image, state.Width, rows)
	if err != nil {
		content.WriteString(r.centered(state.Width, r.styles.Error.Render("Image decode failed...")))
		content.WriteString("\n")
	} else {
		for _, line := range strings.Split(img, "\n") {
			content.WriteString(r.centered(state.Width, line))
			content.WriteString("\n")
		}
	}

	arrows := [4]string{"←", "↑", "↓", "→"}
	parts := make([]string, 0, len(page.BottomNavigation))
	for idx, link := range page.BottomNavigation {
		glyph := "•"
		if idx < len(arrows) {
			glyph = arrows[idx]
		}
		if link != nil {
			parts = append(parts, r.styles.Link.Render(glyph+" "+link.Label))
		} else {
			parts = append(parts, r.styles.Dim.Render(glyph))
		}
	}
	content.WriteString(r.centered(state.Width, strings.Join(parts, " | ")))
	content.WriteString("\n")

	return content.String()
}
