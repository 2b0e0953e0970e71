package table

import (
	"io"
	"strconv"
	"strings"

	btable "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	textAccent = lipgloss.Color("#E5A00D")
	textDim    = lipgloss.Color("#6B7280")
	textWhite  = lipgloss.Color("#F9FAFB")

	headerStyle   = lipgloss.NewStyle().Foreground(textAccent).Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Foreground(textWhite).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Foreground(textWhite).Background(textAccent)
	emptyStyle    = lipgloss.NewStyle().Foreground(textDim).Italic(true)
)

// Column width bounds; longer titles and authors are truncated.
const (
	maxTitleWidth  = 32
	maxAuthorWidth = 24
)

// TextSurface draws the table for a terminal. Cursor marks the selected row;
// a negative cursor selects nothing.
type TextSurface struct {
	Cursor int
}

func NewTextSurface() *TextSurface {
	return &TextSurface{Cursor: -1}
}

func (s *TextSurface) Draw(w io.Writer, rows []Row) error {
	columns := textColumns(rows)

	tableRows := make([]btable.Row, len(rows))
	for i, row := range rows {
		marker := "[ ]"
		if row.HasBeenRead {
			marker = "[x]"
		}
		tableRows[i] = btable.Row{
			strconv.Itoa(row.Position + 1),
			row.Title,
			row.Author,
			row.Pages,
			marker,
		}
	}

	width := 0
	for _, column := range columns {
		width += column.Width + cellStyle.GetHorizontalFrameSize()
	}

	t := btable.New(
		btable.WithColumns(columns),
		btable.WithRows(tableRows),
		btable.WithHeight(max(len(rows), 1)+1),
		btable.WithWidth(width),
	)

	styles := btable.Styles{
		Header:   headerStyle,
		Cell:     cellStyle,
		Selected: selectedStyle,
	}
	if s.Cursor < 0 || s.Cursor >= len(rows) {
		styles.Selected = lipgloss.NewStyle()
	}
	t.SetStyles(styles)
	t.SetCursor(s.Cursor)

	var b strings.Builder
	if len(rows) == 0 {
		// The viewport pads itself with a blank line when there are no rows.
		b.WriteString(strings.TrimRight(t.View(), " \n"))
		b.WriteString("\n")
		b.WriteString(emptyStyle.Render("  no books yet"))
	} else {
		b.WriteString(t.View())
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// textColumns sizes each column to its widest value within the bounds.
func textColumns(rows []Row) []btable.Column {
	titleWidth, authorWidth, pagesWidth := len("Title"), len("Author"), len("Pages")
	for _, row := range rows {
		titleWidth = max(titleWidth, lipgloss.Width(row.Title))
		authorWidth = max(authorWidth, lipgloss.Width(row.Author))
		pagesWidth = max(pagesWidth, lipgloss.Width(row.Pages))
	}
	return []btable.Column{
		{Title: "#", Width: 3},
		{Title: "Title", Width: min(titleWidth, maxTitleWidth)},
		{Title: "Author", Width: min(authorWidth, maxAuthorWidth)},
		{Title: "Pages", Width: min(pagesWidth, 8)},
		{Title: "Read", Width: 4},
	}
}
