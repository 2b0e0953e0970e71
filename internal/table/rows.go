// Package table turns the catalog into rows with positional controls and
// draws them onto a rendering surface.
package table

import (
	"fmt"
	"strconv"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Action identifies what a row control does when clicked.
type Action string

const (
	ActionToggleRead Action = "toggle-read"
	ActionDelete     Action = "delete"
)

// ParseAction maps a control tag back to its Action.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionToggleRead, ActionDelete:
		return Action(s), nil
	}
	return "", fmt.Errorf("unknown table action %q", s)
}

// Control is a clickable element of a row. Position is the record's index
// at the time the row was built.
type Control struct {
	Action   Action
	Position int
	Label    string
	Class    string
	Icon     string
}

type Row struct {
	Position      int
	Title         string
	Author        string
	PageCount     float64
	Pages         string
	HasBeenRead   bool
	ReadControl   Control
	DeleteControl Control
}

// Rows builds one row per record, in catalog order.
func Rows(books []entities.BookRecord) []Row {
	rows := make([]Row, 0, len(books))
	for _, book := range books {
		rows = append(rows, rowFor(book))
	}
	return rows
}

func rowFor(book entities.BookRecord) Row {
	return Row{
		Position:      book.Position,
		Title:         book.Title,
		Author:        book.Author,
		PageCount:     book.PageCount,
		Pages:         strconv.FormatFloat(book.PageCount, 'f', -1, 64),
		HasBeenRead:   book.HasBeenRead,
		ReadControl:   readControl(book),
		DeleteControl: deleteControl(book.Position),
	}
}

func readControl(book entities.BookRecord) Control {
	if book.HasBeenRead {
		return Control{
			Action:   ActionToggleRead,
			Position: book.Position,
			Label:    "mark unread",
			Class:    "haveReadButton",
			Icon:     "✓",
		}
	}
	return Control{
		Action:   ActionToggleRead,
		Position: book.Position,
		Label:    "mark read",
		Class:    "haveNotReadButton",
		Icon:     "✗",
	}
}

func deleteControl(position int) Control {
	return Control{
		Action:   ActionDelete,
		Position: position,
		Label:    "delete",
		Class:    "deleteButton",
		Icon:     "🗑",
	}
}
