package http

import (
	"bytes"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/form"
	"github.com/mrlokans/bookshelf/internal/security"
	"github.com/mrlokans/bookshelf/internal/table"
)

// FormResetEvent is sent in HX-Trigger after a successful submission; the
// page clears the form when it sees it.
const FormResetEvent = "book-form-reset"

type UIController struct {
	renderer *table.Renderer
	forms    *form.Controller
	logger   *slog.Logger
}

func NewUIController(renderer *table.Renderer, forms *form.Controller, logger *slog.Logger) *UIController {
	return &UIController{
		renderer: renderer,
		forms:    forms,
		logger:   logger,
	}
}

// formView holds what the form fields show when the page is rendered.
type formView struct {
	Title    string
	Author   string
	Pages    string
	HaveRead bool
}

func formViewFrom(values url.Values) formView {
	return formView{
		Title:    values.Get(form.FieldTitle),
		Author:   values.Get(form.FieldAuthor),
		Pages:    values.Get(form.FieldPages),
		HaveRead: values.Get(form.FieldHaveRead) == "true",
	}
}

// BooksPage renders the form and the full table
// GET /
func (ui *UIController) BooksPage(c *gin.Context) {
	ui.renderPage(c, formView{})
}

// TableBody redraws the table body only
// GET /books
func (ui *UIController) TableBody(c *gin.Context) {
	var buf bytes.Buffer
	if err := ui.renderer.Redraw(&buf); err != nil {
		respondInternalError(c, ui.logger, err, "redraw table")
		return
	}
	c.Data(http.StatusOK, contentTypeHTML, buf.Bytes())
}

// SubmitBook handles the book form. Rejected submissions are silent: HTMX
// gets 204 and keeps the form as typed, plain posts get the page back with
// the entered values.
// POST /books
func (ui *UIController) SubmitBook(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		respondBadRequest(c, "invalid form")
		return
	}

	values := &form.Values{
		Values: c.Request.PostForm,
		OnReset: func() {
			c.Header("HX-Trigger", FormResetEvent)
		},
	}

	var buf bytes.Buffer
	record, err := ui.forms.Submit(&buf, values)
	var validationErr *form.ValidationError
	switch {
	case errors.As(err, &validationErr):
		ui.logger.Debug("Book submission rejected", "field", validationErr.Field, "reason", validationErr.Reason)
		if isHTMXRequest(c) {
			c.Status(http.StatusNoContent)
			return
		}
		ui.renderPage(c, formViewFrom(c.Request.PostForm))
		return
	case err != nil:
		respondInternalError(c, ui.logger, err, "submit book")
		return
	}

	ui.logger.Info("Book added", "title", record.Title, "position", record.Position)
	respondRedrawn(c, buf.Bytes())
}

// ToggleRead flips the read flag of the book at :position
// POST /books/:position/toggle-read
func (ui *UIController) ToggleRead(c *gin.Context) {
	ui.click(c, table.ActionToggleRead)
}

// DeleteBook removes the book at :position
// POST /books/:position/delete
// DELETE /books/:position
func (ui *UIController) DeleteBook(c *gin.Context) {
	ui.click(c, table.ActionDelete)
}

func (ui *UIController) click(c *gin.Context, action table.Action) {
	position, ok := parsePositionParam(c, "position")
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := ui.renderer.Click(&buf, action, position); err != nil {
		if errors.Is(err, catalog.ErrInvalidIndex) {
			respondNotFound(c, "book")
			return
		}
		respondInternalError(c, ui.logger, err, string(action))
		return
	}

	ui.logger.Info("Table control clicked", "action", action, "position", position)
	respondRedrawn(c, buf.Bytes())
}

func (ui *UIController) renderPage(c *gin.Context, fv formView) {
	var buf bytes.Buffer
	if err := ui.renderer.Redraw(&buf); err != nil {
		respondInternalError(c, ui.logger, err, "redraw table")
		return
	}

	c.HTML(http.StatusOK, "books", gin.H{
		"TableBody": template.HTML(buf.String()),
		"Form":      fv,
		"CSRFToken": security.GetCSRFToken(c),
	})
}
