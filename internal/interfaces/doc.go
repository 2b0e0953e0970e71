// Package interfaces documents the extension points of the bookshelf.
//
// # Interface Categories
//
// ## Catalog
//
//   - catalog.Observer: notified after every successful mutation
//     (internal/catalog/catalog.go). The activity log implements it.
//
// ## Drawing
//
//   - table.Surface: draws a complete table body from rows
//     (internal/table/renderer.go). HTMLSurface serves the web page,
//     TextSurface the terminal.
//
// ## Input
//
//   - form.Form: the four named fields of a submission plus Reset
//     (internal/form/form.go). form.Values adapts posted url.Values; the
//     terminal UI adapts its text inputs.
//
// ## HTTP
//
//   - BookLister, ActivityReader, Pinger, Counter (internal/http): the
//     read-only views the JSON endpoints and the health check need.
//
// # Adding a New Surface
//
// To draw the table somewhere else:
//
//  1. Implement table.Surface
//
//     type MarkdownSurface struct{}
//
//     func (s *MarkdownSurface) Draw(w io.Writer, rows []table.Row) error {
//         // one line per row, controls as links
//     }
//
//  2. Build a table.Renderer around it and feed control events through
//     Renderer.Click and submissions through form.Controller.Submit.
//
// # Compile-Time Interface Checks
//
// Implementations carry compile-time checks so missing methods fail the build:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go.
package interfaces
