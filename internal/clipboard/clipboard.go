// Package clipboard provides the clipboard sinks used by the copy action.
package clipboard

import (
	"context"

	atotto "github.com/atotto/clipboard"
)

// System writes to the host clipboard.
type System struct{}

// NewSystem creates a host clipboard sink
func NewSystem() *System {
	return &System{}
}

// WriteText implements domain.Clipboard
func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return atotto.WriteAll(text)
}

// Page is the sink of the HTTP bridge. The browser page owns the real
// clipboard; the bridge hands it the text in the copy response, so writing
// here only has to succeed while the request is alive.
type Page struct{}

// NewPage creates a page sink
func NewPage() *Page {
	return &Page{}
}

// WriteText implements domain.Clipboard
func (p *Page) WriteText(ctx context.Context, text string) error {
	return ctx.Err()
}
