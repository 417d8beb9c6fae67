// Package clipboard provides a system clipboard implementation of
// keyterms.Clipboard backed by github.com/atotto/clipboard.
package clipboard

import (
	"context"

	sysclip "github.com/atotto/clipboard"
	"github.com/fwojciec/keyterms"
)

// Ensure Clipboard implements keyterms.Clipboard at compile time.
var _ keyterms.Clipboard = (*Clipboard)(nil)

// Clipboard writes to the system clipboard. On Linux it needs xclip, xsel
// or wl-clipboard on the PATH.
type Clipboard struct{}

// NewClipboard creates a new Clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// WriteText replaces the clipboard content with text.
func (c *Clipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sysclip.Unsupported {
		return keyterms.Errorf(keyterms.EEXPORT, "Failed to copy to clipboard: no clipboard utility found")
	}
	return sysclip.WriteAll(text)
}
