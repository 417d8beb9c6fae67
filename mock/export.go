package mock

import (
	"context"

	"github.com/fwojciec/keyterms"
)

var (
	_ keyterms.Clipboard = (*Clipboard)(nil)
	_ keyterms.FileSaver = (*FileSaver)(nil)
)

// Clipboard is a mock implementation of keyterms.Clipboard.
type Clipboard struct {
	WriteTextFn func(ctx context.Context, text string) error
}

func (c *Clipboard) WriteText(ctx context.Context, text string) error {
	return c.WriteTextFn(ctx, text)
}

// FileSaver is a mock implementation of keyterms.FileSaver.
type FileSaver struct {
	SaveFileFn func(ctx context.Context, name, content string) (string, error)
}

func (f *FileSaver) SaveFile(ctx context.Context, name, content string) (string, error) {
	return f.SaveFileFn(ctx, name, content)
}
