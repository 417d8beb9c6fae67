package keyterms

import (
	"context"
	"strings"
)

// DefaultExportFilename is the name of the downloaded keyword list.
const DefaultExportFilename = "extracted_keywords.txt"

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// FileSaver offers content to the user as a file named name.
// Implementations release any temporary resource whether or not the save
// succeeds, and return where the file ended up.
type FileSaver interface {
	SaveFile(ctx context.Context, name string, content string) (path string, err error)
}

// Exporter copies or downloads a result set. Both operations are no-ops on
// an empty set, and failures are returned as EEXPORT errors.
type Exporter struct {
	Clipboard Clipboard
	Files     FileSaver

	// Filename defaults to DefaultExportFilename.
	Filename string
}

// Download saves terms as a text file, one "<term> (Score: <score>)" per
// line, and returns the saved path. Returns "" if terms is empty.
func (e *Exporter) Download(ctx context.Context, terms []RankedTerm) (string, error) {
	if len(terms) == 0 {
		return "", nil
	}

	name := e.Filename
	if strings.TrimSpace(name) == "" {
		name = DefaultExportFilename
	}

	path, err := e.Files.SaveFile(ctx, name, FormatDownload(terms))
	if err != nil {
		return "", exportError("Failed to download keywords", err)
	}
	return path, nil
}

// Copy writes the comma-separated terms to the clipboard.
func (e *Exporter) Copy(ctx context.Context, terms []RankedTerm) error {
	if len(terms) == 0 {
		return nil
	}

	if err := e.Clipboard.WriteText(ctx, FormatClipboard(terms)); err != nil {
		return exportError("Failed to copy to clipboard", err)
	}
	return nil
}

func exportError(msg string, err error) error {
	if ErrorCode(err) == EEXPORT {
		return err
	}
	return &Error{Code: EEXPORT, Message: msg + ": " + err.Error()}
}
