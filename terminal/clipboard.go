package terminal

import (
	"github.com/atotto/clipboard"
)

// Clipboard is the system clipboard as seen by the color dialog
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard uses the platform clipboard tools
type SystemClipboard struct{}

// ReadAll returns the clipboard text
func (SystemClipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

// WriteAll replaces the clipboard text
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether a clipboard tool was found
func (SystemClipboard) Available() bool {
	return !clipboard.Unsupported
}
