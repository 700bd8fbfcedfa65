package adapter

import "github.com/atotto/clipboard"

type systemClipboard struct {
	unsupported func() bool
}

// NewSystemClipboard returns the OS clipboard. On Linux it needs xclip, xsel
// or wl-clipboard on PATH; without one every call fails with
// ErrClipboardUnsupported.
func NewSystemClipboard() Clipboard {
	return systemClipboard{unsupported: func() bool { return clipboard.Unsupported }}
}

func (c systemClipboard) ReadAll() (string, error) {
	if c.unsupported() {
		return "", ErrClipboardUnsupported
	}
	return clipboard.ReadAll()
}

func (c systemClipboard) WriteAll(text string) error {
	if c.unsupported() {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}
