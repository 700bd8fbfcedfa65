package adapter

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
)

type systemBrowser struct {
	fallback io.Writer
	logger   *logger.Logger
}

// NewSystemBrowser opens URLs in the user's default browser. When no opener
// can be started the URL is printed to fallback so the user can open it by
// hand.
func NewSystemBrowser(fallback io.Writer, log *logger.Logger) Browser {
	return &systemBrowser{fallback: fallback, logger: log.WithComponent("browser")}
}

func (b *systemBrowser) Open(_ context.Context, url string) (Popup, error) {
	name, args := openCommand(url)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		b.logger.Warn().Err(err).Str("func", "systemBrowser.Open").Msg("failed to open browser, printing URL")
		if _, werr := fmt.Fprintf(b.fallback, "Open this URL in your browser:\n%s\n", url); werr != nil {
			return nil, fmt.Errorf("open browser: %w", err)
		}
		return nopPopup{}, nil
	}

	// The opener exits as soon as it has handed the URL to the browser.
	go func() { _ = cmd.Wait() }()

	return nopPopup{}, nil
}

func openCommand(url string) (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

// nopPopup stands for a tab in the user's own browser, which the client
// cannot close.
type nopPopup struct{}

func (nopPopup) Close() error { return nil }
