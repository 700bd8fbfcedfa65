package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-sync/internal/app"
	"github.com/MKhiriev/go-pass-sync/internal/service"
	"github.com/MKhiriev/go-pass-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, c := newRootCmd(models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit)))
	err := root.ExecuteContext(ctx)
	if closeErr := c.close(); closeErr != nil && c.logger != nil {
		c.logger.Err(closeErr).Msg("client close error")
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", describe(err))
		stop()
		os.Exit(1)
	}
}

// describe prefers the user-facing message of service errors and falls back
// to the error text for everything else, such as flag or file errors.
func describe(err error) string {
	if msg := service.UserMessage(err); msg != app.MsgInternalError {
		return msg
	}
	return err.Error()
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
