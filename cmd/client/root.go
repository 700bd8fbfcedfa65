package main

import (
	"fmt"

	"github.com/MKhiriev/go-pass-sync/internal/client"
	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/spf13/cobra"
)

const appName = "go-pass-sync"

// skipAppAnnotation marks commands that run without opening the storages.
const skipAppAnnotation = "skipApp"

// cli carries the state shared by every command of one invocation.
type cli struct {
	flags  *config.Flags
	build  models.AppBuildInfo
	app    *client.App
	logger *logger.Logger
}

// newRootCmd builds the command tree. The returned cli must be closed after
// the command has run.
func newRootCmd(build models.AppBuildInfo) (*cobra.Command, *cli) {
	c := &cli{
		flags: config.NewFlags(appName),
		build: build,
	}

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Encrypted vault sync",
		Long:          "Seal a password vault with a master password and keep it in Dropbox, Google Drive or on this device.",
		Version:       build.BuildVersion(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipAppAnnotation] == "true" {
				return nil
			}
			return c.open(cmd)
		},
	}

	cmd.PersistentFlags().AddGoFlagSet(c.flags.FlagSet())

	cmd.AddCommand(
		newLoginCmd(c),
		newLogoutCmd(c),
		newStatusCmd(c),
		newPushCmd(c),
		newPullCmd(c),
		newCopyCmd(c),
		newVersionCmd(c),
	)

	return cmd, c
}

func (c *cli) open(cmd *cobra.Command) error {
	cfg, err := config.GetClientConfig(c.flags)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	c.logger = logger.NewClientLogger(appName, cfg.Log.Path, cfg.Log.Level)

	app, err := client.NewApp(cmd.Context(), cfg, cmd.ErrOrStderr(), c.logger)
	if err != nil {
		c.logger.Err(err).Msg("init client app error")
		return err
	}
	c.app = app

	if err = app.Start(cmd.Context()); err != nil {
		c.logger.Err(err).Msg("client start error")
		_ = c.close()
		return err
	}
	return nil
}

func (c *cli) close() error {
	if c.app == nil {
		return nil
	}
	err := c.app.Close()
	c.app = nil
	return err
}
