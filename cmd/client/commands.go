package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/spf13/cobra"
)

func newLoginCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:       "login [dropbox|googleDrive|device]",
		Short:     "Sign in to a provider",
		Long:      "Sign in to a provider. Without an argument the configured default provider is used.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(models.ProviderDropbox), string(models.ProviderGoogleDrive), string(models.ProviderDevice)},
		RunE: func(cmd *cobra.Command, args []string) error {
			provider := c.app.DefaultProvider()
			if len(args) == 1 {
				p, err := models.ParseProviderID(args[0])
				if err != nil {
					return err
				}
				provider = p
			}

			readRedirect := func() (string, error) {
				return readLine(cmd, "Paste the URL you were redirected to: ")
			}
			if err := c.app.Login(cmd.Context(), provider, readRedirect); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Signed in to %s.\n", provider)
			return nil
		},
	}
}

func newLogoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func newStatusCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			state := c.app.Status()
			if !state.HasSession {
				fmt.Fprintln(out, "Not signed in.")
				return nil
			}

			fmt.Fprintf(out, "Provider: %s\n", state.Provider)
			info, err := c.app.Account(cmd.Context())
			if err != nil {
				c.logger.Warn().Err(err).Msg("account lookup failed")
				return err
			}
			fmt.Fprintf(out, "Account:  %s\n", info.Username)
			return nil
		},
	}
}

func newPushCmd(c *cli) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Seal a vault document and upload it",
		Long:  "Read a vault document in JSON, seal it with the master password and upload it to the active provider.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read vault document: %w", err)
			}

			var payload models.VaultPayload
			if err = json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("decode vault document: %w", err)
			}
			if payload.LastUpdated.IsZero() {
				payload.LastUpdated = time.Now().UTC()
			}

			password, err := readPassword(cmd, "Master password: ")
			if err != nil {
				return err
			}
			if err = c.app.Push(cmd.Context(), payload, password); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Vault uploaded.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "vault document to upload (JSON)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newPullCmd(c *cli) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Download and open the vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := readPassword(cmd, "Master password: ")
			if err != nil {
				return err
			}

			payload, err := c.app.Pull(cmd.Context(), password)
			if err != nil {
				return err
			}

			doc, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				return fmt.Errorf("encode vault document: %w", err)
			}
			doc = append(doc, '\n')

			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(doc)
				return err
			}
			return os.WriteFile(out, doc, 0o600)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "-", "where to write the vault document, - for stdout")

	return cmd
}

func newCopyCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "copy",
		Short: "Copy a secret to the clipboard and clear it after a delay",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := readPassword(cmd, "Secret: ")
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), "Copied. Keep this running until the clipboard is cleared, or press Ctrl+C to clear it now.")
			return c.app.Copy(cmd.Context(), secret)
		},
	}
}

func newVersionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipAppAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", c.build.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", c.build.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", c.build.BuildCommit())
			return nil
		},
	}
}
