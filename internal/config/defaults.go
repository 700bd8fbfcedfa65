package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultKDFIterations   = 100_000
	defaultRemotePath      = "/vault.json"
	defaultProvider        = "device"
	defaultRedirectAddress = "127.0.0.1:0"
	defaultCallbackPath    = "/oauth/callback"
	defaultOAuthTimeout    = 120 * time.Second
	defaultClipboardClear  = 30 * time.Second
	defaultRequestTimeout  = 30 * time.Second
	defaultKeyringService  = "go-pass-sync"
	defaultLogLevel        = "info"
	appDirName             = "go-pass-sync"
	deviceDBFileName       = "device.db"
)

// defaultConfig is merged last, so it only fills fields no other source set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Vault: Vault{
			KDFIterations: defaultKDFIterations,
			RemotePath:    defaultRemotePath,
		},
		Providers: Providers{
			Default: defaultProvider,
			Dropbox: OAuthApp{
				Scopes:         []string{"account_info.read", "files.content.read", "files.content.write"},
				APIBaseURL:     "https://api.dropboxapi.com/2",
				ContentBaseURL: "https://content.dropboxapi.com/2",
				RevokeURL:      "https://api.dropboxapi.com/2/auth/token/revoke",
			},
			GoogleDrive: OAuthApp{
				Scopes:         []string{"https://www.googleapis.com/auth/drive.appdata", "openid", "email", "profile"},
				APIBaseURL:     "https://www.googleapis.com/drive/v3",
				ContentBaseURL: "https://www.googleapis.com/upload/drive/v3",
				RevokeURL:      "https://oauth2.googleapis.com/revoke",
			},
		},
		OAuth: OAuth{
			RedirectAddress: defaultRedirectAddress,
			CallbackPath:    defaultCallbackPath,
			Timeout:         defaultOAuthTimeout,
		},
		Clipboard: Clipboard{ClearAfter: defaultClipboardClear},
		Storage: Storage{
			DB:             DB{DSN: defaultDeviceDBPath()},
			KeyringService: defaultKeyringService,
		},
		Adapter: Adapter{RequestTimeout: defaultRequestTimeout},
		Log:     Log{Level: defaultLogLevel},
	}
}

func defaultDeviceDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return deviceDBFileName
	}
	return filepath.Join(dir, appDirName, deviceDBFileName)
}
