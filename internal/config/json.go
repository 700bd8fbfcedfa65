package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type jsonOAuthApp struct {
	ClientID       string   `json:"client_id"`
	ClientSecret   string   `json:"client_secret"`
	Scopes         []string `json:"scopes,omitempty"`
	APIBaseURL     string   `json:"api_url"`
	ContentBaseURL string   `json:"content_url"`
	AuthURL        string   `json:"auth_url"`
	TokenURL       string   `json:"token_url"`
	RevokeURL      string   `json:"revoke_url"`
}

func (a jsonOAuthApp) toOAuthApp() OAuthApp {
	return OAuthApp(a)
}

type StructuredJSONConfig struct {
	Vault struct {
		KDFIterations int    `json:"kdf_iterations"`
		RemotePath    string `json:"remote_path"`
	} `json:"vault,omitempty"`

	Providers struct {
		Default     string       `json:"default"`
		Dropbox     jsonOAuthApp `json:"dropbox,omitempty"`
		GoogleDrive jsonOAuthApp `json:"google_drive,omitempty"`
	} `json:"providers,omitempty"`

	OAuth struct {
		RedirectAddress string   `json:"redirect_address"`
		CallbackPath    string   `json:"callback_path"`
		RedirectURI     string   `json:"redirect_uri"`
		Timeout         Duration `json:"timeout"`
	} `json:"oauth,omitempty"`

	Clipboard struct {
		ClearAfter Duration `json:"clear_after"`
	} `json:"clipboard,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		KeyringService string `json:"keyring_service"`
	} `json:"storage,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Log struct {
		Path  string `json:"path"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Vault: Vault{
			KDFIterations: jsonCfg.Vault.KDFIterations,
			RemotePath:    jsonCfg.Vault.RemotePath,
		},
		Providers: Providers{
			Default:     jsonCfg.Providers.Default,
			Dropbox:     jsonCfg.Providers.Dropbox.toOAuthApp(),
			GoogleDrive: jsonCfg.Providers.GoogleDrive.toOAuthApp(),
		},
		OAuth: OAuth{
			RedirectAddress: jsonCfg.OAuth.RedirectAddress,
			CallbackPath:    jsonCfg.OAuth.CallbackPath,
			RedirectURI:     jsonCfg.OAuth.RedirectURI,
			Timeout:         time.Duration(jsonCfg.OAuth.Timeout),
		},
		Clipboard: Clipboard{
			ClearAfter: time.Duration(jsonCfg.Clipboard.ClearAfter),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			KeyringService: jsonCfg.Storage.KeyringService,
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Log: Log{
			Path:  jsonCfg.Log.Path,
			Level: jsonCfg.Log.Level,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
