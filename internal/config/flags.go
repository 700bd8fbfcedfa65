package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags binds the configuration flags to a dedicated flag.FlagSet so the
// same set can be parsed directly or attached to a cobra command through
// pflag's AddGoFlagSet.
//
// Flags:
//
//	-c/-config json file path with configs
//	-d device file store DSN
//	-provider default provider (dropbox, googleDrive, device)
//	-kdf-iterations PBKDF2 iteration count
//	-remote-path vault path on the provider
//	-redirect-address loopback redirect listener in format [host]:[port]
//	-redirect-uri custom-scheme redirect URI (disables the listener)
//	-oauth-timeout authorization timeout (e.g., "2m")
//	-clipboard-clear clipboard auto-clear delay (e.g., "30s")
//	-request-timeout provider request timeout (e.g., "30s")
//	-keyring-service OS keyring service name
//	-dropbox-client-id Dropbox app key
//	-google-client-id Google OAuth client id
//	-google-client-secret Google OAuth client secret
//	-log-path log file path
//	-log-level log level
type Flags struct {
	fs *flag.FlagSet

	jsonConfigPath     string
	databaseDSN        string
	provider           string
	kdfIterations      int
	remotePath         string
	redirectAddress    NetAddress
	redirectURI        string
	oauthTimeout       time.Duration
	clipboardClear     time.Duration
	requestTimeout     time.Duration
	keyringService     string
	dropboxClientID    string
	googleClientID     string
	googleClientSecret string
	logPath            string
	logLevel           string

	parseErr error
}

// NewFlags creates a Flags value with every configuration flag registered on
// a fresh flag.FlagSet named name.
func NewFlags(name string) *Flags {
	f := &Flags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}

	f.fs.StringVar(&f.jsonConfigPath, "c", "", "JSON config file path")
	f.fs.StringVar(&f.jsonConfigPath, "config", "", "JSON config file path (alias)")
	f.fs.StringVar(&f.databaseDSN, "d", "", "Device file store DSN")
	f.fs.StringVar(&f.provider, "provider", "", "Default provider: dropbox, googleDrive or device")
	f.fs.IntVar(&f.kdfIterations, "kdf-iterations", 0, "PBKDF2 iteration count")
	f.fs.StringVar(&f.remotePath, "remote-path", "", "Vault path on the provider")
	f.fs.Var(&f.redirectAddress, "redirect-address", "Loopback redirect listener host:port")
	f.fs.StringVar(&f.redirectURI, "redirect-uri", "", "Custom-scheme redirect URI")
	f.fs.DurationVar(&f.oauthTimeout, "oauth-timeout", 0, "Authorization timeout (e.g., 2m)")
	f.fs.DurationVar(&f.clipboardClear, "clipboard-clear", 0, "Clipboard auto-clear delay (e.g., 30s)")
	f.fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Provider request timeout (e.g., 30s)")
	f.fs.StringVar(&f.keyringService, "keyring-service", "", "OS keyring service name")
	f.fs.StringVar(&f.dropboxClientID, "dropbox-client-id", "", "Dropbox app key")
	f.fs.StringVar(&f.googleClientID, "google-client-id", "", "Google OAuth client id")
	f.fs.StringVar(&f.googleClientSecret, "google-client-secret", "", "Google OAuth client secret")
	f.fs.StringVar(&f.logPath, "log-path", "", "Log file path")
	f.fs.StringVar(&f.logLevel, "log-level", "", "Log level")

	return f
}

// FlagSet returns the underlying flag set.
func (f *Flags) FlagSet() *flag.FlagSet {
	return f.fs
}

// Parse parses args into the bound variables. The error is also remembered
// and reported again when the config is built.
func (f *Flags) Parse(args []string) error {
	f.parseErr = f.fs.Parse(args)
	return f.parseErr
}

func (f *Flags) err() error {
	return f.parseErr
}

func (f *Flags) config() *StructuredConfig {
	cfg := &StructuredConfig{
		Vault: Vault{
			KDFIterations: f.kdfIterations,
			RemotePath:    f.remotePath,
		},
		Providers: Providers{
			Default: f.provider,
			Dropbox: OAuthApp{
				ClientID: f.dropboxClientID,
			},
			GoogleDrive: OAuthApp{
				ClientID:     f.googleClientID,
				ClientSecret: f.googleClientSecret,
			},
		},
		OAuth: OAuth{
			RedirectAddress: f.redirectAddress.String(),
			RedirectURI:     f.redirectURI,
			Timeout:         f.oauthTimeout,
		},
		Clipboard: Clipboard{ClearAfter: f.clipboardClear},
		Storage: Storage{
			DB:             DB{DSN: f.databaseDSN},
			KeyringService: f.keyringService,
		},
		Adapter: Adapter{RequestTimeout: f.requestTimeout},
		Log: Log{
			Path:  f.logPath,
			Level: f.logLevel,
		},
		JSONFilePath: f.jsonConfigPath,
	}

	return cfg
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// Port 0 is accepted and means "any free port". The host must be "localhost"
// or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 0 || port > 65535 {
		return errors.New("port number must be in range 0-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
