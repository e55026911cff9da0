/*
Package cli facilitates building command-line applications that talk to the Volvo On Call cloud
API. It defines a [Config] type that can be used to register common command-line flags (using the
Golang flag package) and environment variable equivalents.

The package uses [keyring]'s platform-agnostic interface for storing account passwords in an
OS-dependent credential store.

# Examples

	import flag

	config, err := NewConfig()
	if err != nil {
		panic(err)
	}
	config.RegisterCommandLineFlags() // Adds command-line flags for username, password, etc.
	flag.Parse()
	config.ReadFromEnvironment()      // Fills in missing fields using environment variables
	config.LoadCredentials()          // Prompt for the account password if needed

	acct, err := config.Connect(ctx)
	if err != nil {
		panic(err)
	}
*/
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/99designs/keyring"
	"github.com/caarlos0/env/v11"

	"github.com/volvooncall-cn/vehicle-command/internal/log"
	"github.com/volvooncall-cn/vehicle-command/pkg/account"
)

// Environment variable names used are used by [Config.ReadFromEnvironment] to set common parameters.
const (
	EnvPrefix       = "VOC_"
	EnvUsername     = EnvPrefix + "USERNAME"
	EnvPassword     = EnvPrefix + "PASSWORD"
	EnvAPIHost      = EnvPrefix + "API_HOST"
	EnvKeyringType  = EnvPrefix + "KEYRING_TYPE"
	EnvKeyringPass  = EnvPrefix + "KEYRING_PASSWORD"
	EnvKeyringPath  = EnvPrefix + "KEYRING_PATH"
	EnvKeyringDebug = EnvPrefix + "KEYRING_DEBUG"
	EnvVerbose      = EnvPrefix + "VERBOSE"
)

var (
	ErrNoUsername = errors.New("account username not provided")
	ErrNoPassword = errors.New("account password not provided")
)

// environment mirrors the VOC_* variables. Fields are only copied into a [Config] when the
// corresponding value has not been set on the command line.
type environment struct {
	Username        string `env:"USERNAME"`
	Password        string `env:"PASSWORD"`
	APIHost         string `env:"API_HOST"`
	KeyringType     string `env:"KEYRING_TYPE"`
	KeyringPassword string `env:"KEYRING_PASSWORD"`
	KeyringPath     string `env:"KEYRING_PATH"`
	KeyringDebug    bool   `env:"KEYRING_DEBUG"`
}

// Config fields determine how a client authenticates to the Volvo On Call backend.
type Config struct {
	Username    string // Account phone number
	Password    string // Account password. Loaded from the keyring or a prompt when empty.
	Host        string // API gateway host. Defaults to the production gateway.
	Backend     keyring.Config
	BackendType backendType
	Debug       bool // Enable keyring debug messages

	keyringPassword *string
	openKeyringFunc func(keyring.Config) (keyring.Keyring, error)
	readPassword    func(prompt string) (string, error)
}

func NewConfig() (*Config, error) {
	c := Config{
		Backend: keyring.Config{
			ServiceName:              keyringServiceName,
			KeychainTrustApplication: true,
			KeyCtlScope:              "user",
		},
		openKeyringFunc: keyring.Open,
		readPassword:    ReadPassword,
	}
	c.BackendType = backendType{&c}
	c.Backend.KeychainPasswordFunc = c.getKeyringPassword
	c.Backend.FilePasswordFunc = c.getKeyringPassword

	return &c, nil
}

// RegisterCommandLineFlags adds the Config flags to the default flag set.
func (c *Config) RegisterCommandLineFlags() {
	c.RegisterFlags(flag.CommandLine)
}

// RegisterFlags adds the Config flags to fs.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Username, "username", "", "Account `phone` number. Defaults to $"+EnvUsername+".")
	fs.StringVar(&c.Password, "password", "", "Account `password`. Defaults to $"+EnvPassword+", then the system keyring, then a prompt.")
	fs.StringVar(&c.Host, "api-host", "", "API gateway `host`. Defaults to $"+EnvAPIHost+".")

	var names []string
	for _, name := range keyring.AvailableBackends() {
		names = append(names, string(name))
	}
	sort.Strings(names)
	fs.Var(&c.BackendType, "keyring-type", "Keyring `type` ("+strings.Join(names, "|")+"). Defaults to $"+EnvKeyringType+".")
	fs.StringVar(&c.Backend.FileDir, "keyring-file-dir", "", "keyring `directory` for file-backed keyring types (default "+keyringDirectory+")")
	fs.BoolVar(&c.Debug, "keyring-debug", false, "Enable keyring debug logging")
}

// ReadFromEnvironment populates c using environment variables. Values that are already populated
// are not overwritten.
//
// Calling ReadFromEnvironment after flag.Parse() (or other initialization method) will prevent the
// environment from overriding explicit command-line parameters and avoid potentially misleading
// debug log messages.
func (c *Config) ReadFromEnvironment() error {
	var vars environment
	if err := env.ParseWithOptions(&vars, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("error reading environment: %w", err)
	}

	if c.Username == "" {
		c.Username = vars.Username
		log.Debug("Set username to '%s'", c.Username)
	}
	if c.Password == "" && vars.Password != "" {
		c.Password = vars.Password
		log.Debug("Set account password from $%s", EnvPassword)
	}
	if c.Host == "" {
		c.Host = vars.APIHost
		log.Debug("Set API host to '%s'", c.Host)
	}
	if c.BackendType.String() == string(keyring.InvalidBackend) {
		if err := c.BackendType.Set(vars.KeyringType); err == nil {
			log.Debug("Set keyring type to '%s'", c.BackendType)
		}
	}
	if c.keyringPassword == nil {
		password := vars.KeyringPassword
		c.keyringPassword = &password
		if len(password) > 0 {
			log.Debug("Set keyring File Password to %s", strings.Repeat("*", len("hunter2")))
		}
	}
	if c.Backend.FileDir == "" {
		c.Backend.FileDir = vars.KeyringPath
		log.Debug("Set keyring File Path to '%s'", c.Backend.FileDir)
	}
	if !c.Debug {
		c.Debug = vars.KeyringDebug
		log.Debug("Set keyring Debug Logging to '%v'", c.Debug)
	}
	return nil
}

// LoadCredentials resolves the account password, prompting for it if necessary. Call this method
// before [Config.Connect] to prevent interactive prompts from counting against timeouts.
//
// The password is taken from the command line or environment if present, then from the system
// keyring, and finally from an interactive terminal prompt.
func (c *Config) LoadCredentials() error {
	if c.Username == "" {
		return ErrNoUsername
	}
	if c.Password != "" {
		return nil
	}
	password, err := c.LoadPasswordFromKeyring()
	if err == nil && password != "" {
		log.Debug("Loaded account password from keyring")
		c.Password = password
		return nil
	}
	if err != nil {
		log.Debug("No password in keyring: %s", err)
	}
	password, err = c.readPassword(fmt.Sprintf("Password for %s", c.Username))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNoPassword, err)
	}
	if password == "" {
		return ErrNoPassword
	}
	c.Password = password
	return nil
}

// Account returns an unauthenticated [account.Account] for the configured API host.
func (c *Config) Account() (*account.Account, error) {
	return account.New(c.Host, "")
}

// Connect logs in to the configured account.
func (c *Config) Connect(ctx context.Context) (*account.Account, error) {
	if c.Username == "" {
		return nil, ErrNoUsername
	}
	if c.Password == "" {
		return nil, ErrNoPassword
	}
	acct, err := c.Account()
	if err != nil {
		return nil, err
	}
	log.Debug("Logging in as %s via %s (device %s)", c.Username, acct.Host, account.DeviceID(c.Username))
	if err := acct.Login(ctx, c.Username, c.Password); err != nil {
		return nil, err
	}
	return acct, nil
}
