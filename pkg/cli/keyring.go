package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/99designs/keyring"
	"golang.org/x/term"
)

const (
	keyringServiceName     = "cn.digitalvolvo.voc"
	keyringPasswordService = "password"
	keyringDirectory       = "~/.voc_keys"
)

type backendType struct {
	config *Config
}

func (b backendType) String() string {
	if b.config == nil || len(b.config.Backend.AllowedBackends) == 0 {
		return string(keyring.InvalidBackend)
	}
	return string(b.config.Backend.AllowedBackends[0])
}

func (b backendType) Set(v string) error {
	value := keyring.BackendType(v)
	if b.config == nil {
		return fmt.Errorf("invalid backendType")
	}
	if v == "" {
		return nil
	}
	for _, name := range keyring.AvailableBackends() {
		if name == value {
			b.config.Backend.AllowedBackends = []keyring.BackendType{name}
			return nil
		}
	}
	return fmt.Errorf("unsupported credential storage")
}

// ReadPassword prompts for a secret on the controlling terminal without echoing it.
func ReadPassword(prompt string) (string, error) {
	var w io.Writer
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		fd = int(os.Stderr.Fd())
		if !term.IsTerminal(fd) {
			return "", fmt.Errorf("no terminal output available for password prompt")
		} else {
			w = os.Stderr
		}
	} else {
		w = os.Stdout
	}

	fmt.Fprintf(w, "%s: ", prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}
	fmt.Fprintln(w)
	return string(b), nil
}

// getKeyringPassword unlocks file-backed keyrings.
func (c *Config) getKeyringPassword(prompt string) (string, error) {
	if c.keyringPassword != nil && *c.keyringPassword != "" {
		return *c.keyringPassword, nil
	}
	password, err := c.readPassword(prompt)
	if err != nil {
		return "", err
	}
	c.keyringPassword = &password
	return password, nil
}

func (c *Config) openKeyring() (keyring.Keyring, error) {
	if c.Backend.FileDir == "" {
		c.Backend.FileDir = keyringDirectory
	}
	c.Backend.KeyringDebug = c.Debug
	return c.openKeyringFunc(c.Backend)
}

func (c *Config) keyringItemName() string {
	return keyringPasswordService + "." + c.Username
}

// LoadPasswordFromKeyring loads the password for c.Username from the system keyring.
func (c *Config) LoadPasswordFromKeyring() (string, error) {
	if c.Username == "" {
		return "", ErrNoUsername
	}
	kr, err := c.openKeyring()
	if err != nil {
		return "", err
	}

	item, err := kr.Get(c.keyringItemName())
	if err != nil {
		return "", fmt.Errorf("could not load password: %w", err)
	}
	return string(item.Data), nil
}

// SavePasswordToKeyring writes the account password for c.Username to the system keyring.
func (c *Config) SavePasswordToKeyring(password string) error {
	if c.Username == "" {
		return ErrNoUsername
	}
	kr, err := c.openKeyring()
	if err != nil {
		return err
	}

	if err := kr.Set(keyring.Item{
		Key:   c.keyringItemName(),
		Label: fmt.Sprintf("Volvo On Call password for %s", c.Username),
		Data:  []byte(password),
	}); err != nil {
		return fmt.Errorf("failed to enroll password in keyring: %s", err)
	}
	return nil
}

// DeletePasswordFromKeyring removes the password for c.Username from the system keyring.
func (c *Config) DeletePasswordFromKeyring() error {
	if c.Username == "" {
		return ErrNoUsername
	}
	kr, err := c.openKeyring()
	if err != nil {
		return err
	}
	return kr.Remove(c.keyringItemName())
}
