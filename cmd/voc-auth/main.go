// Utility for storing account passwords in the system keyring

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/volvooncall-cn/vehicle-command/pkg/cli"
)

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "usage: %s -username phone [-verify] [-delete] [file]\n", filepath.Base(os.Args[0]))
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Reads the account password from file, stdin or a terminal prompt and saves it in the")
	fmt.Fprintf(w, "system keyring, where voc-control finds it. The username defaults to $%s.\n", cli.EnvUsername)
	fmt.Fprintln(w, "")
	flag.PrintDefaults()
}

func readPassword(config *cli.Config) (string, error) {
	if config.Password != "" {
		return config.Password, nil
	}
	var data []byte
	var err error
	switch flag.NArg() {
	case 0:
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return cli.ReadPassword(fmt.Sprintf("Password for %s", config.Username))
		}
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("error reading password from stdin: %s", err)
		}
	case 1:
		data, err = os.ReadFile(flag.Arg(0))
		if err != nil {
			return "", fmt.Errorf("error reading password from file: %s", err)
		}
	default:
		return "", fmt.Errorf("too many command-line arguments")
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func main() {
	returnCode := 1
	defer func() {
		os.Exit(returnCode)
	}()

	config, err := cli.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load credential configuration: %s\n", err)
		return
	}

	var verify, remove bool
	var timeout time.Duration
	config.RegisterCommandLineFlags()
	flag.BoolVar(&verify, "verify", false, "Log in with the password before saving it")
	flag.BoolVar(&remove, "delete", false, "Remove the saved password instead of saving one")
	flag.DurationVar(&timeout, "connect-timeout", 20*time.Second, "Set timeout for -verify.")
	flag.Usage = usage
	flag.Parse()
	if err := config.ReadFromEnvironment(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return
	}

	if config.Username == "" {
		fmt.Fprintf(os.Stderr, "Must provide the account username using -username or $%s\n", cli.EnvUsername)
		return
	}

	if remove {
		if err := config.DeletePasswordFromKeyring(); err != nil {
			fmt.Fprintf(os.Stderr, "Error removing password from keyring: %s\n", err)
			return
		}
		returnCode = 0
		return
	}

	password, err := readPassword(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return
	}
	if password == "" {
		fmt.Fprintln(os.Stderr, "Refusing to save an empty password")
		return
	}

	if verify {
		config.Password = password
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if _, err := config.Connect(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error logging in: %s\n", err)
			return
		}
	}

	if err := config.SavePasswordToKeyring(password); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving password to keyring: %s\n", err)
		return
	}

	returnCode = 0
}
