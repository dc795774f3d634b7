// Package cli implements the fitctl command line client.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"fittrack/pkg/client"
)

type app struct {
	configPath string
	server     string
	cfg        *Config
}

// NewRootCmd builds the fitctl command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "fitctl",
		Short:         "Log workouts and track fitness goals from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.configPath == "" {
				path, err := DefaultConfigPath()
				if err != nil {
					return err
				}
				a.configPath = path
			}
			cfg, err := LoadConfig(a.configPath)
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}
			if a.server != "" {
				cfg.Server = a.server
			}
			a.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default ~/.config/fittrack/config.toml)")
	root.PersistentFlags().StringVar(&a.server, "server", "", "API base URL (overrides the config file)")

	root.AddCommand(
		a.registerCmd(),
		a.loginCmd(),
		a.logoutCmd(),
		a.profileCmd(),
		a.workoutsCmd(),
		a.goalsCmd(),
		a.summaryCmd(),
	)
	return root
}

func (a *app) client() *client.Client {
	return client.New(a.cfg.Server, a.cfg.Token)
}

// authed returns a client or a hint to log in first.
func (a *app) authed() (*client.Client, error) {
	if a.cfg.Token == "" {
		return nil, errors.New("not logged in, run `fitctl login` first")
	}
	return a.client(), nil
}

// explain turns a 401 on an authenticated call into a login hint.
func explain(err error) error {
	if client.IsUnauthorized(err) {
		return fmt.Errorf("%w; run `fitctl login` again", err)
	}
	return err
}

// readSecret reads one line from in when the flag was not given.
func readSecret(cmd *cobra.Command, in io.Reader, value string) (string, error) {
	if value != "" {
		return value, nil
	}
	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errors.New("password is required")
	}
	return line, nil
}
