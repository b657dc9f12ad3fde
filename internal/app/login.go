package app

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCmd() *cobra.Command {
	var (
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session token",
		Long: `Authenticate against the backend with username and password.

On success the bearer token is stored (mode 0600) and reused by every
later command until it expires or you log out.

Examples:
  # Prompt for credentials
  libdash login

  # Scripted
  libdash login -u alice -p secret
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				fmt.Print("Username: ")
				_, _ = fmt.Scanln(&username)
			}
			if strings.TrimSpace(username) == "" {
				return fmt.Errorf("username is required")
			}
			if password == "" {
				var err error
				password, err = readPassword()
				if err != nil {
					return err
				}
			}

			token, err := client.Login(username, password)
			if err != nil {
				return err
			}
			if err := sess.Login(token); err != nil {
				return fmt.Errorf("server returned an unusable token: %w", err)
			}
			ok("Logged in as %s (%s)", username, sess.Claims().Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted when omitted)")

	return cmd
}

// readPassword reads a password without echo when stdin is a terminal,
// falling back to a plain line read when it is piped.
func readPassword() (string, error) {
	fmt.Print("Password: ")
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(b), nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
