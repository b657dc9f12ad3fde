package app

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/libdash/internal/session"
	"github.com/spf13/cobra"
)

func newRegisterCmd() *cobra.Command {
	var (
		username string
		password string
		role     string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account on the backend",
		Long: `Create a new account. Registration does not log you in; run
'libdash login' afterwards.

The role defaults to customer. Whether a request for a more privileged
role is honored is up to the backend.`,
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
			if password == "" {
				return fmt.Errorf("password is required")
			}

			if err := client.Register(username, password, session.Role(role)); err != nil {
				return err
			}
			ok("Account %q created — run 'libdash login' to sign in", username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted when omitted)")
	cmd.Flags().StringVar(&role, "role", "customer", "Requested role (customer, publisher, admin)")

	return cmd
}
