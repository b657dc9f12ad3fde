package app

import (
	"github.com/spf13/cobra"
)

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !sess.Authenticated() {
				warn("Not logged in")
				return nil
			}
			if err := sess.Logout(); err != nil {
				return err
			}
			ok("Logged out")
			return nil
		},
	}
}
