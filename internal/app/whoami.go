package app

import (
	"fmt"

	"github.com/blackwell-systems/libdash/internal/entity"
	"github.com/spf13/cobra"
)

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session's identity and role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			claims := sess.Claims()
			fmt.Printf("User id: %d\n", claims.UserID)
			fmt.Printf("Role:    %s\n", claims.Role)
			if claims.Subject != "" {
				fmt.Printf("Subject: %s\n", claims.Subject)
			}
			if claims.ExpiresAt != nil {
				fmt.Printf("Expires: %s\n", claims.ExpiresAt.Local().Format("2006-01-02 15:04:05"))
			}
			fmt.Println()
			header("Permissions")
			for _, kind := range []entity.Kind{entity.Books, entity.Publishers, entity.Authors, entity.Reviews} {
				mode := "view"
				if canCreate(kind) {
					mode = "view, create, update, delete"
				}
				if kind == entity.Reviews && !canCreate(entity.Publishers) {
					// Non-admins only manage their own reviews.
					mode = "view, create, manage own"
				}
				fmt.Printf("  %-10s %s\n", kind, mode)
			}
			return nil
		},
	}
}
