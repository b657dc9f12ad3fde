package app

import (
	"github.com/blackwell-systems/libdash/internal/entity"
	"github.com/spf13/cobra"
)

func newPublishersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publishers",
		Short: "List and manage publishers (admin only to mutate)",
	}
	cmd.AddCommand(
		newPublishersListCmd(),
		newPublishersCreateCmd(),
		newPublishersUpdateCmd(),
		newPublishersDeleteCmd(),
	)
	return cmd
}

func newPublishersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all publishers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(entity.Publishers, false)
		},
	}
}

func newPublishersCreateCmd() *cobra.Command {
	var (
		in      entity.PublisherCreate
		phone   string
		website string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a publisher",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if phone != "" {
				in.PhoneNumber = &phone
			}
			if website != "" {
				in.Website = &website
			}
			if err := in.Validate(); err != nil {
				return err
			}
			pub, err := client.CreatePublisher(in)
			if err != nil {
				return err
			}
			ok("Created publisher #%d %q", pub.ID, pub.Name)
			return ctrl.Render(entity.Publishers)
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Publisher name (required)")
	cmd.Flags().StringVar(&in.Email, "email", "", "Contact email (required)")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&website, "website", "", "Website URL")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newPublishersUpdateCmd() *cobra.Command {
	var (
		name         string
		email        string
		phone        string
		website      string
		clearPhone   bool
		clearWebsite bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a publisher",
		Long: `Update a publisher. Only the fields you pass change. Phone and
website are optional fields and can be cleared with --clear-phone and
--clear-website.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			u := entity.PublisherUpdate{
				Name:        optString(cmd.Flags().Changed("name"), name, false),
				Email:       optString(cmd.Flags().Changed("email"), email, false),
				PhoneNumber: optString(cmd.Flags().Changed("phone"), phone, clearPhone),
				Website:     optString(cmd.Flags().Changed("website"), website, clearWebsite),
			}
			if err := u.Validate(); err != nil {
				return err
			}
			patch := u.Patch()
			if patch.Empty() {
				warn("Nothing to update")
				return nil
			}
			if err := client.UpdatePublisher(id, patch); err != nil {
				return err
			}
			ok("Updated publisher #%d", id)
			return ctrl.Render(entity.Publishers)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&email, "email", "", "New contact email")
	cmd.Flags().StringVar(&phone, "phone", "", "New phone number")
	cmd.Flags().StringVar(&website, "website", "", "New website URL")
	cmd.Flags().BoolVar(&clearPhone, "clear-phone", false, "Clear the phone number")
	cmd.Flags().BoolVar(&clearWebsite, "clear-website", false, "Clear the website")

	return cmd
}

func newPublishersDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a publisher",
		Long: `Delete a publisher. The backend may cascade into its books, so the
book list is re-fetched afterwards as well.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return ctrl.Delete(entity.Publishers, id)
		},
	}
	cmd.Flags().BoolVar(&flagYes, "yes", false, "Skip confirmation prompt")
	return cmd
}
