package app

import (
	"github.com/blackwell-systems/libdash/internal/entity"
	"github.com/spf13/cobra"
)

func newBooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "List and manage books",
	}
	cmd.AddCommand(
		newBooksListCmd(),
		newBooksCreateCmd(),
		newBooksUpdateCmd(),
		newBooksDeleteCmd(),
	)
	return cmd
}

func newBooksListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(entity.Books, false)
		},
	}
}

func newBooksCreateCmd() *cobra.Command {
	var in entity.BookCreate

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := in.Validate(); err != nil {
				return err
			}
			book, err := client.CreateBook(in)
			if err != nil {
				return err
			}
			ok("Created book #%d %q", book.ID, book.Title)
			return ctrl.Render(entity.Books)
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "Book title (required)")
	cmd.Flags().Int64Var(&in.PublisherID, "publisher", 0, "Publisher id (required)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("publisher")

	return cmd
}

func newBooksUpdateCmd() *cobra.Command {
	var (
		title          string
		publisherID    int64
		clearPublisher bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a book",
		Long: `Update a book. Only the fields you pass change; everything else is
left untouched. --clear-publisher detaches the book from its publisher.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			u := entity.BookUpdate{
				Title:       optString(cmd.Flags().Changed("title"), title, false),
				PublisherID: optInt64(cmd.Flags().Changed("publisher"), publisherID, clearPublisher),
			}
			if err := u.Validate(); err != nil {
				return err
			}
			patch := u.Patch()
			if patch.Empty() {
				warn("Nothing to update")
				return nil
			}
			if err := client.UpdateBook(id, patch); err != nil {
				return err
			}
			ok("Updated book #%d", id)
			return ctrl.Render(entity.Books)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().Int64Var(&publisherID, "publisher", 0, "New publisher id")
	cmd.Flags().BoolVar(&clearPublisher, "clear-publisher", false, "Detach the publisher")

	return cmd
}

func newBooksDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return ctrl.Delete(entity.Books, id)
		},
	}
	cmd.Flags().BoolVar(&flagYes, "yes", false, "Skip confirmation prompt")
	return cmd
}
