package app

import (
	"github.com/blackwell-systems/libdash/internal/entity"
	"github.com/spf13/cobra"
)

func newAuthorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "authors",
		Short: "List and manage authors",
	}
	cmd.AddCommand(
		newAuthorsListCmd(),
		newAuthorsCreateCmd(),
		newAuthorsUpdateCmd(),
		newAuthorsDeleteCmd(),
	)
	return cmd
}

func newAuthorsListCmd() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all authors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(entity.Authors, full)
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "Print full biographies after the table")
	return cmd
}

func newAuthorsCreateCmd() *cobra.Command {
	var (
		in        entity.AuthorCreate
		biography string
		birthDate string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an author",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if biography != "" {
				in.Biography = &biography
			}
			if birthDate != "" {
				in.BirthDate = &birthDate
			}
			if err := in.Validate(); err != nil {
				return err
			}
			author, err := client.CreateAuthor(in)
			if err != nil {
				return err
			}
			ok("Created author #%d %q", author.ID, author.Name)
			return ctrl.Render(entity.Authors)
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Author name (required)")
	cmd.Flags().Int64Var(&in.BookID, "book", 0, "Book id the author wrote (required)")
	cmd.Flags().StringVar(&biography, "bio", "", "Biography")
	cmd.Flags().StringVar(&birthDate, "birth-date", "", "Birth date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("book")

	return cmd
}

func newAuthorsUpdateCmd() *cobra.Command {
	var (
		name           string
		biography      string
		birthDate      string
		clearBio       bool
		clearBirthDate bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			u := entity.AuthorUpdate{
				Name:      optString(cmd.Flags().Changed("name"), name, false),
				Biography: optString(cmd.Flags().Changed("bio"), biography, clearBio),
				BirthDate: optString(cmd.Flags().Changed("birth-date"), birthDate, clearBirthDate),
			}
			if err := u.Validate(); err != nil {
				return err
			}
			patch := u.Patch()
			if patch.Empty() {
				warn("Nothing to update")
				return nil
			}
			if err := client.UpdateAuthor(id, patch); err != nil {
				return err
			}
			ok("Updated author #%d", id)
			return ctrl.Render(entity.Authors)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&biography, "bio", "", "New biography")
	cmd.Flags().StringVar(&birthDate, "birth-date", "", "New birth date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&clearBio, "clear-bio", false, "Clear the biography")
	cmd.Flags().BoolVar(&clearBirthDate, "clear-birth-date", false, "Clear the birth date")

	return cmd
}

func newAuthorsDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return ctrl.Delete(entity.Authors, id)
		},
	}
	cmd.Flags().BoolVar(&flagYes, "yes", false, "Skip confirmation prompt")
	return cmd
}
