package app

import (
	"github.com/blackwell-systems/libdash/internal/entity"
	"github.com/spf13/cobra"
)

func newReviewsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "List and manage book reviews",
	}
	cmd.AddCommand(
		newReviewsListCmd(),
		newReviewsCreateCmd(),
		newReviewsUpdateCmd(),
		newReviewsDeleteCmd(),
	)
	return cmd
}

func newReviewsListCmd() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all reviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(entity.Reviews, full)
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "Print full review texts after the table")
	return cmd
}

func newReviewsCreateCmd() *cobra.Command {
	var (
		in   entity.ReviewCreate
		text string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Post a review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if text != "" {
				in.ReviewText = &text
			}
			if err := in.Validate(); err != nil {
				return err
			}
			review, err := client.CreateReview(in)
			if err != nil {
				return err
			}
			ok("Posted review #%d (rating %d)", review.ID, review.Rating)
			return ctrl.Render(entity.Reviews)
		},
	}

	cmd.Flags().Int64Var(&in.BookID, "book", 0, "Book id (required)")
	cmd.Flags().IntVar(&in.Rating, "rating", 0, "Rating, 1 to 5 (required)")
	cmd.Flags().StringVar(&text, "text", "", "Review text")
	_ = cmd.MarkFlagRequired("book")
	_ = cmd.MarkFlagRequired("rating")

	return cmd
}

func newReviewsUpdateCmd() *cobra.Command {
	var (
		rating    int
		text      string
		clearText bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update one of your reviews",
		Long: `Update a review. Admins can update any review; everyone else only
their own — the backend enforces ownership.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			u := entity.ReviewUpdate{
				Rating:     optInt(cmd.Flags().Changed("rating"), rating),
				ReviewText: optString(cmd.Flags().Changed("text"), text, clearText),
			}
			if err := u.Validate(); err != nil {
				return err
			}
			patch := u.Patch()
			if patch.Empty() {
				warn("Nothing to update")
				return nil
			}
			if err := client.UpdateReview(id, patch); err != nil {
				return err
			}
			ok("Updated review #%d", id)
			return ctrl.Render(entity.Reviews)
		},
	}

	cmd.Flags().IntVar(&rating, "rating", 0, "New rating, 1 to 5")
	cmd.Flags().StringVar(&text, "text", "", "New review text")
	cmd.Flags().BoolVar(&clearText, "clear-text", false, "Clear the review text")

	return cmd
}

func newReviewsDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one of your reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return ctrl.Delete(entity.Reviews, id)
		},
	}
	cmd.Flags().BoolVar(&flagYes, "yes", false, "Skip confirmation prompt")
	return cmd
}
