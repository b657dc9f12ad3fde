package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/blackwell-systems/libdash/internal/api"
	"github.com/blackwell-systems/libdash/internal/entity"
	"github.com/blackwell-systems/libdash/internal/tui"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show every entity list",
		Long: `Show the full dashboard. On a terminal this launches the interactive
hub; with --no-interactive (or piped output) it prints all four tables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tui.ShouldUseTUI(cmd) {
				return runHub()
			}
			ctrl.RenderAll()
			return nil
		},
	}
}

// runHub launches the interactive hub menu and routes to entity screens
// until the user quits.
func runHub() error {
	if !sess.Authenticated() {
		fmt.Println(color.YellowString("⚠ Welcome to libdash!"))
		fmt.Println()
		fmt.Println("You are not logged in. To get started:")
		fmt.Println()
		fmt.Printf("  1. Create an account (first time only):\n")
		fmt.Printf("     %s\n\n", color.CyanString("libdash register"))
		fmt.Printf("  2. Sign in:\n")
		fmt.Printf("     %s\n\n", color.CyanString("libdash login"))
		fmt.Println("Then run 'libdash' again for the interactive dashboard.")
		return nil
	}

	claims := sess.Claims()
	hubCtx := tui.HubContext{Role: string(claims.Role), UserID: claims.UserID}
	entries := []tui.MenuItem{
		{Key: "books", Label: "Books", Description: "Browse and manage the catalog"},
		{Key: "publishers", Label: "Publishers", Description: "Publishing houses and their books"},
		{Key: "authors", Label: "Authors", Description: "Authors and biographies"},
		{Key: "reviews", Label: "Reviews", Description: "Reader reviews and ratings"},
	}

	for {
		action, err := tui.RunHub(hubCtx, entries)
		if err != nil {
			return err
		}
		if action == "quit" {
			return nil
		}
		if err := browseKind(entity.Kind(action)); err != nil {
			return err
		}
	}
}

// browseKind runs one entity screen: fetch, browse, act, re-fetch. The
// loop re-fetches on every pass, so mutations (including cascades from
// other screens) are always reflected.
func browseKind(kind entity.Kind) error {
	src := ctrl.Source(kind)
	for {
		rows, err := src.Fetch()
		if err != nil {
			// Already reported; drop back to the hub. A 401 has also
			// destroyed the session, so further screens won't fare
			// better, but the hub handles that on re-entry.
			return nil
		}

		res, err := tui.RunBrowser(browserTitle(kind), src.Descriptor.Columns, rows, canCreate(kind))
		if err != nil {
			return err
		}

		switch res.Action {
		case tui.BrowseNone:
			return nil

		case tui.BrowseRefresh:
			continue

		case tui.BrowseView:
			if res.Row != nil {
				_ = tui.RunDetail(detailTitle(kind, res.Row.ID), res.Row.Detail)
			}

		case tui.BrowseCreate:
			if err := runCreateForm(kind); err != nil && !errors.Is(err, tui.ErrCanceled) {
				formError(err)
			}

		case tui.BrowseUpdate:
			if res.Row != nil {
				if err := runUpdateForm(kind, res.Row.ID); err != nil && !errors.Is(err, tui.ErrCanceled) {
					formError(err)
				}
			}

		case tui.BrowseDelete:
			if res.Row != nil {
				if confirmPrompt(fmt.Sprintf("Delete %s id=%d?", kind, res.Row.ID)) {
					_ = src.Delete(res.Row.ID)
				}
			}
		}
	}
}

func browserTitle(kind entity.Kind) string {
	return fmt.Sprintf("libdash — %s", kind)
}

func detailTitle(kind entity.Kind, id int64) string {
	switch kind {
	case entity.Authors:
		return fmt.Sprintf("Biography — author #%d", id)
	case entity.Reviews:
		return fmt.Sprintf("Review #%d", id)
	}
	return fmt.Sprintf("%s #%d", kind, id)
}

// formError surfaces a form submission failure without leaving TUI flow.
// API errors have already been printed by the client hook.
func formError(err error) {
	if api.Reported(err) {
		return
	}
	warn("%v", err)
}

// --- create forms ---

func runCreateForm(kind entity.Kind) error {
	switch kind {
	case entity.Books:
		return runCreateBook()
	case entity.Publishers:
		return runCreatePublisher()
	case entity.Authors:
		return runCreateAuthor()
	case entity.Reviews:
		return runCreateReview()
	}
	return fmt.Errorf("unknown kind %s", kind)
}

func runCreateBook() error {
	fields := []tui.Field{
		{Label: "Title", Placeholder: "book title"},
		{Label: "Publisher", Placeholder: "publisher id"},
	}
	vals, err := tui.RunForm("New book", "", fields, func(vals []string) error {
		in, err := bookCreateFromValues(vals)
		if err != nil {
			return err
		}
		return in.Validate()
	})
	if err != nil {
		return err
	}
	in, _ := bookCreateFromValues(vals)
	book, err := client.CreateBook(in)
	if err != nil {
		return err
	}
	ok("Created book #%d %q", book.ID, book.Title)
	return nil
}

func runCreatePublisher() error {
	fields := []tui.Field{
		{Label: "Name", Placeholder: "publisher name"},
		{Label: "Email", Placeholder: "contact@example.com"},
		{Label: "Phone", Placeholder: "optional"},
		{Label: "Website", Placeholder: "optional"},
	}
	vals, err := tui.RunForm("New publisher", "", fields, func(vals []string) error {
		return publisherCreateFromValues(vals).Validate()
	})
	if err != nil {
		return err
	}
	pub, err := client.CreatePublisher(publisherCreateFromValues(vals))
	if err != nil {
		return err
	}
	ok("Created publisher #%d %q", pub.ID, pub.Name)
	return nil
}

func runCreateAuthor() error {
	fields := []tui.Field{
		{Label: "Name", Placeholder: "author name"},
		{Label: "Book", Placeholder: "book id"},
		{Label: "Biography", Placeholder: "optional", CharLimit: 2000},
		{Label: "Born", Placeholder: "YYYY-MM-DD, optional"},
	}
	vals, err := tui.RunForm("New author", "", fields, func(vals []string) error {
		in, err := authorCreateFromValues(vals)
		if err != nil {
			return err
		}
		return in.Validate()
	})
	if err != nil {
		return err
	}
	in, _ := authorCreateFromValues(vals)
	author, err := client.CreateAuthor(in)
	if err != nil {
		return err
	}
	ok("Created author #%d %q", author.ID, author.Name)
	return nil
}

func runCreateReview() error {
	fields := []tui.Field{
		{Label: "Book", Placeholder: "book id"},
		{Label: "Rating", Placeholder: "1-5"},
		{Label: "Text", Placeholder: "optional", CharLimit: 2000},
	}
	vals, err := tui.RunForm("New review", "", fields, func(vals []string) error {
		in, err := reviewCreateFromValues(vals)
		if err != nil {
			return err
		}
		return in.Validate()
	})
	if err != nil {
		return err
	}
	in, _ := reviewCreateFromValues(vals)
	review, err := client.CreateReview(in)
	if err != nil {
		return err
	}
	ok("Posted review #%d", review.ID)
	return nil
}

// --- update forms ---

func runUpdateForm(kind entity.Kind, id int64) error {
	switch kind {
	case entity.Books:
		return runUpdateBook(id)
	case entity.Publishers:
		return runUpdatePublisher(id)
	case entity.Authors:
		return runUpdateAuthor(id)
	case entity.Reviews:
		return runUpdateReview(id)
	}
	return fmt.Errorf("unknown kind %s", kind)
}

func runUpdateBook(id int64) error {
	books, err := client.ListBooks()
	if err != nil {
		return err
	}
	var book *entity.Book
	for i := range books {
		if books[i].ID == id {
			book = &books[i]
			break
		}
	}
	if book == nil {
		return fmt.Errorf("book #%d no longer exists", id)
	}

	publisher := ""
	if book.PublisherID != nil {
		publisher = strconv.FormatInt(*book.PublisherID, 10)
	}
	fields := []tui.Field{
		{Label: "Title", Value: book.Title},
		{Label: "Publisher", Value: publisher, Placeholder: "blank = none"},
	}
	vals, err := tui.RunForm(fmt.Sprintf("Edit book #%d", id), "Blank publisher detaches it.", fields, func(vals []string) error {
		u, err := bookUpdateFromValues(vals)
		if err != nil {
			return err
		}
		return u.Validate()
	})
	if err != nil {
		return err
	}
	u, _ := bookUpdateFromValues(vals)
	if err := client.UpdateBook(id, u.Patch()); err != nil {
		return err
	}
	ok("Updated book #%d", id)
	return nil
}

func runUpdatePublisher(id int64) error {
	publishers, err := client.ListPublishers()
	if err != nil {
		return err
	}
	var pub *entity.Publisher
	for i := range publishers {
		if publishers[i].ID == id {
			pub = &publishers[i]
			break
		}
	}
	if pub == nil {
		return fmt.Errorf("publisher #%d no longer exists", id)
	}

	fields := []tui.Field{
		{Label: "Name", Value: pub.Name},
		{Label: "Email", Value: pub.Email},
		{Label: "Phone", Value: deref(pub.PhoneNumber), Placeholder: "blank = none"},
		{Label: "Website", Value: deref(pub.Website), Placeholder: "blank = none"},
	}
	vals, err := tui.RunForm(fmt.Sprintf("Edit publisher #%d", id), "Blank optional fields are cleared.", fields, func(vals []string) error {
		return publisherUpdateFromValues(vals).Validate()
	})
	if err != nil {
		return err
	}
	if err := client.UpdatePublisher(id, publisherUpdateFromValues(vals).Patch()); err != nil {
		return err
	}
	ok("Updated publisher #%d", id)
	return nil
}

func runUpdateAuthor(id int64) error {
	authors, err := client.ListAuthors()
	if err != nil {
		return err
	}
	var author *entity.Author
	for i := range authors {
		if authors[i].ID == id {
			author = &authors[i]
			break
		}
	}
	if author == nil {
		return fmt.Errorf("author #%d no longer exists", id)
	}

	fields := []tui.Field{
		{Label: "Name", Value: author.Name},
		{Label: "Biography", Value: deref(author.Biography), Placeholder: "blank = none", CharLimit: 2000},
		{Label: "Born", Value: deref(author.BirthDate), Placeholder: "YYYY-MM-DD, blank = none"},
	}
	vals, err := tui.RunForm(fmt.Sprintf("Edit author #%d", id), "Blank optional fields are cleared.", fields, func(vals []string) error {
		return authorUpdateFromValues(vals).Validate()
	})
	if err != nil {
		return err
	}
	if err := client.UpdateAuthor(id, authorUpdateFromValues(vals).Patch()); err != nil {
		return err
	}
	ok("Updated author #%d", id)
	return nil
}

func runUpdateReview(id int64) error {
	reviews, err := client.ListReviews()
	if err != nil {
		return err
	}
	var review *entity.Review
	for i := range reviews {
		if reviews[i].ID == id {
			review = &reviews[i]
			break
		}
	}
	if review == nil {
		return fmt.Errorf("review #%d no longer exists", id)
	}

	fields := []tui.Field{
		{Label: "Rating", Value: strconv.Itoa(review.Rating), Placeholder: "1-5"},
		{Label: "Text", Value: deref(review.ReviewText), Placeholder: "blank = none", CharLimit: 2000},
	}
	vals, err := tui.RunForm(fmt.Sprintf("Edit review #%d", id), "Blank text clears it.", fields, func(vals []string) error {
		u, err := reviewUpdateFromValues(vals)
		if err != nil {
			return err
		}
		return u.Validate()
	})
	if err != nil {
		return err
	}
	u, _ := reviewUpdateFromValues(vals)
	if err := client.UpdateReview(id, u.Patch()); err != nil {
		return err
	}
	ok("Updated review #%d", id)
	return nil
}

// --- form value parsing ---

func bookCreateFromValues(vals []string) (entity.BookCreate, error) {
	pubID, err := parseFormID(vals[1], "publisher id")
	if err != nil {
		return entity.BookCreate{}, err
	}
	return entity.BookCreate{Title: strings.TrimSpace(vals[0]), PublisherID: pubID}, nil
}

func publisherCreateFromValues(vals []string) entity.PublisherCreate {
	in := entity.PublisherCreate{
		Name:  strings.TrimSpace(vals[0]),
		Email: strings.TrimSpace(vals[1]),
	}
	if v := strings.TrimSpace(vals[2]); v != "" {
		in.PhoneNumber = &v
	}
	if v := strings.TrimSpace(vals[3]); v != "" {
		in.Website = &v
	}
	return in
}

func authorCreateFromValues(vals []string) (entity.AuthorCreate, error) {
	bookID, err := parseFormID(vals[1], "book id")
	if err != nil {
		return entity.AuthorCreate{}, err
	}
	in := entity.AuthorCreate{Name: strings.TrimSpace(vals[0]), BookID: bookID}
	if v := strings.TrimSpace(vals[2]); v != "" {
		in.Biography = &v
	}
	if v := strings.TrimSpace(vals[3]); v != "" {
		in.BirthDate = &v
	}
	return in, nil
}

func reviewCreateFromValues(vals []string) (entity.ReviewCreate, error) {
	bookID, err := parseFormID(vals[0], "book id")
	if err != nil {
		return entity.ReviewCreate{}, err
	}
	rating, err := strconv.Atoi(strings.TrimSpace(vals[1]))
	if err != nil {
		return entity.ReviewCreate{}, fmt.Errorf("rating must be a number")
	}
	in := entity.ReviewCreate{BookID: bookID, Rating: rating}
	if v := strings.TrimSpace(vals[2]); v != "" {
		in.ReviewText = &v
	}
	return in, nil
}

func bookUpdateFromValues(vals []string) (entity.BookUpdate, error) {
	u := entity.BookUpdate{Title: entity.Set(strings.TrimSpace(vals[0]))}
	if v := strings.TrimSpace(vals[1]); v == "" {
		u.PublisherID = entity.Null[int64]()
	} else {
		id, err := parseFormID(v, "publisher id")
		if err != nil {
			return entity.BookUpdate{}, err
		}
		u.PublisherID = entity.Set(id)
	}
	return u, nil
}

func publisherUpdateFromValues(vals []string) entity.PublisherUpdate {
	return entity.PublisherUpdate{
		Name:        entity.Set(strings.TrimSpace(vals[0])),
		Email:       entity.Set(strings.TrimSpace(vals[1])),
		PhoneNumber: setOrNull(vals[2]),
		Website:     setOrNull(vals[3]),
	}
}

func authorUpdateFromValues(vals []string) entity.AuthorUpdate {
	return entity.AuthorUpdate{
		Name:      entity.Set(strings.TrimSpace(vals[0])),
		Biography: setOrNull(vals[1]),
		BirthDate: setOrNull(vals[2]),
	}
}

func reviewUpdateFromValues(vals []string) (entity.ReviewUpdate, error) {
	rating, err := strconv.Atoi(strings.TrimSpace(vals[0]))
	if err != nil {
		return entity.ReviewUpdate{}, fmt.Errorf("rating must be a number")
	}
	return entity.ReviewUpdate{
		Rating:     entity.Set(rating),
		ReviewText: setOrNull(vals[1]),
	}, nil
}

func parseFormID(s, what string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive number", what)
	}
	return id, nil
}

func setOrNull(s string) entity.Opt[string] {
	if v := strings.TrimSpace(s); v != "" {
		return entity.Set(v)
	}
	return entity.Null[string]()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
