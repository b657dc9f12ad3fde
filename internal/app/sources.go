package app

import (
	"github.com/blackwell-systems/libdash/internal/dashboard"
	"github.com/blackwell-systems/libdash/internal/entity"
)

// allSources builds the dashboard sources for every entity kind. Each row
// carries its own mutation permission so the renderer never consults the
// session itself; the per-review owner check is why this is per-row and
// not per-kind.
func allSources() []*dashboard.Source {
	return []*dashboard.Source{
		bookSource(),
		publisherSource(),
		authorSource(),
		reviewSource(),
	}
}

func bookSource() *dashboard.Source {
	return &dashboard.Source{
		Descriptor: entity.Descriptors[entity.Books],
		Fetch: func() ([]dashboard.Row, error) {
			books, err := client.ListBooks()
			if err != nil {
				return nil, err
			}
			can := entity.CanMutateBooks(sess.Claims())
			rows := make([]dashboard.Row, len(books))
			for i, b := range books {
				rows[i] = dashboard.Row{ID: b.ID, Cells: b.Row(), CanMutate: can}
			}
			return rows, nil
		},
		Delete: client.DeleteBook,
	}
}

func publisherSource() *dashboard.Source {
	return &dashboard.Source{
		Descriptor: entity.Descriptors[entity.Publishers],
		Fetch: func() ([]dashboard.Row, error) {
			publishers, err := client.ListPublishers()
			if err != nil {
				return nil, err
			}
			can := entity.CanMutatePublishers(sess.Claims())
			rows := make([]dashboard.Row, len(publishers))
			for i, p := range publishers {
				rows[i] = dashboard.Row{ID: p.ID, Cells: p.Row(), CanMutate: can}
			}
			return rows, nil
		},
		Delete: client.DeletePublisher,
	}
}

func authorSource() *dashboard.Source {
	return &dashboard.Source{
		Descriptor: entity.Descriptors[entity.Authors],
		Fetch: func() ([]dashboard.Row, error) {
			authors, err := client.ListAuthors()
			if err != nil {
				return nil, err
			}
			can := entity.CanMutateAuthors(sess.Claims())
			rows := make([]dashboard.Row, len(authors))
			for i, a := range authors {
				rows[i] = dashboard.Row{ID: a.ID, Cells: a.Row(), CanMutate: can}
				if a.Biography != nil {
					rows[i].Detail = *a.Biography
				}
			}
			return rows, nil
		},
		Delete: client.DeleteAuthor,
	}
}

func reviewSource() *dashboard.Source {
	return &dashboard.Source{
		Descriptor: entity.Descriptors[entity.Reviews],
		Fetch: func() ([]dashboard.Row, error) {
			reviews, err := client.ListReviews()
			if err != nil {
				return nil, err
			}
			claims := sess.Claims()
			rows := make([]dashboard.Row, len(reviews))
			for i, r := range reviews {
				rows[i] = dashboard.Row{
					ID:        r.ID,
					Cells:     r.Row(),
					CanMutate: entity.CanMutateReview(claims, r),
				}
				if r.ReviewText != nil {
					rows[i].Detail = *r.ReviewText
				}
			}
			return rows, nil
		},
		Delete: client.DeleteReview,
	}
}

// canCreate reports whether the current role may create records of the
// given kind. Any authenticated user can post a review; the rest follow
// the mutation policy.
func canCreate(kind entity.Kind) bool {
	claims := sess.Claims()
	switch kind {
	case entity.Books:
		return entity.CanMutateBooks(claims)
	case entity.Publishers:
		return entity.CanMutatePublishers(claims)
	case entity.Authors:
		return entity.CanMutateAuthors(claims)
	case entity.Reviews:
		return claims != nil
	}
	return false
}
