package entity_test

import (
	"errors"
	"testing"

	"github.com/blackwell-systems/libdash/internal/entity"
)

func TestBookCreate_Validate(t *testing.T) {
	cases := []struct {
		name string
		in   entity.BookCreate
		ok   bool
	}{
		{"valid", entity.BookCreate{Title: "SICP", PublisherID: 1}, true},
		{"empty title", entity.BookCreate{Title: "", PublisherID: 1}, false},
		{"whitespace title", entity.BookCreate{Title: "   ", PublisherID: 1}, false},
		{"missing publisher", entity.BookCreate{Title: "SICP"}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.in.Validate()
			if c.ok && err != nil {
				t.Errorf("Validate: %v", err)
			}
			if !c.ok {
				if !errors.Is(err, entity.ErrValidation) {
					t.Errorf("err = %v, want ErrValidation", err)
				}
			}
		})
	}
}

func TestPublisherCreate_Validate(t *testing.T) {
	cases := []struct {
		name string
		in   entity.PublisherCreate
		ok   bool
	}{
		{"valid", entity.PublisherCreate{Name: "ACME", Email: "a@b.com"}, true},
		{"no name", entity.PublisherCreate{Email: "a@b.com"}, false},
		{"no email", entity.PublisherCreate{Name: "ACME"}, false},
		{"bad email", entity.PublisherCreate{Name: "ACME", Email: "nope"}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.in.Validate(); (err == nil) != c.ok {
				t.Errorf("Validate = %v, want ok=%v", err, c.ok)
			}
		})
	}
}

func TestAuthorCreate_Validate(t *testing.T) {
	if err := (entity.AuthorCreate{Name: "Knuth", BookID: 1}).Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	if err := (entity.AuthorCreate{Name: "", BookID: 1}).Validate(); err == nil {
		t.Error("empty name accepted")
	}
	if err := (entity.AuthorCreate{Name: "Knuth"}).Validate(); err == nil {
		t.Error("missing book id accepted")
	}
}

func TestReviewCreate_RatingBounds(t *testing.T) {
	for rating, ok := range map[int]bool{0: false, 1: true, 3: true, 5: true, 6: false, -1: false} {
		err := (entity.ReviewCreate{BookID: 1, Rating: rating}).Validate()
		if ok && err != nil {
			t.Errorf("rating %d rejected: %v", rating, err)
		}
		if !ok && !errors.Is(err, entity.ErrValidation) {
			t.Errorf("rating %d: err = %v, want ErrValidation", rating, err)
		}
	}
}

// An update that clears a required field must be blocked before any
// network call.
func TestBookUpdate_ClearedTitleBlocked(t *testing.T) {
	u := entity.BookUpdate{Title: entity.Set("")}
	if err := u.Validate(); !errors.Is(err, entity.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
	u = entity.BookUpdate{Title: entity.Null[string]()}
	if err := u.Validate(); !errors.Is(err, entity.ErrValidation) {
		t.Errorf("null title: err = %v, want ErrValidation", err)
	}
}

func TestBookUpdate_UntouchedFieldsPass(t *testing.T) {
	if err := (entity.BookUpdate{}).Validate(); err != nil {
		t.Errorf("empty update rejected: %v", err)
	}
	if err := (entity.BookUpdate{PublisherID: entity.Set[int64](2)}).Validate(); err != nil {
		t.Errorf("valid partial update rejected: %v", err)
	}
	// The publisher link is nullable, so clearing it is allowed.
	if err := (entity.BookUpdate{PublisherID: entity.Null[int64]()}).Validate(); err != nil {
		t.Errorf("cleared publisher rejected: %v", err)
	}
}

func TestReviewUpdate_RatingBounds(t *testing.T) {
	if err := (entity.ReviewUpdate{Rating: entity.Set(6)}).Validate(); err == nil {
		t.Error("rating 6 accepted on update")
	}
	if err := (entity.ReviewUpdate{Rating: entity.Set(4)}).Validate(); err != nil {
		t.Errorf("rating 4 rejected: %v", err)
	}
}
