package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation marks client-side validation failures. These are caught
// before any network call; the user corrects the input and resubmits.
var ErrValidation = errors.New("validation failed")

func validationError(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, a...))
}

// Rating bounds for reviews.
const (
	MinRating = 1
	MaxRating = 5
)

func (c BookCreate) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return validationError("book title is required")
	}
	if c.PublisherID <= 0 {
		return validationError("a valid publisher id is required")
	}
	return nil
}

func (c PublisherCreate) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return validationError("publisher name is required")
	}
	email := strings.TrimSpace(c.Email)
	if email == "" {
		return validationError("publisher email is required")
	}
	if !strings.Contains(email, "@") {
		return validationError("publisher email %q is not an email address", email)
	}
	return nil
}

func (c AuthorCreate) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return validationError("author name is required")
	}
	if c.BookID <= 0 {
		return validationError("a valid book id is required")
	}
	return nil
}

func (c ReviewCreate) Validate() error {
	if c.BookID <= 0 {
		return validationError("a valid book id is required")
	}
	if c.Rating < MinRating || c.Rating > MaxRating {
		return validationError("rating must be between %d and %d", MinRating, MaxRating)
	}
	return nil
}

// Update validation mirrors the create rules, but only for fields that
// were actually touched. Required fields may not be cleared or blanked.

func (u BookUpdate) Validate() error {
	if u.Title.IsSet() {
		v, ok := u.Title.Value()
		if !ok || strings.TrimSpace(v) == "" {
			return validationError("book title cannot be empty")
		}
	}
	// The publisher link is nullable, so Null is fine; a concrete value
	// must still be a plausible id.
	if v, ok := u.PublisherID.Value(); ok && v <= 0 {
		return validationError("a valid publisher id is required")
	}
	return nil
}

func (u PublisherUpdate) Validate() error {
	if u.Name.IsSet() {
		v, ok := u.Name.Value()
		if !ok || strings.TrimSpace(v) == "" {
			return validationError("publisher name cannot be empty")
		}
	}
	if u.Email.IsSet() {
		v, ok := u.Email.Value()
		if !ok || strings.TrimSpace(v) == "" {
			return validationError("publisher email cannot be empty")
		}
		if !strings.Contains(v, "@") {
			return validationError("publisher email %q is not an email address", v)
		}
	}
	return nil
}

func (u AuthorUpdate) Validate() error {
	if u.Name.IsSet() {
		v, ok := u.Name.Value()
		if !ok || strings.TrimSpace(v) == "" {
			return validationError("author name cannot be empty")
		}
	}
	return nil
}

func (u ReviewUpdate) Validate() error {
	if u.Rating.IsSet() {
		v, ok := u.Rating.Value()
		if !ok || v < MinRating || v > MaxRating {
			return validationError("rating must be between %d and %d", MinRating, MaxRating)
		}
	}
	return nil
}
