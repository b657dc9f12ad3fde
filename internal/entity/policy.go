package entity

import "github.com/blackwell-systems/libdash/internal/session"

// Role policy for mutation controls. Viewing any list only requires being
// authenticated. These predicates gate what the UI offers; the backend
// makes the real authorization decision on every request, so an
// over-permissive render can only produce a 403, never a real mutation.

// CanMutateBooks reports whether update/delete controls are shown on books.
func CanMutateBooks(c *session.Claims) bool {
	if c == nil {
		return false
	}
	return c.Role == session.RoleAdmin || c.Role == session.RolePublisher
}

// CanMutatePublishers reports whether publisher rows get mutation controls.
func CanMutatePublishers(c *session.Claims) bool {
	return c != nil && c.Role == session.RoleAdmin
}

// CanMutateAuthors reports whether author rows get mutation controls.
func CanMutateAuthors(c *session.Claims) bool {
	if c == nil {
		return false
	}
	return c.Role == session.RoleAdmin || c.Role == session.RolePublisher
}

// CanMutateReview reports whether the given review gets mutation controls:
// admins always, otherwise only the review's own author.
func CanMutateReview(c *session.Claims, r Review) bool {
	if c == nil {
		return false
	}
	return c.Role == session.RoleAdmin || c.UserID == r.UserID
}
