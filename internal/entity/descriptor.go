package entity

import "strconv"

// Kind names one of the managed record kinds.
type Kind string

const (
	Books      Kind = "books"
	Publishers Kind = "publishers"
	Authors    Kind = "authors"
	Reviews    Kind = "reviews"
)

// Descriptor declares how one entity kind is listed: its resource path,
// its table columns, and which other lists a delete here invalidates.
// The per-entity dashboards are instantiations of this, not copies.
type Descriptor struct {
	Kind    Kind
	Path    string
	Columns []string
	// Dependents are re-fetched after a delete, because the backend may
	// cascade (deleting a publisher can remove its books).
	Dependents []Kind
}

// Descriptors holds the fixed set of entity descriptors.
var Descriptors = map[Kind]Descriptor{
	Books: {
		Kind:    Books,
		Path:    "/books",
		Columns: []string{"ID", "Title", "Publisher", "Updated"},
	},
	Publishers: {
		Kind:       Publishers,
		Path:       "/publishers",
		Columns:    []string{"ID", "Name", "Email", "Phone", "Website", "Books", "Updated"},
		Dependents: []Kind{Books},
	},
	Authors: {
		Kind:    Authors,
		Path:    "/authors",
		Columns: []string{"ID", "Name", "Biography", "Born", "Book", "Updated"},
	},
	Reviews: {
		Kind:    Reviews,
		Path:    "/reviews",
		Columns: []string{"ID", "Book", "Rating", "Text", "User", "Posted", "Updated"},
	},
}

// Row renders the book's display cells, in Descriptor column order.
func (b Book) Row() []string {
	return []string{
		strconv.FormatInt(b.ID, 10),
		b.Title,
		IDOrNA(b.PublisherID),
		FormatDateTime(b.WriteDate),
	}
}

func (p Publisher) Row() []string {
	return []string{
		strconv.FormatInt(p.ID, 10),
		p.Name,
		p.Email,
		OrNA(p.PhoneNumber),
		OrNA(p.Website),
		strconv.Itoa(p.BookCount),
		FormatDateTime(p.WriteDate),
	}
}

func (a Author) Row() []string {
	return []string{
		strconv.FormatInt(a.ID, 10),
		a.Name,
		LongText(a.Biography),
		OrNA(a.BirthDate),
		strconv.FormatInt(a.BookID, 10),
		FormatDateTime(a.WriteDate),
	}
}

func (r Review) Row() []string {
	return []string{
		strconv.FormatInt(r.ID, 10),
		strconv.FormatInt(r.BookID, 10),
		strconv.Itoa(r.Rating),
		LongText(r.ReviewText),
		strconv.FormatInt(r.UserID, 10),
		FormatDateTime(r.DatePosted),
		FormatDateTime(r.WriteDate),
	}
}
