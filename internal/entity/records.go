package entity

// Record types mirror the backend's JSON responses. The client never owns
// these: each list is an ephemeral copy, discarded and re-fetched after
// every mutation. Optional fields are pointers so an absent value and an
// empty string stay distinguishable.

// Book is one catalog entry.
type Book struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	PublisherID *int64 `json:"publisher_id"`
	WriteDate   string `json:"write_date"`
}

// Publisher is a publishing house record.
type Publisher struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Website     *string `json:"website"`
	BookCount   int     `json:"book_count"`
	WriteDate   string  `json:"write_date"`
}

// Author is a book author record.
type Author struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Biography *string `json:"biography"`
	BirthDate *string `json:"birth_date"`
	BookID    int64   `json:"book_id"`
	WriteDate string  `json:"write_date"`
}

// Review is a reader review of a book.
type Review struct {
	ID         int64   `json:"id"`
	BookID     int64   `json:"book_id"`
	Rating     int     `json:"rating"`
	ReviewText *string `json:"review_text"`
	UserID     int64   `json:"user_id"`
	DatePosted string  `json:"date_posted"`
	WriteDate  string  `json:"write_date"`
}

// Create payloads carry the entity-specific required fields.

type BookCreate struct {
	Title       string `json:"title"`
	PublisherID int64  `json:"publisher_id"`
}

type PublisherCreate struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Website     *string `json:"website,omitempty"`
}

type AuthorCreate struct {
	Name      string  `json:"name"`
	Biography *string `json:"biography,omitempty"`
	BirthDate *string `json:"birth_date,omitempty"`
	BookID    int64   `json:"book_id"`
}

type ReviewCreate struct {
	BookID     int64   `json:"book_id"`
	Rating     int     `json:"rating"`
	ReviewText *string `json:"review_text,omitempty"`
}
