package api

import (
	"net/http"
	"strconv"

	"github.com/blackwell-systems/libdash/internal/entity"
)

// Typed CRUD wrappers per entity. Each is a thin instantiation of the
// generic request path; update bodies are Patch field sets so partial
// updates keep their omit-vs-null semantics.

// --- Books ---

func (c *Client) ListBooks() ([]entity.Book, error) {
	var out []entity.Book
	err := c.doJSON(http.MethodGet, c.resourceURL("books"), nil, &out)
	return out, err
}

func (c *Client) CreateBook(in entity.BookCreate) (*entity.Book, error) {
	var out entity.Book
	if err := c.doJSON(http.MethodPost, c.resourceURL("books"), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBook(id int64, p entity.Patch) error {
	return c.doJSON(http.MethodPut, c.resourceURL("books", itoa(id)), p, nil)
}

func (c *Client) DeleteBook(id int64) error {
	return c.doJSON(http.MethodDelete, c.resourceURL("books", itoa(id)), nil, nil)
}

// --- Publishers ---

func (c *Client) ListPublishers() ([]entity.Publisher, error) {
	var out []entity.Publisher
	err := c.doJSON(http.MethodGet, c.resourceURL("publishers"), nil, &out)
	return out, err
}

func (c *Client) CreatePublisher(in entity.PublisherCreate) (*entity.Publisher, error) {
	var out entity.Publisher
	if err := c.doJSON(http.MethodPost, c.resourceURL("publishers"), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePublisher(id int64, p entity.Patch) error {
	return c.doJSON(http.MethodPut, c.resourceURL("publishers", itoa(id)), p, nil)
}

func (c *Client) DeletePublisher(id int64) error {
	return c.doJSON(http.MethodDelete, c.resourceURL("publishers", itoa(id)), nil, nil)
}

// --- Authors ---

func (c *Client) ListAuthors() ([]entity.Author, error) {
	var out []entity.Author
	err := c.doJSON(http.MethodGet, c.resourceURL("authors"), nil, &out)
	return out, err
}

func (c *Client) CreateAuthor(in entity.AuthorCreate) (*entity.Author, error) {
	var out entity.Author
	if err := c.doJSON(http.MethodPost, c.resourceURL("authors"), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAuthor(id int64, p entity.Patch) error {
	return c.doJSON(http.MethodPut, c.resourceURL("authors", itoa(id)), p, nil)
}

func (c *Client) DeleteAuthor(id int64) error {
	return c.doJSON(http.MethodDelete, c.resourceURL("authors", itoa(id)), nil, nil)
}

// --- Reviews ---

func (c *Client) ListReviews() ([]entity.Review, error) {
	var out []entity.Review
	err := c.doJSON(http.MethodGet, c.resourceURL("reviews"), nil, &out)
	return out, err
}

func (c *Client) CreateReview(in entity.ReviewCreate) (*entity.Review, error) {
	var out entity.Review
	if err := c.doJSON(http.MethodPost, c.resourceURL("reviews"), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateReview(id int64, p entity.Patch) error {
	return c.doJSON(http.MethodPut, c.resourceURL("reviews", itoa(id)), p, nil)
}

func (c *Client) DeleteReview(id int64) error {
	return c.doJSON(http.MethodDelete, c.resourceURL("reviews", itoa(id)), nil, nil)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
