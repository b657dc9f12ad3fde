package entity_test

import (
	"testing"
	"time"

	"github.com/blackwell-systems/libdash/internal/entity"
)

func TestFormatDateTime_Absent(t *testing.T) {
	if got := entity.FormatDateTime(""); got != "N/A" {
		t.Errorf("FormatDateTime(\"\") = %q, want N/A", got)
	}
}

func TestFormatDateTime_Invalid(t *testing.T) {
	if got := entity.FormatDateTime("not-a-date"); got != "Invalid Date" {
		t.Errorf("FormatDateTime = %q, want Invalid Date", got)
	}
}

func TestFormatDateTime_Valid(t *testing.T) {
	in := "2024-01-01T00:00:00Z"
	parsed, err := time.Parse(time.RFC3339, in)
	if err != nil {
		t.Fatal(err)
	}
	want := parsed.Local().Format("2006-01-02 15:04:05")
	if got := entity.FormatDateTime(in); got != want {
		t.Errorf("FormatDateTime(%q) = %q, want %q", in, got, want)
	}
}

func TestFormatDateTime_NaiveISO(t *testing.T) {
	// FastAPI-style timestamps often come without a zone suffix.
	got := entity.FormatDateTime("2024-06-15T10:30:00")
	if got == "Invalid Date" || got == "N/A" {
		t.Errorf("FormatDateTime rejected a zoneless ISO timestamp: %q", got)
	}
}

func TestOrNA(t *testing.T) {
	s := "hello"
	empty := ""
	cases := []struct {
		in   *string
		want string
	}{
		{nil, "N/A"},
		{&empty, "N/A"},
		{&s, "hello"},
	}
	for _, c := range cases {
		if got := entity.OrNA(c.in); got != c.want {
			t.Errorf("OrNA(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestIDOrNA(t *testing.T) {
	if got := entity.IDOrNA(nil); got != "N/A" {
		t.Errorf("IDOrNA(nil) = %q, want N/A", got)
	}
	id := int64(42)
	if got := entity.IDOrNA(&id); got != "42" {
		t.Errorf("IDOrNA(42) = %q, want 42", got)
	}
}

func TestLongText_NeverInline(t *testing.T) {
	bio := "A very long biography that must never be rendered inline."
	if got := entity.LongText(&bio); got != "view" {
		t.Errorf("LongText = %q, want view marker", got)
	}
	if got := entity.LongText(nil); got != "N/A" {
		t.Errorf("LongText(nil) = %q, want N/A", got)
	}
}

func TestBookRow_DanglingPublisher(t *testing.T) {
	b := entity.Book{ID: 3, Title: "Orphaned", PublisherID: nil, WriteDate: ""}
	row := b.Row()
	if row[2] != "N/A" {
		t.Errorf("dangling publisher cell = %q, want N/A", row[2])
	}
	if row[3] != "N/A" {
		t.Errorf("absent timestamp cell = %q, want N/A", row[3])
	}
}

func TestRows_MatchColumnCounts(t *testing.T) {
	bio := "bio"
	text := "text"
	cases := []struct {
		kind entity.Kind
		row  []string
	}{
		{entity.Books, entity.Book{}.Row()},
		{entity.Publishers, entity.Publisher{}.Row()},
		{entity.Authors, entity.Author{Biography: &bio}.Row()},
		{entity.Reviews, entity.Review{ReviewText: &text}.Row()},
	}
	for _, c := range cases {
		want := len(entity.Descriptors[c.kind].Columns)
		if len(c.row) != want {
			t.Errorf("%s row has %d cells, descriptor has %d columns", c.kind, len(c.row), want)
		}
	}
}
