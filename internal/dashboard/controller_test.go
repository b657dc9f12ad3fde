package dashboard_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/blackwell-systems/libdash/internal/dashboard"
	"github.com/blackwell-systems/libdash/internal/entity"
)

type fakeSource struct {
	rows       []dashboard.Row
	fetchErr   error
	deleteErr  error
	fetchCount int
	deleted    []int64
}

func (f *fakeSource) source(kind entity.Kind) *dashboard.Source {
	return &dashboard.Source{
		Descriptor: entity.Descriptors[kind],
		Fetch: func() ([]dashboard.Row, error) {
			f.fetchCount++
			return f.rows, f.fetchErr
		},
		Delete: func(id int64) error {
			if f.deleteErr != nil {
				return f.deleteErr
			}
			f.deleted = append(f.deleted, id)
			return nil
		},
	}
}

func TestRender_Table(t *testing.T) {
	var buf bytes.Buffer
	ctrl := dashboard.NewController(&buf, func(string) bool { return true })
	books := &fakeSource{rows: []dashboard.Row{
		{ID: 1, Cells: []string{"1", "SICP", "2", "2024-01-01 00:00:00"}, CanMutate: true},
		{ID: 2, Cells: []string{"2", "Orphan", "N/A", "N/A"}, CanMutate: true},
	}}
	ctrl.Register(books.source(entity.Books))

	if err := ctrl.Render(entity.Books); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Title", "Actions", "SICP", "N/A"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

// Rendering the same fetched collection twice produces identical output —
// no row accumulation.
func TestRender_Idempotent(t *testing.T) {
	books := &fakeSource{rows: []dashboard.Row{
		{ID: 1, Cells: []string{"1", "SICP", "2", "N/A"}, CanMutate: false},
	}}

	var first, second bytes.Buffer
	c1 := dashboard.NewController(&first, func(string) bool { return true })
	c1.Register(books.source(entity.Books))
	_ = c1.Render(entity.Books)

	c2 := dashboard.NewController(&second, func(string) bool { return true })
	c2.Register(books.source(entity.Books))
	_ = c2.Render(entity.Books)

	if first.String() != second.String() {
		t.Error("two renders of the same collection differ")
	}
}

// A customer viewing books sees N/A in the action column for every row.
func TestRender_CustomerActionsNA(t *testing.T) {
	var buf bytes.Buffer
	ctrl := dashboard.NewController(&buf, func(string) bool { return true })
	books := &fakeSource{rows: []dashboard.Row{
		{ID: 1, Cells: []string{"1", "SICP", "2", "N/A"}, CanMutate: false},
		{ID: 2, Cells: []string{"2", "TAOCP", "3", "N/A"}, CanMutate: false},
	}}
	ctrl.Register(books.source(entity.Books))
	_ = ctrl.Render(entity.Books)

	out := buf.String()
	if strings.Contains(out, "update delete") {
		t.Error("customer was offered mutation controls")
	}
	if got := strings.Count(out, "N/A"); got < 2 {
		t.Errorf("expected an N/A action slot per row, found %d", got)
	}
}

func TestRender_FetchFailureAbortsSilently(t *testing.T) {
	var buf bytes.Buffer
	ctrl := dashboard.NewController(&buf, func(string) bool { return true })
	books := &fakeSource{fetchErr: errors.New("boom")}
	ctrl.Register(books.source(entity.Books))

	if err := ctrl.Render(entity.Books); err == nil {
		t.Fatal("Render swallowed the fetch error")
	}
	if buf.Len() != 0 {
		t.Errorf("controller wrote output despite fetch failure: %q", buf.String())
	}
}

// Deleting a publisher re-fetches publishers and the dependent books list.
func TestDelete_RefetchesDependents(t *testing.T) {
	var buf bytes.Buffer
	ctrl := dashboard.NewController(&buf, func(string) bool { return true })
	publishers := &fakeSource{rows: []dashboard.Row{}}
	books := &fakeSource{rows: []dashboard.Row{}}
	ctrl.Register(publishers.source(entity.Publishers))
	ctrl.Register(books.source(entity.Books))

	if err := ctrl.Delete(entity.Publishers, 3); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(publishers.deleted) != 1 || publishers.deleted[0] != 3 {
		t.Errorf("deleted = %v, want [3]", publishers.deleted)
	}
	if publishers.fetchCount != 1 {
		t.Errorf("publishers fetched %d times after delete, want 1", publishers.fetchCount)
	}
	if books.fetchCount != 1 {
		t.Errorf("dependent books fetched %d times after delete, want 1", books.fetchCount)
	}
}

func TestDelete_DeclinedConfirmation(t *testing.T) {
	var buf bytes.Buffer
	ctrl := dashboard.NewController(&buf, func(string) bool { return false })
	books := &fakeSource{}
	ctrl.Register(books.source(entity.Books))

	if err := ctrl.Delete(entity.Books, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(books.deleted) != 0 {
		t.Error("delete issued despite declined confirmation")
	}
	if books.fetchCount != 0 {
		t.Error("list re-fetched despite declined confirmation")
	}
}

// A failed delete (e.g. 403, or the record already gone) leaves the list
// unrefreshed and does not crash anything.
func TestDelete_FailureLeavesListUnrefreshed(t *testing.T) {
	var buf bytes.Buffer
	ctrl := dashboard.NewController(&buf, func(string) bool { return true })
	books := &fakeSource{deleteErr: errors.New("permission denied")}
	ctrl.Register(books.source(entity.Books))

	if err := ctrl.Delete(entity.Books, 1); err == nil {
		t.Fatal("Delete swallowed the error")
	}
	if books.fetchCount != 0 {
		t.Error("list was re-fetched after a failed delete")
	}
}
