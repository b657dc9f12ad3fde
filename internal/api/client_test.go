package api_test

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackwell-systems/libdash/internal/api"
	"github.com/blackwell-systems/libdash/internal/config"
	"github.com/blackwell-systems/libdash/internal/entity"
	"github.com/blackwell-systems/libdash/internal/session"
)

func testToken(t *testing.T, role string, userID int64) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, err := json.Marshal(map[string]any{"role": role, "user_id": userID})
	if err != nil {
		t.Fatal(err)
	}
	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".sig"
}

// newClient builds a client with a logged-in session against srv.
func newClient(t *testing.T, srv *httptest.Server) (*api.Client, *session.Store) {
	t.Helper()
	store := session.NewStore(filepath.Join(t.TempDir(), "token"))
	if err := store.Save(testToken(t, "admin", 1)); err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{
		Server: config.ServerConfig{
			BaseURL:        srv.URL,
			APIPrefix:      "/api/v1",
			TimeoutSeconds: 5,
		},
	}
	return api.New(cfg, session.Load(store)), store
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, store := newClient(t, srv)
	if _, err := c.ListBooks(); err != nil {
		t.Fatalf("ListBooks: %v", err)
	}
	token, _ := store.Read()
	if gotAuth != "Bearer "+token {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
}

func TestClient_NoTokenProceedsUnauthenticated(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	store := session.NewStore(filepath.Join(t.TempDir(), "token"))
	cfg := &config.Config{Server: config.ServerConfig{BaseURL: srv.URL, APIPrefix: "/api/v1"}}
	c := api.New(cfg, session.Load(store))
	if _, err := c.ListBooks(); err != nil {
		t.Fatalf("ListBooks: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want none", gotAuth)
	}
}

func TestClient_SetsJSONContentType(t *testing.T) {
	var gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotType = r.Header.Get("Content-Type")
		_ = json.NewEncoder(w).Encode(entity.Book{ID: 1, Title: "x"})
	}))
	defer srv.Close()

	c, _ := newClient(t, srv)
	if _, err := c.CreateBook(entity.BookCreate{Title: "x", PublisherID: 1}); err != nil {
		t.Fatalf("CreateBook: %v", err)
	}
	if gotType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotType)
	}
}

// A 401 from any call must clear the stored token — the redirect-to-login
// state — no matter which entity or operation triggered it.
func TestClient_401ClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, store := newClient(t, srv)
	_, err := c.ListReviews()
	if !errors.Is(err, api.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if _, ok := store.Read(); ok {
		t.Error("token survived a 401")
	}
	if c.Session().Authenticated() {
		t.Error("session still authenticated after 401")
	}
}

// A 403 must surface the server's detail exactly once through the
// reporting hook and leave the session intact.
func TestClient_403ReportsOnceWithDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"detail":"admins only"}`))
	}))
	defer srv.Close()

	c, store := newClient(t, srv)
	var reported []error
	c.OnError(func(err error) { reported = append(reported, err) })

	err := c.DeletePublisher(3)
	if !errors.Is(err, api.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
	if len(reported) != 1 {
		t.Fatalf("reported %d times, want exactly once", len(reported))
	}
	if got := reported[0].Error(); got != "permission denied: admins only" {
		t.Errorf("reported = %q", got)
	}
	if _, ok := store.Read(); !ok {
		t.Error("403 must not clear the token")
	}
}

func TestClient_403FallbackDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c, _ := newClient(t, srv)
	err := c.DeleteBook(1)
	if !errors.Is(err, api.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestClient_204NoBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, _ := newClient(t, srv)
	if err := c.DeleteAuthor(5); err != nil {
		t.Fatalf("DeleteAuthor: %v", err)
	}
}

func TestClient_DeleteWithJSONConfirmation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"deleted"}`))
	}))
	defer srv.Close()

	c, _ := newClient(t, srv)
	if err := c.DeleteBook(1); err != nil {
		t.Fatalf("DeleteBook: %v", err)
	}
}

func TestClient_ErrorDetailExtraction(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		wantDetail string
	}{
		{"json detail", `{"detail":"title already exists"}`, "title already exists"},
		{"raw text fallback", "boom", "boom"},
		{"empty body", "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(c.body))
			}))
			defer srv.Close()

			client, _ := newClient(t, srv)
			_, err := client.CreateBook(entity.BookCreate{Title: "x", PublisherID: 1})
			var apiErr *api.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("err = %v, want *APIError", err)
			}
			if apiErr.Status != http.StatusBadRequest {
				t.Errorf("Status = %d, want 400", apiErr.Status)
			}
			if apiErr.Detail != c.wantDetail {
				t.Errorf("Detail = %q, want %q", apiErr.Detail, c.wantDetail)
			}
		})
	}
}

// Round-trip: a create followed by a list shows the new record with its
// server-assigned id.
func TestClient_CreateThenListRoundTrip(t *testing.T) {
	var books []entity.Book
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/books", func(w http.ResponseWriter, r *http.Request) {
		var in entity.BookCreate
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		pid := in.PublisherID
		b := entity.Book{ID: int64(len(books) + 1), Title: in.Title, PublisherID: &pid}
		books = append(books, b)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(b)
	})
	mux.HandleFunc("GET /api/v1/books", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(books)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, _ := newClient(t, srv)
	created, err := c.CreateBook(entity.BookCreate{Title: "TAOCP", PublisherID: 2})
	if err != nil {
		t.Fatalf("CreateBook: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("created book has no server-assigned id")
	}

	listed, err := c.ListBooks()
	if err != nil {
		t.Fatalf("ListBooks: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID || listed[0].Title != "TAOCP" {
		t.Errorf("listed = %+v, want the created record", listed)
	}
}

// A double delete of the same record: the second request fails with a
// plain API error and must not blow anything up.
func TestClient_DoubleDeleteSecondFailsHarmlessly(t *testing.T) {
	deleted := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if deleted {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"review not found"}`))
			return
		}
		deleted = true
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, _ := newClient(t, srv)
	if err := c.DeleteReview(9); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	err := c.DeleteReview(9)
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
		t.Errorf("second delete err = %v, want 404 APIError", err)
	}
}

// A 2xx with a garbage body surfaces a decode error through the hook,
// same as any other request failure.
func TestClient_MalformedResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c, _ := newClient(t, srv)
	var reported []error
	c.OnError(func(err error) { reported = append(reported, err) })

	_, err := c.ListBooks()
	if err == nil {
		t.Fatal("garbage body accepted")
	}
	if !strings.Contains(err.Error(), "decoding response") {
		t.Errorf("err = %v, want a decode error", err)
	}
	if len(reported) != 1 {
		t.Errorf("reported %d times, want exactly once", len(reported))
	}
}

func TestClient_UpdateSendsPatchBody(t *testing.T) {
	var gotBody map[string]json.RawMessage
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, _ := newClient(t, srv)
	u := entity.PublisherUpdate{
		Name:    entity.Set("New Name"),
		Website: entity.Null[string](),
	}
	if err := c.UpdatePublisher(7, u.Patch()); err != nil {
		t.Fatalf("UpdatePublisher: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/api/v1/publishers/7" {
		t.Errorf("request = %s %s, want PUT /api/v1/publishers/7", gotMethod, gotPath)
	}
	if string(gotBody["website"]) != "null" {
		t.Errorf("website = %s, want null", gotBody["website"])
	}
	if _, present := gotBody["email"]; present {
		t.Error("untouched email sent in patch body")
	}
}

// --- Auth ---

func TestLogin_FormEncoded(t *testing.T) {
	token := testToken(t, "customer", 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" {
			t.Errorf("path = %q, want /login", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if r.PostForm.Get("username") != "alice" || r.PostForm.Get("password") != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"bad credentials"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"access_token": token, "token_type": "bearer",
		})
	}))
	defer srv.Close()

	c, _ := newClient(t, srv)
	got, err := c.Login("alice", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got != token {
		t.Error("Login returned a different token")
	}

	if _, err := c.Login("alice", "wrong"); err == nil {
		t.Fatal("bad credentials accepted")
	}
}

func TestRegister_PostsJSON(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/register/" {
			t.Errorf("path = %q, want /register/", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1,"username":"bob","role":"publisher"}`))
	}))
	defer srv.Close()

	c, _ := newClient(t, srv)
	if err := c.Register("bob", "pw", session.RolePublisher); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if got["username"] != "bob" || got["role"] != "publisher" {
		t.Errorf("register body = %v", got)
	}
}
