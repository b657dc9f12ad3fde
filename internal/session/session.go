package session

// Session is the process-wide authentication state, constructed once at
// startup and passed explicitly to every component that needs it.
type Session struct {
	store  *Store
	token  string
	claims *Claims
}

// Load builds a Session from whatever the store holds. A stored token that
// fails to decode is cleared and treated exactly like no token at all.
func Load(store *Store) *Session {
	s := &Session{store: store}
	token, ok := store.Read()
	if !ok {
		return s
	}
	claims, err := DecodeClaims(token)
	if err != nil {
		_ = store.Clear()
		return s
	}
	s.token = token
	s.claims = claims
	return s
}

// Authenticated reports whether a decodable token is present.
func (s *Session) Authenticated() bool {
	return s.claims != nil
}

// Token returns the raw bearer token, or "" when logged out.
func (s *Session) Token() string {
	return s.token
}

// Claims returns the decoded claims, or nil when logged out.
func (s *Session) Claims() *Claims {
	return s.claims
}

// Login persists the token and refreshes the session state. A token the
// client cannot decode is rejected and not kept.
func (s *Session) Login(token string) error {
	claims, err := DecodeClaims(token)
	if err != nil {
		return err
	}
	if err := s.store.Save(token); err != nil {
		return err
	}
	s.token = token
	s.claims = claims
	return nil
}

// Logout clears the stored token and drops the in-memory state.
func (s *Session) Logout() error {
	s.token = ""
	s.claims = nil
	return s.store.Clear()
}

// Invalidate is the 401 path: same effect as Logout, kept separate so the
// API client can express intent at the call site.
func (s *Session) Invalidate() error {
	return s.Logout()
}
