package session

// Session is the persisted record of an authenticated user: the bearer
// token issued by the auth service plus the identity fields displayed by
// the authenticated view.
type Session struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Store holds the single current Session, if any. Implementations write
// and clear the three fields of a Session as a unit; readers never observe
// a partial record.
type Store interface {
	// Commit replaces any prior session with the specified one.
	Commit(Session) error
	// Current returns the current session, if one exists.
	Current() (Session, bool, error)
	// Clear removes the current session. Clearing an absent session is not
	// an error.
	Clear() error
}
