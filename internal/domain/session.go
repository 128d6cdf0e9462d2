package domain

// Session holds the client-side authentication state. It is created on
// successful login, cleared on logout, and owned exclusively by the session
// controller; no other component mutates it.
type Session struct {
	Authenticated bool
	UserID        string
}

// Clear resets the session to its logged-out zero value.
func (s *Session) Clear() {
	*s = Session{}
}
