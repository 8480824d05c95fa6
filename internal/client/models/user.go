package models

// User is the signed-in account as returned by the backend.
type User struct {
	ID     ID     `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

// Session is the body of a successful POST /sessions.
type Session struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Complete reports whether the backend returned both halves of a session.
func (s *Session) Complete() bool {
	return s != nil && s.User != nil && s.Token != ""
}

// NewUser is the body of POST /users.
type NewUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials is the body of POST /sessions.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate is the body of PUT /users. Password and OldPassword are
// sent only when the password is being changed.
type ProfileUpdate struct {
	Name        string `json:"name"`
	Password    string `json:"password,omitempty"`
	OldPassword string `json:"old_password,omitempty"`
}
