package models

// Profile is the identity of the acting user. It is either a FullProfile, when
// the user record has been loaded, or a MinimalProfile synthesized from the
// session when it has not.
type Profile interface {
	UserID() string
	isProfile()
}

// FullProfile wraps a loaded user record.
type FullProfile struct {
	User *User
}

func (p FullProfile) UserID() string { return p.User.ID }
func (FullProfile) isProfile()       {}

// MinimalProfile is the degraded identity taken from session claims.
type MinimalProfile struct {
	ID          string
	DisplayName string
	Email       string
	PhotoURL    string
}

func (p MinimalProfile) UserID() string { return p.ID }
func (MinimalProfile) isProfile()       {}
