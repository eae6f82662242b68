package model

// User is the signed-in identity carried by the session cookie. There is a
// single current user per session; the record is created at login and
// destroyed at logout.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// Name returns a printable name for the user, falling back to the local
// part of the email when no display name was provided.
func (u User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	for i := 0; i < len(u.Email); i++ {
		if u.Email[i] == '@' {
			return u.Email[:i]
		}
	}
	return u.Email
}
