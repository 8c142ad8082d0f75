package entities

// User identifies the signed-in caller. Authentication itself is handled by
// the external auth backend; the service only receives the resolved identity.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

func (u User) Authenticated() bool {
	return u.ID != ""
}
