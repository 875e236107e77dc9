package model

// Roles a user account can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account record. The nickname doubles as the primary key.
// Password holds a bcrypt hash and is only serialized into the store
// file; API responses go through Sanitized first.
type User struct {
	ID        string `json:"id"`
	Phone     string `json:"phone,omitempty"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// Sanitized returns a copy with the password hash blanked out, so the
// omitempty tag drops the field entirely from responses.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
