package models

// Role defines the authorization role of a user
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User defines a user account. The password hash is never serialized.
type User struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"teacher"`
	Password string `json:"-"`
	Role     Role   `json:"role" example:"admin"`
}

// PublicUser is the projection of a user that is safe to return in responses
type PublicUser struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"teacher"`
	Role     Role   `json:"role" example:"admin"`
}

// Public returns the response projection of the user
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}
