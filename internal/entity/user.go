package entity

// UserLoginData is the subset of access-token claims the API relies on.
type UserLoginData struct {
	ID       string
	Username string
	Email    string
}
