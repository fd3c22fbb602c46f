package store

type User struct {
	UserID       int64  `json:"userId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Do not expose this in JSON responses
}
