package domain

// User models a registered account. The password is never stored in clear;
// PasswordHash holds a bcrypt digest and is excluded from every JSON response.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
