package models

import "time"

// User is an account of the sign-up stub.
//
// Password is stored and compared verbatim. The user store is a placeholder
// for a real identity provider and is not hardened.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns a copy of u without the password.
func (u User) Public() User {
	u.Password = ""
	return u
}
